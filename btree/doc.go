/*
Package btree implements an in-memory B+ tree, an ordered index mapping keys
to values.

Internal nodes route searches by key range; leaf nodes hold the key/value
pairs and are chained in ascending key order, so ordered scans never revisit
internal nodes. Every node holds at most BranchingFactor-1 keys.

Current status:
  - upsert insertion with leaf and internal splits, growing at the root,
  - point search and inclusive range queries (eager `RangeQuery`),
  - lazy, forward-only cursors with an optional inclusive upper bound,
  - range-over-func views (`All`, `Range`) backed by cursors,
  - leaf-only deletion without merge or borrow,
  - structural checks (`Check`) and debug renderings (`Print`, `WriteDot`).

Deletion never touches internal nodes. After many removals leaves may become
sparse or even empty; lookups, range queries and cursors remain correct, but
the tree does not shrink.

A tree is not safe for concurrent use. Readers may share a tree only while no
writer is active; any locking is up to the client.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

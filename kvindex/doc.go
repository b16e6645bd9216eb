/*
Package kvindex puts ordered key/value indexes behind a common interface, so
they can be compared against each other.

Keys are int64, values are byte slices. Three implementations exist:

  - BPTree adapts the in-memory B+ tree of package btree,
  - Pebble wraps CockroachDB's LSM storage engine, on disk or in memory,
  - List is a sorted slice, serving as a simple reference.

Implementations copy values on insert and on retrieval, so callers may reuse
their buffers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package kvindex

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// ErrNotFound is returned by Get and Delete for absent keys.
var ErrNotFound = errors.New("kvindex: key not found")

// Index is the common interface for all implementations.
type Index interface {
	// Insert inserts or updates the value for key.
	Insert(key int64, value []byte) error
	Get(key int64) ([]byte, error)
	Delete(key int64) error
	// Range returns an iterator over all keys in [start, end], inclusive.
	Range(start, end int64) (Iterator, error)
	Close() error
}

// Iterator scans over a range of key/value pairs. Next must be called before
// the first pair is accessed.
type Iterator interface {
	Next() bool
	Key() int64
	Value() []byte
	Error() error
	Close() error
}

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}

package btree

// node is implemented by exactly two types, *leafNode and *innerNode.
type node[K, V any] interface {
	isLeaf() bool
	keyCount() int
}

type leafNode[K, V any] struct {
	keys []K
	// values is parallel to keys.
	values []V
	// next links to the leaf holding the next larger keys, nil for the last leaf.
	next *leafNode[K, V]
}

func (l *leafNode[K, V]) isLeaf() bool  { return true }
func (l *leafNode[K, V]) keyCount() int { return len(l.keys) }

type innerNode[K, V any] struct {
	keys []K
	// children has len(keys)+1 entries. Keys in children[i] are >= keys[i-1]
	// and < keys[i].
	children []node[K, V]
}

func (n *innerNode[K, V]) isLeaf() bool  { return false }
func (n *innerNode[K, V]) keyCount() int { return len(n.keys) }

func isFull[K, V any](n node[K, V], maxKeys int) bool {
	return n.keyCount() >= maxKeys
}

// minKeys is the advisory lower occupancy bound for nodes with capacity maxKeys.
func minKeys(maxKeys int) int {
	return (maxKeys + 1) / 2
}

// isUnderflow is advisory; nothing rebalances underflowing nodes.
func isUnderflow[K, V any](n node[K, V], maxKeys int) bool {
	return n.keyCount() < minKeys(maxKeys)
}

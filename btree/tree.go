package btree

import (
	"cmp"
)

// Tree is an in-memory B+ tree mapping keys of type K to values of type V.
//
// The zero value is not usable; create trees with New or NewWithConfig.
type Tree[K, V any] struct {
	cfg     Config[K]
	maxKeys int
	root    node[K, V]
	length  int
}

// New creates an empty tree for naturally ordered keys. Branching factors
// below MinBranchingFactor are clamped.
func New[K cmp.Ordered, V any](branchingFactor int) *Tree[K, V] {
	t, err := NewWithConfig[K, V](OrderedConfig[K](branchingFactor))
	assert(err == nil, "ordered configuration rejected")
	return t
}

// NewWithConfig creates an empty tree ordered by cfg.Compare.
func NewWithConfig[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{
		cfg:     cfg,
		maxKeys: cfg.BranchingFactor - 1,
	}, nil
}

// BranchingFactor returns the effective branching factor, after clamping.
func (t *Tree[K, V]) BranchingFactor() int {
	return t.cfg.BranchingFactor
}

// Empty reports whether the root is absent or holds no keys.
//
// Deletion never shrinks internal nodes, so a multi-level tree stays
// non-empty in this sense even after all its pairs have been removed.
// Use Len to count stored pairs.
func (t *Tree[K, V]) Empty() bool {
	return t == nil || t.root == nil || t.root.keyCount() == 0
}

// Len returns the number of key/value pairs in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, V]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	h := 1
	for n := t.root; !n.isLeaf(); h++ {
		n = n.(*innerNode[K, V]).children[0]
	}
	return h
}

// Insert stores value under key, overwriting the value of an existing key.
// It always reports success; the tree grows by splitting.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if t.root == nil {
		t.root = t.makeLeaf(nil, nil)
	}
	sep, sibling, split := t.insertRecursive(t.root, key, value)
	if split {
		t.root = t.makeInternal([]K{sep}, []node[K, V]{t.root, sibling})
		tracer().Debugf("btree: root split, height now %d", t.Height())
	}
	return true
}

// insertRecursive inserts into the subtree at n. If n was split, it returns
// the separator and the new right sibling of n.
func (t *Tree[K, V]) insertRecursive(n node[K, V], key K, value V) (K, node[K, V], bool) {
	var zero K
	switch n := n.(type) {
	case *leafNode[K, V]:
		idx, found := t.leafSearch(n, key)
		if found {
			n.values[idx] = value
			return zero, nil, false
		}
		t.length++
		sep, sibling, split := t.insertIntoLeafLocal(n, idx, key, value)
		if !split {
			return zero, nil, false
		}
		return sep, sibling, true
	case *innerNode[K, V]:
		slot := t.childSlot(n, key)
		sep, right, split := t.insertRecursive(n.children[slot], key, value)
		if !split {
			return zero, nil, false
		}
		promoted, sibling, split := t.insertIntoInnerLocal(n, slot, sep, right)
		if !split {
			return zero, nil, false
		}
		return promoted, sibling, true
	default:
		panic("unknown tree node type")
	}
}

// Remove deletes key and its value from the tree. It reports false if key is
// not present.
//
// Only the leaf is modified: internal nodes keep their separators, and
// underflowing leaves are neither merged nor refilled from siblings.
func (t *Tree[K, V]) Remove(key K) bool {
	if t.root == nil {
		return false
	}
	return t.removeRecursive(t.root, key)
}

func (t *Tree[K, V]) removeRecursive(n node[K, V], key K) bool {
	switch n := n.(type) {
	case *leafNode[K, V]:
		idx, found := t.leafSearch(n, key)
		if !found {
			return false
		}
		n.keys = removeRange(n.keys, idx, idx+1)
		n.values = removeRange(n.values, idx, idx+1)
		t.length--
		if n != t.root && isUnderflow[K, V](n, t.maxKeys) {
			tracer().Debugf("btree: leaf underflow, %d keys left", len(n.keys))
		}
		return true
	case *innerNode[K, V]:
		return t.removeRecursive(n.children[t.childSlot(n, key)], key)
	default:
		panic("unknown tree node type")
	}
}

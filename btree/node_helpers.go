package btree

import (
	"slices"
	"sort"
)

func (t *Tree[K, V]) makeLeaf(keys []K, values []V) *leafNode[K, V] {
	assert(len(keys) == len(values), "makeLeaf with unbalanced keys/values")
	assert(len(keys) <= t.maxKeys, "makeLeaf exceeds leaf capacity")
	leaf := &leafNode[K, V]{
		keys:   make([]K, len(keys), t.maxKeys),
		values: make([]V, len(values), t.maxKeys),
	}
	copy(leaf.keys, keys)
	copy(leaf.values, values)
	return leaf
}

func (t *Tree[K, V]) makeInternal(keys []K, children []node[K, V]) *innerNode[K, V] {
	assert(len(children) == len(keys)+1, "makeInternal with inconsistent child count")
	assert(len(keys) <= t.maxKeys, "makeInternal exceeds node capacity")
	inner := &innerNode[K, V]{
		keys:     make([]K, len(keys), t.maxKeys),
		children: make([]node[K, V], len(children), t.maxKeys+1),
	}
	copy(inner.keys, keys)
	copy(inner.children, children)
	return inner
}

// leafSearch returns the position of key in leaf, or the position where it
// would be inserted, and whether it is present.
func (t *Tree[K, V]) leafSearch(leaf *leafNode[K, V], key K) (int, bool) {
	return slices.BinarySearchFunc(leaf.keys, key, t.cfg.Compare)
}

// childSlot selects the child of inner which covers key. It counts the
// separators <= key, so keys equal to a separator route right.
func (t *Tree[K, V]) childSlot(inner *innerNode[K, V], key K) int {
	return sort.Search(len(inner.keys), func(i int) bool {
		return t.cfg.Compare(key, inner.keys[i]) < 0
	})
}

// firstAtOrAbove returns the index of the first key in leaf >= key, which may
// be len(leaf.keys).
func (t *Tree[K, V]) firstAtOrAbove(leaf *leafNode[K, V], key K) int {
	i, _ := t.leafSearch(leaf, key)
	return i
}

package btree

import "iter"

// All returns an iterator over all pairs in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
			for i := range leaf.keys {
				if !yield(leaf.keys[i], leaf.values[i]) {
					return
				}
			}
		}
	}
}

// Range returns an iterator over the pairs with lower <= key <= upper.
// Each iteration starts a fresh cursor.
func (t *Tree[K, V]) Range(lower, upper K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := t.CursorTo(lower, upper); c.Valid(); c.Next() {
			if !yield(c.leaf.keys[c.index], c.leaf.values[c.index]) {
				return
			}
		}
	}
}

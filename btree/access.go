package btree

// Entry is a key/value pair as stored in a leaf.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Search returns the value stored under key.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	var zero V
	leaf := t.findLeaf(key)
	if leaf == nil {
		return zero, false
	}
	idx, found := t.leafSearch(leaf, key)
	if !found {
		return zero, false
	}
	return leaf.values[idx], true
}

// findLeaf descends from the root to the leaf covering key. It returns nil
// for a tree without a root.
func (t *Tree[K, V]) findLeaf(key K) *leafNode[K, V] {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for {
		switch nn := n.(type) {
		case *leafNode[K, V]:
			return nn
		case *innerNode[K, V]:
			n = nn.children[t.childSlot(nn, key)]
		default:
			panic("unknown tree node type")
		}
	}
}

// firstLeaf returns the leftmost leaf, the head of the leaf chain.
func (t *Tree[K, V]) firstLeaf() *leafNode[K, V] {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for !n.isLeaf() {
		n = n.(*innerNode[K, V]).children[0]
	}
	return n.(*leafNode[K, V])
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		if len(leaf.keys) > 0 {
			return Entry[K, V]{Key: leaf.keys[0], Value: leaf.values[0]}, true
		}
	}
	return Entry[K, V]{}, false
}

// Max returns the entry with the largest key.
//
// Leaves emptied by deletion may sit at the right edge, so Max falls back to
// a scan of the leaf chain if the rightmost leaf is empty.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	if t == nil || t.root == nil {
		return Entry[K, V]{}, false
	}
	n := t.root
	for !n.isLeaf() {
		inner := n.(*innerNode[K, V])
		n = inner.children[len(inner.children)-1]
	}
	if leaf := n.(*leafNode[K, V]); len(leaf.keys) > 0 {
		last := len(leaf.keys) - 1
		return Entry[K, V]{Key: leaf.keys[last], Value: leaf.values[last]}, true
	}
	var e Entry[K, V]
	found := false
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		if last := len(leaf.keys) - 1; last >= 0 {
			e = Entry[K, V]{Key: leaf.keys[last], Value: leaf.values[last]}
			found = true
		}
	}
	return e, found
}

// RangeQuery collects all pairs with lower <= key <= upper in ascending key
// order. The result is empty if lower > upper.
func (t *Tree[K, V]) RangeQuery(lower, upper K) []Entry[K, V] {
	var result []Entry[K, V]
	if t.cfg.Compare(lower, upper) > 0 {
		return result
	}
	leaf := t.findLeaf(lower)
	if leaf == nil {
		return result
	}
	idx := t.firstAtOrAbove(leaf, lower)
	for ; leaf != nil; leaf, idx = leaf.next, 0 {
		for ; idx < len(leaf.keys); idx++ {
			if t.cfg.Compare(leaf.keys[idx], upper) > 0 {
				return result
			}
			result = append(result, Entry[K, V]{Key: leaf.keys[idx], Value: leaf.values[idx]})
		}
	}
	return result
}

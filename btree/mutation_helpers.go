package btree

// insertAt inserts values into a slice at idx, shifting the tail right.
// The slice is grown in place if capacity allows.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	if len(values) == 0 {
		return src
	}
	n := len(src)
	src = append(src, values...)
	copy(src[idx+len(values):], src[idx:n])
	copy(src[idx:], values)
	return src
}

// removeRange removes the half-open interval [from,to) from a slice in place.
// Vacated tail slots are zeroed so they do not retain references.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	n := copy(src[from:], src[to:])
	clear(src[from+n:])
	return src[:from+n]
}

// insertIntoLeafLocal inserts a new pair at position idx of leaf. If the leaf
// is full, it is split first and the pair goes to whichever half covers key.
// On a split, the separator and the new right sibling are returned.
func (t *Tree[K, V]) insertIntoLeafLocal(leaf *leafNode[K, V], idx int, key K, value V) (K, *leafNode[K, V], bool) {
	var sep K
	if !isFull[K, V](leaf, t.maxKeys) {
		leaf.keys = insertAt(leaf.keys, idx, key)
		leaf.values = insertAt(leaf.values, idx, value)
		return sep, nil, false
	}
	sibling := t.splitLeaf(leaf)
	target := leaf
	if t.cfg.Compare(key, leaf.keys[len(leaf.keys)-1]) > 0 {
		target = sibling
	}
	i, found := t.leafSearch(target, key)
	assert(!found, "key present in leaf after split")
	target.keys = insertAt(target.keys, i, key)
	target.values = insertAt(target.values, i, value)
	// The sibling's first key may have changed when the new key is the
	// smallest key routed right.
	return sibling.keys[0], sibling, true
}

// splitLeaf moves the upper half of a full leaf into a new right sibling,
// which takes over the leaf's chain link. The original keeps [0,mid).
func (t *Tree[K, V]) splitLeaf(leaf *leafNode[K, V]) *leafNode[K, V] {
	assert(len(leaf.keys) >= 2, "splitLeaf needs at least two keys")
	mid := (len(leaf.keys) + 1) / 2
	sibling := t.makeLeaf(leaf.keys[mid:], leaf.values[mid:])
	sibling.next = leaf.next
	leaf.next = sibling
	leaf.keys = removeRange(leaf.keys, mid, len(leaf.keys))
	leaf.values = removeRange(leaf.values, mid, len(leaf.values))
	tracer().Debugf("btree: leaf split at %d, %d|%d keys", mid, len(leaf.keys), len(sibling.keys))
	return sibling
}

// insertIntoInnerLocal places a separator and the right node produced by a
// child split at slot idx+1 of inner. When inner overflows, the enlarged
// sequence is split and the promoted key and new sibling are returned.
func (t *Tree[K, V]) insertIntoInnerLocal(inner *innerNode[K, V], idx int, sep K, right node[K, V]) (K, *innerNode[K, V], bool) {
	inner.keys = insertAt(inner.keys, idx, sep)
	inner.children = insertAt(inner.children, idx+1, right)
	if len(inner.keys) <= t.maxKeys {
		var zero K
		return zero, nil, false
	}
	promoted, sibling := t.splitInner(inner)
	return promoted, sibling, true
}

// splitInner splits an internal node around mid = len(keys)/2. The key at mid
// moves up and is kept in neither half. The sibling receives keys (mid,end)
// and children [mid+1,end); the original keeps keys [0,mid) and children
// [0,mid].
func (t *Tree[K, V]) splitInner(inner *innerNode[K, V]) (K, *innerNode[K, V]) {
	assert(len(inner.keys) >= 2, "splitInner needs at least two keys")
	mid := len(inner.keys) / 2
	promoted := inner.keys[mid]
	sibling := t.makeInternal(inner.keys[mid+1:], inner.children[mid+1:])
	inner.keys = removeRange(inner.keys, mid, len(inner.keys))
	inner.children = removeRange(inner.children, mid+1, len(inner.children))
	tracer().Debugf("btree: internal split at %d, %d|%d keys", mid, len(inner.keys), len(sibling.keys))
	return promoted, sibling
}

package btree

// Cursor is a lazy, forward-only position in the leaf chain of a tree.
//
// A cursor starts at the first key >= its lower bound and, if it has an upper
// bound, ends after the last key <= that bound. A cursor which has run past
// its last pair is at the end: it references no leaf, and all such cursors of
// a tree compare equal to Tree.End.
//
// Cursors are not invalidated by mutations of the tree, but their results are
// undefined if the tree changes while they are in use.
type Cursor[K, V any] struct {
	tree     *Tree[K, V]
	leaf     *leafNode[K, V]
	index    int
	upper    K
	hasUpper bool
}

// Cursor returns a cursor positioned at the first key >= lower, running to
// the end of the tree.
func (t *Tree[K, V]) Cursor(lower K) *Cursor[K, V] {
	c := &Cursor[K, V]{tree: t}
	c.seek(lower)
	return c
}

// CursorTo returns a cursor over the keys in [lower, upper]. It yields the
// same pairs as RangeQuery(lower, upper).
func (t *Tree[K, V]) CursorTo(lower, upper K) *Cursor[K, V] {
	c := &Cursor[K, V]{tree: t, upper: upper, hasUpper: true}
	c.seek(lower)
	return c
}

// End returns a cursor in the terminal state.
func (t *Tree[K, V]) End() *Cursor[K, V] {
	return &Cursor[K, V]{tree: t}
}

func (c *Cursor[K, V]) seek(lower K) {
	c.leaf = c.tree.findLeaf(lower)
	if c.leaf != nil {
		c.index = c.tree.firstAtOrAbove(c.leaf, lower)
	}
	c.settle()
}

// settle moves the cursor forward over exhausted or empty leaves and checks
// the upper bound. If no pair qualifies, the cursor is set to the end.
func (c *Cursor[K, V]) settle() {
	for c.leaf != nil && c.index >= len(c.leaf.keys) {
		c.leaf, c.index = c.leaf.next, 0
	}
	if c.leaf == nil {
		c.index = 0
		return
	}
	if c.hasUpper && c.tree.cfg.Compare(c.leaf.keys[c.index], c.upper) > 0 {
		c.leaf, c.index = nil, 0
	}
}

// Valid reports whether the cursor is positioned at a pair.
func (c *Cursor[K, V]) Valid() bool {
	return c != nil && c.leaf != nil
}

// IsEnd reports whether the cursor is in the terminal state.
func (c *Cursor[K, V]) IsEnd() bool {
	return !c.Valid()
}

// Key returns the key at the cursor position.
func (c *Cursor[K, V]) Key() (K, error) {
	if !c.Valid() {
		var zero K
		return zero, ErrCursorExhausted
	}
	return c.leaf.keys[c.index], nil
}

// Value returns the value at the cursor position.
func (c *Cursor[K, V]) Value() (V, error) {
	if !c.Valid() {
		var zero V
		return zero, ErrCursorExhausted
	}
	return c.leaf.values[c.index], nil
}

// Entry returns the pair at the cursor position.
func (c *Cursor[K, V]) Entry() (Entry[K, V], error) {
	if !c.Valid() {
		return Entry[K, V]{}, ErrCursorExhausted
	}
	return Entry[K, V]{Key: c.leaf.keys[c.index], Value: c.leaf.values[c.index]}, nil
}

// Next advances the cursor to the next pair. Advancing a cursor at the end
// is a no-op.
func (c *Cursor[K, V]) Next() {
	if !c.Valid() {
		return
	}
	c.index++
	c.settle()
}

// Equal reports whether both cursors reference the same position. Cursors at
// the end are equal to each other.
func (c *Cursor[K, V]) Equal(other *Cursor[K, V]) bool {
	if c == nil || other == nil {
		return c.IsEnd() && other.IsEnd()
	}
	return c.leaf == other.leaf && c.index == other.index
}

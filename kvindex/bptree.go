package kvindex

import (
	"github.com/anocaj/db-internals/btree"
)

var _ Index = (*BPTree)(nil)

// BPTree adapts a btree.Tree to the Index interface.
type BPTree struct {
	tree *btree.Tree[int64, []byte]
}

// NewBPTree creates an empty B+ tree index. Branching factors below
// btree.MinBranchingFactor are clamped.
func NewBPTree(branchingFactor int) *BPTree {
	return &BPTree{tree: btree.New[int64, []byte](branchingFactor)}
}

// Tree exposes the underlying tree, e.g. for structural inspection.
func (b *BPTree) Tree() *btree.Tree[int64, []byte] {
	return b.tree
}

func (b *BPTree) Insert(key int64, value []byte) error {
	b.tree.Insert(key, clone(value))
	return nil
}

func (b *BPTree) Get(key int64) ([]byte, error) {
	v, ok := b.tree.Search(key)
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

func (b *BPTree) Delete(key int64) error {
	if !b.tree.Remove(key) {
		return ErrNotFound
	}
	return nil
}

func (b *BPTree) Range(start, end int64) (Iterator, error) {
	return &cursorIterator{cursor: b.tree.CursorTo(start, end)}, nil
}

func (b *BPTree) Close() error { return nil }

// cursorIterator drives a tree cursor with Next-before-access semantics.
type cursorIterator struct {
	cursor  *btree.Cursor[int64, []byte]
	started bool
	entry   btree.Entry[int64, []byte]
}

func (it *cursorIterator) Next() bool {
	if it.started {
		it.cursor.Next()
	}
	it.started = true
	e, err := it.cursor.Entry()
	if err != nil {
		return false
	}
	it.entry = e
	return true
}

func (it *cursorIterator) Key() int64    { return it.entry.Key }
func (it *cursorIterator) Value() []byte { return clone(it.entry.Value) }
func (it *cursorIterator) Error() error  { return nil }
func (it *cursorIterator) Close() error  { return nil }

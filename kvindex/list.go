package kvindex

import (
	"cmp"
	"slices"
)

var _ Index = (*List)(nil)

type pair struct {
	Key int64
	Val []byte
}

// List is a sorted slice of pairs. Lookups are logarithmic, updates linear.
type List struct {
	data []pair
}

func NewList() *List {
	return &List{data: make([]pair, 0)}
}

func (l *List) find(key int64) (int, bool) {
	return slices.BinarySearchFunc(l.data, key, func(p pair, k int64) int {
		return cmp.Compare(p.Key, k)
	})
}

func (l *List) Insert(key int64, value []byte) error {
	i, found := l.find(key)
	if found {
		l.data[i].Val = clone(value)
		return nil
	}
	l.data = slices.Insert(l.data, i, pair{Key: key, Val: clone(value)})
	return nil
}

func (l *List) Get(key int64) ([]byte, error) {
	i, found := l.find(key)
	if !found {
		return nil, ErrNotFound
	}
	return clone(l.data[i].Val), nil
}

func (l *List) Delete(key int64) error {
	i, found := l.find(key)
	if !found {
		return ErrNotFound
	}
	l.data = slices.Delete(l.data, i, i+1)
	return nil
}

// Range iterates over a snapshot of the pairs in [start, end].
func (l *List) Range(start, end int64) (Iterator, error) {
	if start > end {
		return &listIterator{cur: -1}, nil
	}
	from, _ := l.find(start)
	to, found := l.find(end)
	if found {
		to++
	}
	return &listIterator{data: slices.Clone(l.data[from:to]), cur: -1}, nil
}

func (l *List) Close() error { return nil }

type listIterator struct {
	data []pair
	cur  int
}

func (it *listIterator) Next() bool {
	if it.cur < len(it.data) {
		it.cur++
	}
	return it.cur < len(it.data)
}

func (it *listIterator) Key() int64    { return it.data[it.cur].Key }
func (it *listIterator) Value() []byte { return clone(it.data[it.cur].Val) }
func (it *listIterator) Error() error  { return nil }
func (it *listIterator) Close() error  { return nil }

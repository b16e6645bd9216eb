package btree

import (
	"errors"
	"slices"
	"testing"
)

func collect[K, V any](c *Cursor[K, V]) []Entry[K, V] {
	var out []Entry[K, V]
	for ; !c.IsEnd(); c.Next() {
		e, err := c.Entry()
		if err != nil {
			panic(err)
		}
		out = append(out, e)
	}
	return out
}

func TestCursorMatchesRangeQuery(t *testing.T) {
	for _, bf := range []int{3, 4, 7} {
		tree := New[int, int](bf)
		for k := 0; k < 200; k += 3 {
			tree.Insert(k, -k)
		}
		bounds := [][2]int{
			{0, 199}, {-10, 1000}, {4, 4}, {3, 3}, {10, 50}, {11, 13}, {50, 10}, {198, 300}, {-5, -1},
		}
		for _, b := range bounds {
			want := tree.RangeQuery(b[0], b[1])
			got := collect(tree.CursorTo(b[0], b[1]))
			if !slices.Equal(got, want) {
				t.Fatalf("bf=%d cursor(%d,%d): got %v, want %v", bf, b[0], b[1], got, want)
			}
		}
	}
}

func TestCursorWithoutUpperBound(t *testing.T) {
	tree := New[int, string](4)
	for k := 1; k <= 30; k++ {
		tree.Insert(k, "")
	}
	got := collect(tree.Cursor(25))
	if len(got) != 6 || got[0].Key != 25 || got[5].Key != 30 {
		t.Fatalf("cursor(25): got %v", got)
	}
	if c := tree.Cursor(31); !c.IsEnd() {
		t.Fatalf("cursor past the largest key should be at the end")
	}
}

func TestCursorReachesEnd(t *testing.T) {
	tree := New[int, string](3)
	for k := 1; k <= 20; k++ {
		tree.Insert(k, "")
	}
	end := tree.End()
	c := tree.CursorTo(3, 9)
	n := 0
	for !c.Equal(end) {
		n++
		c.Next()
	}
	if n != 7 {
		t.Fatalf("loop until end: got %d steps, want 7", n)
	}
	if !c.IsEnd() || c.Valid() {
		t.Fatalf("cursor should be at the end")
	}
	if _, err := c.Key(); !errors.Is(err, ErrCursorExhausted) {
		t.Fatalf("key at end: expected ErrCursorExhausted, got %v", err)
	}
	if _, err := c.Value(); !errors.Is(err, ErrCursorExhausted) {
		t.Fatalf("value at end: expected ErrCursorExhausted, got %v", err)
	}
	c.Next()
	if !c.Equal(end) {
		t.Fatalf("advancing an ended cursor must keep it at the end")
	}
	// exhausted by running off the leaf chain
	c = tree.Cursor(19)
	c.Next()
	c.Next()
	if !c.Equal(end) {
		t.Fatalf("cursor run off the chain should equal end")
	}
}

func TestCursorEquality(t *testing.T) {
	tree := New[int, string](4)
	for k := range 20 {
		tree.Insert(k, "")
	}
	a, b := tree.Cursor(5), tree.Cursor(5)
	if !a.Equal(b) {
		t.Fatalf("cursors at the same key should be equal")
	}
	b.Next()
	if a.Equal(b) {
		t.Fatalf("cursors at different keys should differ")
	}
	a.Next()
	if !a.Equal(b) {
		t.Fatalf("cursors advanced to the same key should be equal")
	}
	if a.Equal(tree.End()) {
		t.Fatalf("valid cursor equals end")
	}
}

func TestCursorSkipsEmptyLeaves(t *testing.T) {
	tree := New[int, string](3)
	for k := 1; k <= 20; k++ {
		tree.Insert(k, "")
	}
	for k := 3; k <= 14; k++ {
		tree.Remove(k)
	}
	if tree.Stats().EmptyLeaves == 0 {
		t.Fatalf("test setup should produce empty leaves")
	}
	c := tree.Cursor(3)
	if k, err := c.Key(); err != nil || k != 15 {
		t.Fatalf("cursor(3): got %d/%v, want 15", k, err)
	}
	var keys []int
	for _, e := range collect(tree.Cursor(0)) {
		keys = append(keys, e.Key)
	}
	if want := []int{1, 2, 15, 16, 17, 18, 19, 20}; !slices.Equal(keys, want) {
		t.Fatalf("full cursor scan: got %v, want %v", keys, want)
	}
	if got := collect(tree.CursorTo(4, 12)); len(got) != 0 {
		t.Fatalf("cursor over deleted range: got %v", got)
	}
}

func TestCursorOnEmptyTree(t *testing.T) {
	tree := New[string, int](4)
	c := tree.Cursor("a")
	if !c.IsEnd() || !c.Equal(tree.End()) {
		t.Fatalf("cursor on empty tree should be at the end")
	}
	if _, err := c.Entry(); !errors.Is(err, ErrCursorExhausted) {
		t.Fatalf("expected ErrCursorExhausted, got %v", err)
	}
}

func TestIterators(t *testing.T) {
	tree := New[int, int](5)
	for k := 100; k > 0; k-- {
		tree.Insert(k, k*2)
	}
	sum, n := 0, 0
	for k, v := range tree.All() {
		if v != 2*k {
			t.Fatalf("all: key %d has value %d", k, v)
		}
		sum += k
		n++
	}
	if n != 100 || sum != 5050 {
		t.Fatalf("all: got %d keys summing to %d", n, sum)
	}
	var keys []int
	for k := range tree.Range(40, 60) {
		if k > 45 {
			break
		}
		keys = append(keys, k)
	}
	if want := []int{40, 41, 42, 43, 44, 45}; !slices.Equal(keys, want) {
		t.Fatalf("range with early break: got %v, want %v", keys, want)
	}
	// iterators are restartable
	count := func() int {
		n := 0
		for range tree.Range(1, 10) {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 10 || b != 10 {
		t.Fatalf("range should restart: got %d and %d", a, b)
	}
}

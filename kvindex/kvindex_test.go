package kvindex

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kv struct {
	Key int64
	Val string
}

func drain(t *testing.T, it Iterator) []kv {
	t.Helper()
	var out []kv
	for it.Next() {
		out = append(out, kv{it.Key(), string(it.Value())})
	}
	require.NoError(t, it.Error())
	require.NoError(t, it.Close())
	return out
}

func indexes(t *testing.T) map[string]Index {
	t.Helper()
	p, err := OpenPebble("", nil)
	require.NoError(t, err)
	idx := map[string]Index{
		"bptree-3":  NewBPTree(3),
		"bptree-16": NewBPTree(16),
		"pebble":    p,
		"list":      NewList(),
	}
	t.Cleanup(func() {
		for _, i := range idx {
			assert.NoError(t, i.Close())
		}
	})
	return idx
}

func TestIndexBasics(t *testing.T) {
	for name, idx := range indexes(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, idx.Insert(7, []byte("seven")))
			require.NoError(t, idx.Insert(-3, []byte("minus three")))
			require.NoError(t, idx.Insert(7, []byte("SEVEN")))

			v, err := idx.Get(7)
			require.NoError(t, err)
			assert.Equal(t, "SEVEN", string(v))

			_, err = idx.Get(8)
			assert.ErrorIs(t, err, ErrNotFound)

			assert.ErrorIs(t, idx.Delete(8), ErrNotFound)
			require.NoError(t, idx.Delete(-3))
			_, err = idx.Get(-3)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestOpenPebbleKeepsCallerOptions(t *testing.T) {
	opts := DefaultPebbleOptions()
	p, err := OpenPebble("", opts)
	require.NoError(t, err)
	assert.Nil(t, opts.FS, "caller's options must not receive the in-memory FS")

	require.NoError(t, p.Insert(1, []byte("one")))
	v, err := p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", string(v))
	require.NoError(t, p.Close())
}

func TestIndexCopiesValues(t *testing.T) {
	for name, idx := range indexes(t) {
		t.Run(name, func(t *testing.T) {
			buf := []byte("abc")
			require.NoError(t, idx.Insert(1, buf))
			buf[0] = 'X'
			v, err := idx.Get(1)
			require.NoError(t, err)
			assert.Equal(t, "abc", string(v))
			v[1] = 'Y'
			v, err = idx.Get(1)
			require.NoError(t, err)
			assert.Equal(t, "abc", string(v))
		})
	}
}

func TestRangeBounds(t *testing.T) {
	for name, idx := range indexes(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []int64{math.MinInt64, -100, -1, 0, 1, 50, 100, math.MaxInt64} {
				require.NoError(t, idx.Insert(k, []byte(strconv.FormatInt(k, 10))))
			}
			it, err := idx.Range(-1, 50)
			require.NoError(t, err)
			assert.Equal(t, []kv{{-1, "-1"}, {0, "0"}, {1, "1"}, {50, "50"}}, drain(t, it))

			it, err = idx.Range(math.MinInt64, math.MaxInt64)
			require.NoError(t, err)
			all := drain(t, it)
			require.Len(t, all, 8)
			assert.Equal(t, int64(math.MinInt64), all[0].Key)
			assert.Equal(t, int64(math.MaxInt64), all[7].Key)

			it, err = idx.Range(60, 10)
			require.NoError(t, err)
			assert.Empty(t, drain(t, it))
		})
	}
}

// TestDifferential applies the same random operations to every index and
// compares their observable state with the sorted list.
func TestDifferential(t *testing.T) {
	idx := indexes(t)
	ref := idx["list"]
	rng := rand.New(rand.NewPCG(7, 11))
	for i := range 4000 {
		key := int64(rng.IntN(800) - 400)
		del := rng.IntN(3) == 0
		val := []byte("v" + strconv.Itoa(i))
		_, err := ref.Get(key)
		present := err == nil
		for name, x := range idx {
			if !del {
				require.NoError(t, x.Insert(key, val), "%s insert(%d)", name, key)
				continue
			}
			if err := x.Delete(key); present {
				require.NoError(t, err, "%s delete(%d)", name, key)
			} else {
				require.ErrorIs(t, err, ErrNotFound, "%s delete(%d)", name, key)
			}
		}
	}
	for lo := int64(-420); lo < 420; lo += 37 {
		hi := lo + int64(rng.IntN(120))
		it, err := ref.Range(lo, hi)
		require.NoError(t, err)
		want := drain(t, it)
		for name, x := range idx {
			it, err := x.Range(lo, hi)
			require.NoError(t, err)
			assert.Equal(t, want, drain(t, it), "%s range(%d,%d)", name, lo, hi)
		}
	}
	tree := idx["bptree-3"].(*BPTree).Tree()
	require.NoError(t, tree.Check())
}

package kvindex

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var _ Index = (*Pebble)(nil)

// Pebble wraps a Pebble LSM database behind the Index interface.
type Pebble struct {
	db *pebble.DB
}

// DefaultPebbleOptions returns the options used by OpenPebble if none are
// given: a 16 MB memtable and eager L0 compaction.
func DefaultPebbleOptions() *pebble.Options {
	return &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}
}

// OpenPebble opens (or creates) a Pebble database in directory dir. If dir
// is empty, the database lives in memory and vanishes on Close. opts is not
// modified.
func OpenPebble(dir string, opts *pebble.Options) (*Pebble, error) {
	if opts == nil {
		opts = DefaultPebbleOptions()
	} else {
		opts = opts.Clone()
	}
	if dir == "" {
		opts.FS = vfs.NewMem()
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("kvindex: open pebble: %w", err)
	}
	tracer().Debugf("kvindex: opened pebble at %q", dir)
	return &Pebble{db: db}, nil
}

func (p *Pebble) Close() error {
	return p.db.Close()
}

func (p *Pebble) Insert(key int64, value []byte) error {
	if err := p.db.Set(encodeKey(key), value, pebble.NoSync); err != nil {
		return fmt.Errorf("kvindex: pebble set: %w", err)
	}
	return nil
}

func (p *Pebble) Get(key int64) ([]byte, error) {
	val, closer, err := p.db.Get(encodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvindex: pebble get: %w", err)
	}
	// val is only valid until closer.Close()
	result := clone(val)
	if err := closer.Close(); err != nil {
		return nil, fmt.Errorf("kvindex: pebble get: %w", err)
	}
	return result, nil
}

// Delete removes key. Pebble deletes blindly, so presence is checked first.
func (p *Pebble) Delete(key int64) error {
	if _, err := p.Get(key); err != nil {
		return err
	}
	if err := p.db.Delete(encodeKey(key), pebble.NoSync); err != nil {
		return fmt.Errorf("kvindex: pebble delete: %w", err)
	}
	return nil
}

func (p *Pebble) Range(start, end int64) (Iterator, error) {
	if start > end {
		return &listIterator{cur: -1}, nil
	}
	iterOpts := &pebble.IterOptions{LowerBound: encodeKey(start)}
	if end < math.MaxInt64 {
		// pebble upper bounds are exclusive
		iterOpts.UpperBound = encodeKey(end + 1)
	}
	iter, err := p.db.NewIter(iterOpts)
	if err != nil {
		return nil, fmt.Errorf("kvindex: pebble range: %w", err)
	}
	iter.First()
	return &pebbleIterator{iter: iter, first: true}, nil
}

// encodeKey encodes an int64 as 8 big-endian bytes with the sign bit
// flipped, so that byte order equals numeric order.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k)^(1<<63))
	return b
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

type pebbleIterator struct {
	iter  *pebble.Iterator
	first bool
	key   int64
	val   []byte
	err   error
}

func (it *pebbleIterator) Next() bool {
	var valid bool
	if it.first {
		it.first = false
		valid = it.iter.Valid()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		it.err = it.iter.Error()
		return false
	}
	k := it.iter.Key()
	if len(k) != 8 {
		it.err = fmt.Errorf("kvindex: unexpected pebble key length %d", len(k))
		return false
	}
	it.key = decodeKey(k)
	// pebble reuses the buffer on Next()
	it.val = clone(it.iter.Value())
	return true
}

func (it *pebbleIterator) Key() int64    { return it.key }
func (it *pebbleIterator) Value() []byte { return clone(it.val) }
func (it *pebbleIterator) Error() error  { return it.err }
func (it *pebbleIterator) Close() error  { return it.iter.Close() }

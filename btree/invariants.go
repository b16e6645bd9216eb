package btree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - keys within every node are strictly ascending and within capacity,
//   - internal nodes have exactly one more child than keys,
//   - every key lies within the separator bounds of its parents,
//   - all leaves are at the same depth,
//   - the leaf chain links all leaves from left to right and ends in nil,
//   - the number of stored pairs matches Len.
//
// Minimum occupancy is not checked, as deletion does not rebalance.
// Violations are reported as errors wrapping ErrInvalidTree.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: tree without root has length %d", ErrInvalidTree, t.length)
		}
		return nil
	}
	if inner, ok := t.root.(*innerNode[K, V]); ok && len(inner.keys) == 0 {
		return fmt.Errorf("%w: internal root without keys", ErrInvalidTree)
	}
	chk := &checker[K, V]{t: t}
	if err := chk.checkNode(t.root, nil, nil, 1); err != nil {
		tracer().Errorf("btree: %v", err)
		return err
	}
	if err := chk.checkChain(); err != nil {
		tracer().Errorf("btree: %v", err)
		return err
	}
	if chk.pairs != t.length {
		err := fmt.Errorf("%w: counted %d pairs, length is %d", ErrInvalidTree, chk.pairs, t.length)
		tracer().Errorf("btree: %v", err)
		return err
	}
	return nil
}

type checker[K, V any] struct {
	t         *Tree[K, V]
	leaves    []*leafNode[K, V] // in tree order
	leafDepth int
	pairs     int
}

// checkNode validates the subtree at n. lo and hi are the inclusive lower
// and exclusive upper bound for its keys, nil if unbounded.
func (chk *checker[K, V]) checkNode(n node[K, V], lo, hi *K, depth int) error {
	cmp := chk.t.cfg.Compare
	keys, err := chk.nodeKeys(n)
	if err != nil {
		return err
	}
	if len(keys) > chk.t.maxKeys {
		return fmt.Errorf("%w: node at depth %d holds %d keys, capacity %d",
			ErrInvalidTree, depth, len(keys), chk.t.maxKeys)
	}
	for i := range keys {
		if i > 0 && cmp(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("%w: keys not ascending at depth %d, position %d", ErrInvalidTree, depth, i)
		}
		if lo != nil && cmp(keys[i], *lo) < 0 {
			return fmt.Errorf("%w: key %v below separator %v", ErrInvalidTree, keys[i], *lo)
		}
		if hi != nil && cmp(keys[i], *hi) >= 0 {
			return fmt.Errorf("%w: key %v not below separator %v", ErrInvalidTree, keys[i], *hi)
		}
	}
	switch n := n.(type) {
	case *leafNode[K, V]:
		if len(n.values) != len(n.keys) {
			return fmt.Errorf("%w: leaf has %d keys but %d values", ErrInvalidTree, len(n.keys), len(n.values))
		}
		if chk.leafDepth == 0 {
			chk.leafDepth = depth
		} else if chk.leafDepth != depth {
			return fmt.Errorf("%w: leaves at depths %d and %d", ErrInvalidTree, chk.leafDepth, depth)
		}
		chk.leaves = append(chk.leaves, n)
		chk.pairs += len(n.keys)
	case *innerNode[K, V]:
		if len(n.children) != len(n.keys)+1 {
			return fmt.Errorf("%w: internal node has %d keys but %d children",
				ErrInvalidTree, len(n.keys), len(n.children))
		}
		for i, child := range n.children {
			if child == nil {
				return fmt.Errorf("%w: nil child at depth %d", ErrInvalidTree, depth)
			}
			clo, chi := lo, hi
			if i > 0 {
				clo = &n.keys[i-1]
			}
			if i < len(n.keys) {
				chi = &n.keys[i]
			}
			if err := chk.checkNode(child, clo, chi, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (chk *checker[K, V]) nodeKeys(n node[K, V]) ([]K, error) {
	switch n := n.(type) {
	case *leafNode[K, V]:
		return n.keys, nil
	case *innerNode[K, V]:
		return n.keys, nil
	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrInvalidTree)
	default:
		panic("unknown tree node type")
	}
}

// checkChain verifies that following next links visits exactly the leaves
// found by the tree walk, in the same order.
func (chk *checker[K, V]) checkChain() error {
	i := 0
	for leaf := chk.t.firstLeaf(); leaf != nil; leaf = leaf.next {
		if i >= len(chk.leaves) || chk.leaves[i] != leaf {
			return fmt.Errorf("%w: leaf chain diverges from tree order at leaf %d", ErrInvalidTree, i)
		}
		i++
	}
	if i != len(chk.leaves) {
		return fmt.Errorf("%w: leaf chain ends after %d of %d leaves", ErrInvalidTree, i, len(chk.leaves))
	}
	return nil
}

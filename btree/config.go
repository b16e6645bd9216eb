package btree

import (
	"cmp"
	"fmt"
)

// MinBranchingFactor is the smallest fanout a tree will use. Smaller
// branching factors are clamped to this value rather than rejected.
const MinBranchingFactor = 3

// Config configures a B+ tree.
type Config[K any] struct {
	// BranchingFactor is the maximum number of children of an internal node.
	// Nodes hold at most BranchingFactor-1 keys.
	BranchingFactor int
	// Compare defines the total order of keys. It returns a negative number
	// if a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
}

// OrderedConfig returns a configuration for key types with a natural order.
func OrderedConfig[K cmp.Ordered](branchingFactor int) Config[K] {
	return Config[K]{
		BranchingFactor: branchingFactor,
		Compare:         cmp.Compare[K],
	}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.BranchingFactor < MinBranchingFactor {
		tracer().Debugf("btree: branching factor %d clamped to %d",
			cfg.BranchingFactor, MinBranchingFactor)
		cfg.BranchingFactor = MinBranchingFactor
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: key comparator is required", ErrInvalidConfig)
	}
	return nil
}

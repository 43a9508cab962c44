package treap

import (
	"cmp"
	"fmt"
	"math/rand/v2"
)

// Config configures a treap.
type Config[K, V any] struct {
	// Compare defines the total order over keys. It returns a negative number
	// if a < b, zero if a == b and a positive number if a > b. Required.
	Compare func(a, b K) int
	// Allocator provides node storage. Defaults to HeapAllocator.
	Allocator Allocator[K, V]
	// Seed is the initial state of the priority generator. It is used only
	// if FixedSeed is set; otherwise a random seed is drawn.
	Seed      uint64
	FixedSeed bool
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator[K, V]{}
	}
	if !cfg.FixedSeed {
		cfg.Seed = rand.Uint64()
		cfg.FixedSeed = true
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

// OrderedConfig returns a configuration for key types with a natural order.
func OrderedConfig[K cmp.Ordered, V any]() Config[K, V] {
	return Config[K, V]{Compare: cmp.Compare[K]}
}

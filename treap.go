package treap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
)

// Treap is an ordered map from keys K to values V.
//
// A treap has to be created with New or NewOrdered. It is not safe for
// concurrent use.
type Treap[K, V any] struct {
	cmp       func(a, b K) int
	allocator Allocator[K, V]
	root      *Node[K, V]
	prng      prng
	count     int
}

// New creates an empty treap with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Treap[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Treap[K, V]{
		cmp:       cfg.Compare,
		allocator: cfg.Allocator,
		prng:      prng{state: cfg.Seed},
	}, nil
}

// NewOrdered creates an empty treap for a key type with a natural order,
// using heap allocation and a random seed.
func NewOrdered[K cmp.Ordered, V any]() *Treap[K, V] {
	t, err := New(OrderedConfig[K, V]())
	assert(err == nil, "NewOrdered: cannot create treap")
	return t
}

// Len returns the number of entries.
func (t *Treap[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the treap has no entries.
func (t *Treap[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns the root node for inspection, or nil for an empty treap.
func (t *Treap[K, V]) Root() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root
}

// Upsert inserts a key with a value, or updates the value if the key is
// already present. An update leaves the tree structure untouched.
//
// Upsert returns true if a new entry has been created.
func (t *Treap[K, V]) Upsert(key K, value V) bool {
	if found := t.Find(key); found != nil {
		found.value = value
		return false
	}
	node := t.allocator.Allocate()
	assert(node != nil, "Upsert: allocator returned nil node")
	*node = Node[K, V]{
		priority: t.prng.next(),
		key:      key,
		value:    value,
	}
	t.count++
	// (LEQ_k, GT_k) => merge(merge(LEQ_k, k), GT_k)
	leq, gt := split(t.root, key, splitLEQ, t.cmp)
	t.root = merge(merge(leq, node), gt)
	return true
}

// Remove deletes the entry for a key. Removing an absent key is a no-op.
//
// Remove returns true if an entry has been deleted.
func (t *Treap[K, V]) Remove(key K) bool {
	// (LEQ_k, GT_k)
	leq, gt := split(t.root, key, splitLEQ, t.cmp)
	// (LT_k, EQ_k), as keys are unique
	lt, eq := split(leq, key, splitLT, t.cmp)
	removed := eq != nil
	if removed {
		assert(eq.left == nil && eq.right == nil, "Remove: split out more than one node")
		t.count--
		t.allocator.Release(eq)
	}
	t.root = merge(lt, gt)
	return removed
}

// RemoveAll deletes every entry. The treap may be used again afterwards.
func (t *Treap[K, V]) RemoveAll() {
	released := 0
	todo := []*Node[K, V]{t.root}
	for len(todo) > 0 {
		head := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if head == nil {
			continue
		}
		todo = append(todo, head.left, head.right)
		t.allocator.Release(head)
		released++
	}
	T().Debugf("treap: released %d nodes", released)
	t.root = nil
	t.count = 0
}

package treap

import "sync"

// Allocator provides storage for treap nodes.
//
// Allocate must never return nil. If storage cannot be provided, the allocator
// has to resolve the situation itself, e.g. by terminating the program; a treap
// performs no recovery from allocation failure. Release hands a node back which
// is no longer reachable from any treap.
type Allocator[K, V any] interface {
	Allocate() *Node[K, V]
	Release(*Node[K, V])
}

// HeapAllocator allocates nodes from the Go heap and leaves released nodes to
// the garbage collector.
type HeapAllocator[K, V any] struct{}

// Allocate returns a new, zeroed node.
func (HeapAllocator[K, V]) Allocate() *Node[K, V] {
	return new(Node[K, V])
}

// Release is a no-op.
func (HeapAllocator[K, V]) Release(*Node[K, V]) {}

// DefaultFreeListSize is the default capacity of a FreeListAllocator.
const DefaultFreeListSize = 32

// FreeListAllocator recycles released nodes. It keeps at most a fixed number
// of nodes in reserve and falls back to the heap when empty.
//
// A free list may be shared by several treaps, including treaps used from
// different goroutines.
type FreeListAllocator[K, V any] struct {
	mu       sync.Mutex
	freelist []*Node[K, V]
}

// NewFreeListAllocator creates a free list holding up to size nodes.
func NewFreeListAllocator[K, V any](size int) *FreeListAllocator[K, V] {
	if size <= 0 {
		size = DefaultFreeListSize
	}
	return &FreeListAllocator[K, V]{freelist: make([]*Node[K, V], 0, size)}
}

// Allocate returns a recycled node if one is available, a new node otherwise.
func (f *FreeListAllocator[K, V]) Allocate() (n *Node[K, V]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(Node[K, V])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

// Release clears a node and keeps it for re-use, as long as the free list
// has room for it.
func (f *FreeListAllocator[K, V]) Release(n *Node[K, V]) {
	if n == nil {
		return
	}
	*n = Node[K, V]{}
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
	}
	f.mu.Unlock()
}

// Len returns the number of nodes currently held in reserve.
func (f *FreeListAllocator[K, V]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

// CountingAllocator wraps another allocator and keeps track of the nodes
// handed out and returned. It is intended for tests checking that no node is
// leaked or released twice.
type CountingAllocator[K, V any] struct {
	Base      Allocator[K, V]
	allocated int
	released  int
	live      map[*Node[K, V]]struct{}
}

// NewCountingAllocator wraps base, or a HeapAllocator if base is nil.
func NewCountingAllocator[K, V any](base Allocator[K, V]) *CountingAllocator[K, V] {
	if base == nil {
		base = HeapAllocator[K, V]{}
	}
	return &CountingAllocator[K, V]{
		Base: base,
		live: make(map[*Node[K, V]]struct{}),
	}
}

// Allocate delegates to the base allocator.
func (c *CountingAllocator[K, V]) Allocate() *Node[K, V] {
	n := c.Base.Allocate()
	assert(n != nil, "allocator returned nil node")
	c.allocated++
	c.live[n] = struct{}{}
	return n
}

// Release delegates to the base allocator. Releasing a node which is not
// live is a programming error and panics.
func (c *CountingAllocator[K, V]) Release(n *Node[K, V]) {
	_, ok := c.live[n]
	assert(ok, "release of a node which is not live")
	delete(c.live, n)
	c.released++
	c.Base.Release(n)
}

// Allocated returns the number of nodes handed out so far.
func (c *CountingAllocator[K, V]) Allocated() int { return c.allocated }

// Released returns the number of nodes returned so far.
func (c *CountingAllocator[K, V]) Released() int { return c.released }

// Live returns the number of nodes handed out and not yet returned.
func (c *CountingAllocator[K, V]) Live() int { return len(c.live) }

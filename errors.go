package treap

import "errors"

var (
	// ErrInvalidConfig signals an invalid treap configuration.
	ErrInvalidConfig = errors.New("treap: invalid configuration")
	// ErrHeapOrder signals a child node with a priority greater than its parent's.
	ErrHeapOrder = errors.New("treap: broken priority order")
	// ErrDepth signals a tree which is unexpectedly deep for its node count.
	ErrDepth = errors.New("treap: depth unexpectedly large")
	// ErrKeyOrder signals keys which are not strictly increasing in-order.
	ErrKeyOrder = errors.New("treap: keys not strictly increasing")
	// ErrNodeCount signals a mismatch between reachable nodes and the tracked count.
	ErrNodeCount = errors.New("treap: node count mismatch")
)

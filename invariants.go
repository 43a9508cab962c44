package treap

import (
	"fmt"
	"math"
)

// Check validates structural treap invariants:
//
//   - every parent has a priority >= its children's,
//   - the tree depth stays within 5·ln(n+1),
//   - an in-order walk sees strictly increasing keys,
//   - the number of reachable nodes equals Len().
//
// Check is a diagnostic for tests. It is never called by the treap itself.
func (t *Treap[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil treap", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrNodeCount, t.count)
		}
		return nil
	}
	if err := t.checkHeap(); err != nil {
		return err
	}
	return t.checkOrder()
}

// checkHeap does a depth-first walk with an explicit stack, checking priorities
// and measuring depth (root at depth 0).
func (t *Treap[K, V]) checkHeap() error {
	expectedMaxDepth := math.Log(float64(t.count+1)) * 5
	type dfs struct {
		depth      int
		parentPrio uint64
		node       *Node[K, V]
	}
	maxDepth := 0
	toVisit := []dfs{{0, math.MaxUint64, t.root}}
	for len(toVisit) > 0 {
		head := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if head.node == nil {
			continue
		}
		maxDepth = max(maxDepth, head.depth)
		if head.parentPrio < head.node.priority {
			return fmt.Errorf("%w: node %v has priority %d > parent priority %d",
				ErrHeapOrder, head.node.key, head.node.priority, head.parentPrio)
		}
		toVisit = append(toVisit,
			dfs{head.depth + 1, head.node.priority, head.node.left},
			dfs{head.depth + 1, head.node.priority, head.node.right})
	}
	if float64(maxDepth) > expectedMaxDepth {
		return fmt.Errorf("%w: depth %d for %d nodes (limit %.1f)",
			ErrDepth, maxDepth, t.count, expectedMaxDepth)
	}
	return nil
}

func (t *Treap[K, V]) checkOrder() error {
	var err error
	var last *Node[K, V]
	seen := 0
	t.VisitInOrder(func(n *Node[K, V]) bool {
		seen++
		if last != nil && t.cmp(last.key, n.key) >= 0 {
			err = fmt.Errorf("%w: %v followed by %v", ErrKeyOrder, last.key, n.key)
			return false
		}
		last = n
		return true
	})
	if err != nil {
		return err
	}
	if seen != t.count {
		return fmt.Errorf("%w: visited %d nodes, tracked %d", ErrNodeCount, seen, t.count)
	}
	return nil
}

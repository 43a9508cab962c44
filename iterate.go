package treap

import "iter"

// VisitInOrder walks all nodes in ascending key order.
//
// Iteration stops early if callback returns false. The treap must not be
// modified during the walk.
func (t *Treap[K, V]) VisitInOrder(fn func(*Node[K, V]) bool) {
	if t == nil || fn == nil {
		return
	}
	var stack []*Node[K, V]
	head := t.root
	for len(stack) > 0 || head != nil {
		for head != nil {
			stack = append(stack, head)
			head = head.left
		}
		head = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(head) {
			return
		}
		head = head.right
	}
}

// VisitRangeInOrder walks all nodes with keys in [from, to) in ascending key
// order. Subtrees outside of the range are not entered.
//
// Iteration stops early if callback returns false. The treap must not be
// modified during the walk.
func (t *Treap[K, V]) VisitRangeInOrder(from, to K, fn func(*Node[K, V]) bool) {
	if t == nil || fn == nil {
		return
	}
	var stack []*Node[K, V]
	head := t.root
	for len(stack) > 0 || head != nil {
		for head != nil {
			stack = append(stack, head)
			if t.cmp(head.key, from) < 0 {
				// everything further left is < from as well
				break
			}
			head = head.left
		}
		head = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cmpFrom := t.cmp(head.key, from)
		cmpTo := t.cmp(head.key, to)
		if cmpFrom >= 0 && cmpTo < 0 {
			if !fn(head) {
				return
			}
		}
		if cmpTo < 0 {
			head = head.right
		} else {
			head = nil
		}
	}
}

// All returns an iterator over all nodes in ascending key order.
func (t *Treap[K, V]) All() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		t.VisitInOrder(yield)
	}
}

// Range returns an iterator over all nodes with keys in [from, to), in
// ascending key order.
func (t *Treap[K, V]) Range(from, to K) iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		t.VisitRangeInOrder(from, to, yield)
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Treap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.VisitInOrder(func(n *Node[K, V]) bool {
			return yield(n.key)
		})
	}
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty treap has height 0.
func (t *Treap[K, V]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	type entry struct {
		node  *Node[K, V]
		depth int
	}
	height := 0
	stack := []entry{{t.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, e.depth)
		if e.node.left != nil {
			stack = append(stack, entry{e.node.left, e.depth + 1})
		}
		if e.node.right != nil {
			stack = append(stack, entry{e.node.right, e.depth + 1})
		}
	}
	return height
}

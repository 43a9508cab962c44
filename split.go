package treap

// splitMode decides on which side of a split nodes equal to the split key go.
type splitMode int

const (
	splitLEQ splitMode = iota // left side takes keys <= k
	splitLT                   // left side takes keys < k
)

// split partitions the tree rooted at head into two trees. Depending on mode,
// the left one holds every key <= k (or < k), the right one the remainder.
// Both results are valid treaps. Nodes are re-linked, never copied.
//
// Recursion depth is bounded by the height of the tree.
func split[K, V any](head *Node[K, V], k K, mode splitMode, cmp func(a, b K) int) (left, right *Node[K, V]) {
	if head == nil {
		return nil, nil
	}
	c := cmp(head.key, k)
	if c < 0 || (c == 0 && mode == splitLEQ) {
		l, r := split(head.right, k, mode, cmp)
		head.right = l
		return head, r
	}
	l, r := split(head.left, k, mode, cmp)
	head.left = r
	return l, head
}

// merge joins two treaps into one. All keys of left must be <= all keys of
// right; this is not checked.
//
// The root with the higher priority stays on top. On a tie the right root
// wins, which keeps the parent's priority >= its children's.
func merge[K, V any](left, right *Node[K, V]) *Node[K, V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.priority > right.priority {
		left.right = merge(left.right, right)
		return left
	}
	right.left = merge(left, right.left)
	return right
}

package treap

// Node is a key/value entry of a treap.
//
// Nodes are owned by their treap. Clients may read keys, read and write values,
// and inspect the tree structure below a node, but never re-link nodes.
type Node[K, V any] struct {
	priority uint64
	key      K
	value    V
	left     *Node[K, V]
	right    *Node[K, V]
}

// Key returns the key of a node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored with a node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue replaces the value of a node in place.
func (n *Node[K, V]) SetValue(v V) {
	n.value = v
}

// Priority returns the heap priority the node has been assigned at creation.
func (n *Node[K, V]) Priority() uint64 {
	return n.priority
}

// Left returns the root of the left subtree, holding smaller keys, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the root of the right subtree, holding greater keys, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

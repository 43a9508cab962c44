package treap

// Find returns the node for a key, or nil if the key is not present.
func (t *Treap[K, V]) Find(key K) *Node[K, V] {
	if t == nil {
		return nil
	}
	node := t.root
	for node != nil {
		c := t.cmp(node.key, key)
		switch {
		case c == 0:
			return node
		case c < 0:
			node = node.right
		default:
			node = node.left
		}
	}
	return nil
}

// Get returns the value stored for a key and whether the key is present.
func (t *Treap[K, V]) Get(key K) (V, bool) {
	if node := t.Find(key); node != nil {
		return node.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether a key is present.
func (t *Treap[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// ClosestLEQ returns the node with the greatest key less than or equal to key,
// or nil if all keys are greater than key.
func (t *Treap[K, V]) ClosestLEQ(key K) *Node[K, V] {
	if t == nil {
		return nil
	}
	var candidate *Node[K, V]
	pos := t.root
	for pos != nil {
		c := t.cmp(pos.key, key)
		if c == 0 { // exact match, can't do better
			return pos
		}
		if c < 0 {
			candidate = pos
			pos = pos.right
		} else {
			pos = pos.left
		}
	}
	return candidate
}

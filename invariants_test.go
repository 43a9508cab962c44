package treap

import (
	"errors"
	"testing"
)

func TestCheckDetectsHeapOrder(t *testing.T) {
	tree := newIntTreap(t, 1)
	tree.root = &Node[int, string]{key: 2, priority: 5,
		left: &Node[int, string]{key: 1, priority: 9},
	}
	tree.count = 2
	if err := tree.Check(); !errors.Is(err, ErrHeapOrder) {
		t.Fatalf("expected ErrHeapOrder, got %v", err)
	}
}

func TestCheckAcceptsEqualPriorities(t *testing.T) {
	tree := newIntTreap(t, 1)
	tree.root = &Node[int, string]{key: 2, priority: 5,
		left:  &Node[int, string]{key: 1, priority: 5},
		right: &Node[int, string]{key: 3, priority: 5},
	}
	tree.count = 3
	if err := tree.Check(); err != nil {
		t.Fatalf("expected ties to be accepted, got %v", err)
	}
}

func TestCheckDetectsKeyOrder(t *testing.T) {
	tree := newIntTreap(t, 1)
	tree.root = &Node[int, string]{key: 2, priority: 5,
		right: &Node[int, string]{key: 1, priority: 3},
	}
	tree.count = 2
	if err := tree.Check(); !errors.Is(err, ErrKeyOrder) {
		t.Fatalf("expected ErrKeyOrder, got %v", err)
	}
	tree.root.right.key = 2 // duplicate key
	if err := tree.Check(); !errors.Is(err, ErrKeyOrder) {
		t.Fatalf("expected ErrKeyOrder for duplicate key, got %v", err)
	}
}

func TestCheckDetectsCountMismatch(t *testing.T) {
	tree := newIntTreap(t, 1)
	tree.Upsert(1, "")
	tree.Upsert(2, "")
	tree.count = 3
	if err := tree.Check(); !errors.Is(err, ErrNodeCount) {
		t.Fatalf("expected ErrNodeCount, got %v", err)
	}
	tree.RemoveAll()
	tree.count = 1
	if err := tree.Check(); !errors.Is(err, ErrNodeCount) {
		t.Fatalf("expected ErrNodeCount for empty tree, got %v", err)
	}
}

func TestCheckDetectsDepth(t *testing.T) {
	tree := newIntTreap(t, 1)
	// a degenerated list of 20 nodes has depth 19 > 5·ln(21)
	var root *Node[int, string]
	for k := 19; k >= 0; k-- {
		root = &Node[int, string]{key: k, priority: uint64(k + 1), right: root}
		if root.right != nil {
			root.priority = root.right.priority + 1
		}
	}
	tree.root, tree.count = root, 20
	if err := tree.Check(); !errors.Is(err, ErrDepth) {
		t.Fatalf("expected ErrDepth, got %v", err)
	}
}

func TestCheckNil(t *testing.T) {
	var tree *Treap[int, int]
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil treap, got %v", err)
	}
}

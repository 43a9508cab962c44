package treap

import (
	"cmp"
	"slices"
	"testing"
)

func collectKeys[K, V any](root *Node[K, V]) []K {
	tree := &Treap[K, V]{root: root}
	var keys []K
	tree.VisitInOrder(func(n *Node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

func checkHeapBelow[K, V any](t *testing.T, n *Node[K, V]) {
	t.Helper()
	if n == nil {
		return
	}
	for _, child := range []*Node[K, V]{n.left, n.right} {
		if child != nil && child.priority > n.priority {
			t.Fatalf("heap order broken below key %v", n.key)
		}
		checkHeapBelow(t, child)
	}
}

func TestSplitEmpty(t *testing.T) {
	l, r := split[int, string](nil, 5, splitLEQ, cmp.Compare[int])
	if l != nil || r != nil {
		t.Fatalf("expected empty tree to split into two empty trees")
	}
	if merge[int, string](nil, nil) != nil {
		t.Fatalf("expected merge of empty trees to be empty")
	}
}

func TestSplitMergeInverse(t *testing.T) {
	tree := newIntTreap(t, 2024)
	var all []int
	for k := 0; k < 200; k += 2 {
		tree.Upsert(k, "")
		all = append(all, k)
	}
	for _, mode := range []splitMode{splitLEQ, splitLT} {
		for _, at := range []int{-10, 0, 1, 50, 51, 198, 199, 500} {
			l, r := split(tree.root, at, mode, tree.cmp)
			checkHeapBelow(t, l)
			checkHeapBelow(t, r)
			lk, rk := collectKeys(l), collectKeys(r)
			for _, k := range lk {
				if k > at || (mode == splitLT && k == at) {
					t.Fatalf("mode %d split at %d: key %d on left side", mode, at, k)
				}
			}
			for _, k := range rk {
				if k < at || (mode == splitLEQ && k == at) {
					t.Fatalf("mode %d split at %d: key %d on right side", mode, at, k)
				}
			}
			tree.root = merge(l, r)
			if got := collectKeys(tree.root); !slices.Equal(got, all) {
				t.Fatalf("merge(split(t, %d)) lost keys: %d of %d", at, len(got), len(all))
			}
			mustCheck(t, tree)
		}
	}
}

func TestSplitLTSeparatesEqualKey(t *testing.T) {
	tree := newIntTreap(t, 5)
	for k := range 10 {
		tree.Upsert(k, "")
	}
	leq, gt := split(tree.root, 4, splitLEQ, tree.cmp)
	lt, eq := split(leq, 4, splitLT, tree.cmp)
	if eq == nil || eq.key != 4 || eq.left != nil || eq.right != nil {
		t.Fatalf("expected a single node with key 4, have %v", collectKeys(eq))
	}
	if got := collectKeys(lt); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("unexpected LT part %v", got)
	}
	if got := collectKeys(gt); !slices.Equal(got, []int{5, 6, 7, 8, 9}) {
		t.Errorf("unexpected GT part %v", got)
	}
	tree.root = merge(merge(lt, eq), gt)
	mustCheck(t, tree)
}

func TestMergeKeepsHigherPriorityOnTop(t *testing.T) {
	a := &Node[int, string]{key: 1, priority: 10}
	b := &Node[int, string]{key: 2, priority: 20}
	if root := merge(a, b); root != b || b.left != a {
		t.Fatalf("expected right node with higher priority as root")
	}
	c := &Node[int, string]{key: 1, priority: 30}
	d := &Node[int, string]{key: 2, priority: 20}
	if root := merge(c, d); root != c || c.right != d {
		t.Fatalf("expected left node with higher priority as root")
	}
	e := &Node[int, string]{key: 1, priority: 5}
	f := &Node[int, string]{key: 2, priority: 5}
	if root := merge(e, f); root != f || f.left != e {
		t.Fatalf("expected right node to win a priority tie")
	}
}

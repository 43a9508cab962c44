package treap

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*Node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *Node[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *Node[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a treap in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with key and priority, empty
// child slots are drawn as small circles.
func (t *Treap[K, V]) Dot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	nilcnt := 0
	edge := func(from int, child *Node[K, V], side string) {
		if child == nil {
			nilcnt++
			fmt.Fprintf(&nodelist, "\"n%d\" %s;\n", nilcnt, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"n%d\" [label=%s];\n", from, nilcnt, side)
			return
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%s];\n", from, ids.alloc(child), side)
	}
	t.VisitInOrder(func(node *Node[K, V]) bool {
		ID := ids.alloc(node)
		label := fmt.Sprintf("%v\\n#%x", node.key, node.priority)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node == t.root))
		edge(ID, node.left, "L")
		edge(ID, node.right, "R")
		return true
	})
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		T().Errorf("treap DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isroot bool) string {
	s := ",style=filled,shape=box"
	if isroot {
		s += ",color=black,fillcolor=\"#FFAA66\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}

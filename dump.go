package treap

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Palette holds the colors used by Dump.
type Palette struct {
	Key      *color.Color
	Value    *color.Color
	Priority *color.Color
	Branch   *color.Color
}

// DefaultPalette is the palette used by Dump in colored mode.
var DefaultPalette = Palette{
	Key:      color.New(color.FgBlue, color.Bold),
	Value:    color.New(color.FgGreen),
	Priority: color.New(color.FgHiBlack),
	Branch:   color.New(color.FgYellow),
}

// Dump writes an indented rendering of the tree structure to w, one node per
// line, right subtrees above their parent and left subtrees below. If colored
// is set, keys, values and priorities are highlighted with DefaultPalette.
func (t *Treap[K, V]) Dump(w io.Writer, colored bool) error {
	p := DefaultPalette
	if !colored {
		p = Palette{}
	}
	var b strings.Builder
	if t.IsEmpty() {
		b.WriteString("(empty)\n")
	} else {
		dumpNode(&b, t.root, "", "", p)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// dumpNode renders a subtree in reverse in-order. Recursion depth is the
// height of the tree.
func dumpNode[K, V any](b *strings.Builder, n *Node[K, V], indent, branch string, p Palette) {
	if n == nil {
		return
	}
	dumpNode(b, n.right, indent+"    ", "┌── ", p)
	b.WriteString(paint(p.Branch, indent+branch))
	b.WriteString(paint(p.Key, fmt.Sprintf("%v", n.key)))
	b.WriteString(" = ")
	b.WriteString(paint(p.Value, fmt.Sprintf("%v", n.value)))
	b.WriteString(" ")
	b.WriteString(paint(p.Priority, fmt.Sprintf("#%x", n.priority)))
	b.WriteString("\n")
	dumpNode(b, n.left, indent+"    ", "└── ", p)
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

package bst

import (
	"fmt"
	"io"
)

// indentation added per level of depth in Dump output
const dumpIndent = 10

// Dump writes a rotated view of the tree to w: the right subtree appears
// above its parent and the left subtree below, indented proportionally to
// depth. Presentational only.
func (t *Tree) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "Tree is empty!")
		return
	}
	t.root.dump(w, 0)
}

func (n *node) dump(w io.Writer, indent int) {
	if n == nil {
		return
	}
	n.right.dump(w, indent+dumpIndent)
	fmt.Fprintf(w, "%*d\n", indent+dumpIndent, n.key)
	n.left.dump(w, indent+dumpIndent)
}

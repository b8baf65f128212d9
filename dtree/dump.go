package dtree

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT rendering of the live arena to w: branches
// as circles, leaves as boxes, each labeled with its stored key via
// keyString. For debugging only; it does not affect query results.
func (t *Tree[K, V, P]) WriteDOT(w io.Writer, keyString func(K) string) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t.root == nilIndex {
		io.WriteString(w, "}\n")
		return
	}

	var nodelist, edgelist string
	var walk func(i int32)
	walk = func(i int32) {
		label := keyString(t.keys[i])
		if t.isLeaf(i) {
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"leaf\\n%s\",style=filled,shape=box,fillcolor=\"#a3d7e4\"];\n", i, label)
			return
		}
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"h=%d\\n%s\",style=filled,shape=circle,color=black,fillcolor=\"#cfe8f3\"];\n", i, t.nodes[i].height, label)
		a, b := t.nodes[i].childA, t.nodes[i].childB
		edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, a)
		edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, b)
		walk(a)
		walk(b)
	}
	walk(t.root)

	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

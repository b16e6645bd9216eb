package btree

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Leaf chain links are drawn as dashed edges.
func (t *Tree[K, V]) WriteDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	t.Visit(func(info NodeInfo[K, V]) bool {
		if info.Leaf {
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\",style=filled,shape=box];\n",
				info.ID, dotLabel(info.Keys))
			if info.Next > 0 {
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\" [style=dashed,constraint=false];\n",
					info.ID, info.Next)
			}
			return true
		}
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\",style=filled,color=black,fillcolor=\"#a3d7e4\"];\n",
			info.ID, dotLabel(info.Keys))
		for _, child := range info.Children {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", info.ID, child)
		}
		return true
	})
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotLabel[K any](keys []K) string {
	if len(keys) == 0 {
		return "∅"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.ReplaceAll(fmt.Sprint(k), `"`, `\"`)
	}
	return strings.Join(parts, " | ")
}

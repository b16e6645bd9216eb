package btree

import (
	"fmt"
	"io"
	"strings"
)

// Print writes an indented rendering of the tree to w, one node per line.
// The format is meant for debugging and may change.
func (t *Tree[K, V]) Print(w io.Writer) {
	if t.Len() == 0 && t.Height() <= 1 {
		fmt.Fprintln(w, "Empty tree")
		return
	}
	fmt.Fprintln(w, "B+ Tree Structure:")
	t.Visit(func(info NodeInfo[K, V]) bool {
		indent := strings.Repeat("  ", info.Depth)
		if info.Leaf {
			pairs := make([]string, len(info.Keys))
			for i := range info.Keys {
				pairs[i] = fmt.Sprintf("(%v:%v)", info.Keys[i], info.Values[i])
			}
			fmt.Fprintf(w, "%sLeaf Node: %s\n", indent, strings.Join(pairs, " "))
			return true
		}
		keys := make([]string, len(info.Keys))
		for i, k := range info.Keys {
			keys[i] = fmt.Sprint(k)
		}
		fmt.Fprintf(w, "%sInternal Node: [%s]\n", indent, strings.Join(keys, " "))
		return true
	})
}

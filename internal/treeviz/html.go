package treeviz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/anocaj/db-internals/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// BuildHTML creates an HTML node tree mirroring the structure of tree: a
// <div class="bptree"> holding nested lists, one <li> per tree node. Leaf
// items carry their chain successor in a data-next attribute.
func BuildHTML[K, V any](tree *btree.Tree[K, V]) *html.Node {
	root := element(atom.Div, "bptree")
	top := element(atom.Ul, "")
	root.AppendChild(top)
	lists := map[int]*html.Node{0: top}
	tree.Visit(func(info btree.NodeInfo[K, V]) bool {
		li := element(atom.Li, "")
		li.Attr = append(li.Attr, html.Attribute{Key: "id", Val: "node-" + strconv.Itoa(info.ID)})
		keys := element(atom.Span, "keys")
		keys.AppendChild(textNode(joinKeys(info.Keys)))
		li.AppendChild(keys)
		if info.Leaf {
			li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "leaf"})
			if info.Next > 0 {
				li.Attr = append(li.Attr, html.Attribute{Key: "data-next", Val: "node-" + strconv.Itoa(info.Next)})
			}
			pairs := element(atom.Dl, "pairs")
			for i := range info.Keys {
				dt := element(atom.Dt, "")
				dt.AppendChild(textNode(fmt.Sprint(info.Keys[i])))
				dd := element(atom.Dd, "")
				dd.AppendChild(textNode(fmt.Sprint(info.Values[i])))
				pairs.AppendChild(dt)
				pairs.AppendChild(dd)
			}
			li.AppendChild(pairs)
		} else {
			li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "internal"})
			children := element(atom.Ul, "")
			li.AppendChild(children)
			lists[info.ID] = children
		}
		lists[info.Parent].AppendChild(li)
		return true
	})
	return root
}

// WriteHTML renders the structure of tree as an HTML fragment to w.
func WriteHTML[K, V any](w io.Writer, tree *btree.Tree[K, V]) error {
	if err := html.Render(w, BuildHTML(tree)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

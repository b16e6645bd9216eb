/*
Package treeviz renders the structure of a B+ tree for humans, either as
colored console output or as an HTML fragment.

Both renderers walk the tree with btree.Tree.Visit and carry no state of
their own.
*/
package treeviz

import (
	"fmt"
	"io"
	"strings"

	"github.com/anocaj/db-internals/btree"
	"github.com/fatih/color"
)

// Role classifies the parts of a console rendering for coloring.
type Role int

const (
	InternalRole Role = iota
	LeafRole
	EmptyLeafRole
	ChainRole
)

// Options control console rendering.
type Options struct {
	Plain      bool                  // no colors
	ValueWidth int                   // truncate values to this display width, 0 for no limit
	Palette    map[Role]*color.Color // nil for the default palette
}

func makeDefaultPalette() map[Role]*color.Color {
	return map[Role]*color.Color{
		InternalRole:  color.New(color.FgBlue, color.Bold),
		LeafRole:      color.New(color.FgGreen),
		EmptyLeafRole: color.New(color.FgRed),
		ChainRole:     color.New(color.FgYellow),
	}
}

type console struct {
	w       io.Writer
	opts    Options
	palette map[Role]*color.Color
	err     error
}

func (c *console) print(role Role, s string) {
	if c.err != nil {
		return
	}
	if !c.opts.Plain {
		if col, ok := c.palette[role]; ok {
			_, c.err = col.Fprint(c.w, s)
			return
		}
	}
	_, c.err = io.WriteString(c.w, s)
}

func (c *console) text(s string) {
	if c.err == nil {
		_, c.err = io.WriteString(c.w, s)
	}
}

// WriteConsole writes an indented rendering of tree to w, one node per line.
// Leaves show their pairs and the ID of the next leaf in the chain. If opts
// is nil, default options are used.
func WriteConsole[K, V any](w io.Writer, tree *btree.Tree[K, V], opts *Options) error {
	c := &console{w: w}
	if opts != nil {
		c.opts = *opts
	}
	c.palette = c.opts.Palette
	if c.palette == nil {
		c.palette = makeDefaultPalette()
	}
	if tree.Height() == 0 {
		c.text("(empty tree)\n")
		return c.err
	}
	idWidth := len(fmt.Sprint(countNodes(tree)))
	tree.Visit(func(info btree.NodeInfo[K, V]) bool {
		c.text(fmt.Sprintf("#%-*d ", idWidth, info.ID))
		c.text(strings.Repeat("  ", info.Depth))
		if !info.Leaf {
			c.print(InternalRole, "◆ ")
			c.text(joinKeys(info.Keys))
			c.text("\n")
			return c.err == nil
		}
		if len(info.Keys) == 0 {
			c.print(EmptyLeafRole, "○ (empty)")
		} else {
			c.print(LeafRole, "● ")
			pairs := make([]string, len(info.Keys))
			for i := range info.Keys {
				v := Truncate(fmt.Sprint(info.Values[i]), c.opts.ValueWidth)
				pairs[i] = fmt.Sprintf("%v:%s", info.Keys[i], v)
			}
			c.text(strings.Join(pairs, "  "))
		}
		if info.Next > 0 {
			c.print(ChainRole, fmt.Sprintf(" → #%d", info.Next))
		}
		c.text("\n")
		return c.err == nil
	})
	return c.err
}

func countNodes[K, V any](tree *btree.Tree[K, V]) int {
	n := 0
	tree.Visit(func(btree.NodeInfo[K, V]) bool {
		n++
		return true
	})
	return n
}

func joinKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(parts, " | ") + "]"
}

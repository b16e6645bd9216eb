package treeviz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anocaj/db-internals/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func sampleTree() *btree.Tree[int, string] {
	tree := btree.New[int, string](3)
	for _, k := range []int{5, 15, 10, 20, 1, 7} {
		tree.Insert(k, "v"+strings.Repeat("x", k%4))
	}
	return tree
}

func TestWidth(t *testing.T) {
	cases := []struct {
		s string
		w int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"é", 1},
	}
	for _, c := range cases {
		if got := Width(c.s); got != c.w {
			t.Fatalf("Width(%q): got %d, want %d", c.s, got, c.w)
		}
	}
	if got := Pad("ab", 4); got != "ab  " {
		t.Fatalf("Pad: got %q", got)
	}
	if got := Truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("Truncate: got %q, want %q", got, "abc…")
	}
	if got := Truncate("abc", 0); got != "abc" {
		t.Fatalf("Truncate without limit: got %q", got)
	}
	if got := Pad("", 2); got != "  " {
		t.Fatalf("Pad of empty string: got %q", got)
	}
	if got := Truncate("", 3); got != "" {
		t.Fatalf("Truncate of empty string: got %q", got)
	}
}

func TestWriteConsolePlain(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := sampleTree()
	var buf bytes.Buffer
	if err := WriteConsole(&buf, tree, &Options{Plain: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output contains escape sequences")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	st := tree.Stats()
	if len(lines) != st.Leaves+st.InnerNodes {
		t.Fatalf("got %d lines, want one per node (%d)", len(lines), st.Leaves+st.InnerNodes)
	}
	if !strings.Contains(out, "● 1:v") || !strings.Contains(out, "→ #") {
		t.Fatalf("missing leaf pairs or chain links in output")
	}
	tree.Remove(1)
	buf.Reset()
	if err := WriteConsole(&buf, tree, &Options{Plain: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "○ (empty)") {
		t.Fatalf("expected an empty leaf marker after deleting the smallest key:\n%s", buf.String())
	}
}

func TestWriteConsoleEmptyValue(t *testing.T) {
	tree := btree.New[int, string](3)
	tree.Insert(1, "")
	tree.Insert(2, "a rather long value")
	var buf bytes.Buffer
	if err := WriteConsole(&buf, tree, &Options{Plain: true, ValueWidth: 10}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "● 1:  2:a rather …") {
		t.Fatalf("unexpected rendering of empty and truncated values:\n%s", out)
	}
}

func TestWriteConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteConsole(&buf, btree.New[int, int](4), nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(empty tree)\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteHTML(t *testing.T) {
	tree := sampleTree()
	var buf bytes.Buffer
	if err := WriteHTML(&buf, tree); err != nil {
		t.Fatal(err)
	}
	nodes, err := html.ParseFragment(&buf, nil)
	if err != nil {
		t.Fatalf("rendered HTML does not parse: %v", err)
	}
	var leaves, internals, pairs int
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val == "leaf" {
					leaves++
				} else if a.Key == "class" && a.Val == "internal" {
					internals++
				}
			}
			if n.Data == "dt" {
				pairs++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	st := tree.Stats()
	if leaves != st.Leaves || internals != st.InnerNodes || pairs != tree.Len() {
		t.Fatalf("got %d leaves, %d internal nodes, %d pairs; want %d, %d, %d",
			leaves, internals, pairs, st.Leaves, st.InnerNodes, tree.Len())
	}
}

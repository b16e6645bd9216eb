package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/anocaj/db-internals/btree"
)

func runSession(t *testing.T, tree *btree.Tree[string, string], input string) string {
	t.Helper()
	var out bytes.Buffer
	cli := NewCli(bufio.NewScanner(strings.NewReader(input)), &out, tree, uiConfig{width: 80})
	cli.Start()
	return out.String()
}

func TestCliCommands(t *testing.T) {
	tree := btree.New[string, string](3)
	out := runSession(t, tree, `
SET banana yellow
SET cherry dark red
set date brown
SET apple green
GET cherry
GET kiwi
DEL date
DEL date
RANGE b d
SCAN a
SCAN cherry cherry
LEN
CHECK
BOGUS
`)
	t.Logf("\n%s", out)
	for _, want := range []string{
		"dark red\n",
		"Key not found.\n",
		"banana  yellow\ncherry  dark red\n(2 entries)\n",
		"apple   green\nbanana  yellow\ncherry  dark red\n(3 entries)\n",
		"cherry  dark red\n(1 entries)\n",
		"\n3\n",
		"OK\n",
		"Unknown command \"bogus\"",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("session output lacks %q", want)
		}
	}
	if strings.Count(out, "Key not found.") != 2 {
		t.Fatalf("expected two not-found messages (GET kiwi, second DEL)")
	}
	if _, ok := tree.Search("date"); ok {
		t.Fatalf("DEL did not remove the key")
	}
}

func TestCliExitStopsSession(t *testing.T) {
	tree := btree.New[string, string](4)
	runSession(t, tree, "SET a 1\nEXIT\nSET b 2\n")
	if tree.Len() != 1 {
		t.Fatalf("commands after EXIT were executed, len=%d", tree.Len())
	}
}

func TestCliSeedAndRenderings(t *testing.T) {
	tree := btree.New[string, string](4)
	out := runSession(t, tree, "SEED 50\nSTATS\nDUMP\nDOT\nHTML\nPRINT\nSEED x\n")
	if tree.Len() == 0 || tree.Len() > 50 {
		t.Fatalf("SEED 50 stored %d pairs", tree.Len())
	}
	for _, want := range []string{"pairs", "leaf fill", "strict digraph {", `<div class="bptree">`, "B+ Tree Structure:", "SEED: invalid count"} {
		if !strings.Contains(out, want) {
			t.Fatalf("session output lacks %q", want)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCliEmptyRange(t *testing.T) {
	out := runSession(t, btree.New[string, string](4), "RANGE z a\nSCAN x\nPRINT\n")
	if strings.Count(out, "(no entries)") != 2 || !strings.Contains(out, "Empty tree") {
		t.Fatalf("unexpected output for empty tree:\n%s", out)
	}
}

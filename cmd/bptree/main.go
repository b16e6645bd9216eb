// Command bptree is an interactive shell over an in-memory B+ tree with
// string keys and values.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/anocaj/db-internals/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var order, seedNumRecords *int
var shouldSeed, verbose *bool

func main() {
	setupFlags()
	gtrace.CoreTracer = gologadapter.New()
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}

	tree := btree.New[string, string](*order)
	if *shouldSeed {
		seed(tree, *seedNumRecords)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := NewCli(scanner, os.Stdout, tree, configFromTerminal())
	demo.Start()
}

func setupFlags() {
	order = flag.Int("order", 4, "Branching factor of the tree (values below 3 are raised to 3).")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	verbose = flag.Bool("v", false, "Trace structural changes of the tree.")
	flag.Usage = func() {
		fmt.Println("\nB+ Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

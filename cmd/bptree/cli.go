package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anocaj/db-internals/btree"
	"github.com/anocaj/db-internals/internal/treeviz"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
)

// Cli is an interactive session over a string-keyed B+ tree.
type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *btree.Tree[string, string]
	ui      uiConfig
	errc    *color.Color
	okc     *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.Tree[string, string], ui uiConfig) *Cli {
	return &Cli{
		scanner: s,
		out:     out,
		tree:    t,
		ui:      ui,
		errc:    color.New(color.FgRed),
		okc:     color.New(color.FgGreen),
	}
}

func (c *Cli) Start() {
	if c.ui.interactive {
		c.printHelp()
	}
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B+ Tree CLI (branching factor %d)

Available Commands:
  SET <key> <val>   Insert or update a key-value pair
  GET <key>         Retrieve the value for key
  DEL <key>         Remove a key-value pair
  RANGE <lo> <hi>   List all pairs with lo <= key <= hi
  SCAN <lo> [<hi>]  Walk pairs from lo with a cursor, optionally up to hi
  LEN               Number of stored pairs
  PRINT             Print the tree structure
  DUMP              Print the tree structure with node IDs and leaf links
  DOT               Print the tree in Graphviz DOT format
  HTML              Print the tree as an HTML fragment
  CHECK             Verify structural invariants
  STATS             Print shape statistics
  SEED <n>          Insert n random pairs
  HELP              Show this text
  EXIT              Terminate this session
`, c.tree.BranchingFactor())
}

func (c *Cli) printPrompt() {
	if c.ui.interactive {
		fmt.Fprint(c.out, "> ")
	}
}

func (c *Cli) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.ui.interactive {
		msg = c.errc.Sprint(msg)
	}
	fmt.Fprintln(c.out, msg)
}

func (c *Cli) ok(msg string) {
	if c.ui.interactive {
		msg = c.okc.Sprint(msg)
	}
	fmt.Fprintln(c.out, msg)
}

// processInput executes a single command line. It returns false if the
// session should end.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]
	switch command {
	default:
		c.fail("Unknown command \"%s\"", command)
	case "set":
		c.processSetCommand(args)
	case "get":
		c.processGetCommand(args)
	case "del":
		c.processDeleteCommand(args)
	case "range":
		c.processRangeCommand(args)
	case "scan":
		c.processScanCommand(args)
	case "len":
		fmt.Fprintln(c.out, c.tree.Len())
	case "print":
		c.tree.Print(c.out)
	case "dump":
		c.report(treeviz.WriteConsole(c.out, c.tree, &treeviz.Options{
			Plain:      !c.ui.interactive,
			ValueWidth: c.ui.valueWidth(),
		}))
	case "dot":
		c.report(c.tree.WriteDot(c.out))
	case "html":
		c.report(treeviz.WriteHTML(c.out, c.tree))
	case "check":
		if err := c.tree.Check(); err != nil {
			c.fail("%v", err)
		} else {
			c.ok("OK")
		}
	case "stats":
		c.processStatsCommand()
	case "seed":
		c.processSeedCommand(args)
	case "help":
		c.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func (c *Cli) report(err error) {
	if err != nil {
		c.fail("%v", err)
	}
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) < 2 {
		c.fail("Usage: SET <key> <value>")
		return
	}
	c.tree.Insert(args[0], strings.Join(args[1:], " "))
	c.ok("OK")
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		c.fail("Usage: GET <key>")
		return
	}
	val, ok := c.tree.Search(args[0])
	if !ok {
		c.fail("Key not found.")
		return
	}
	fmt.Fprintln(c.out, val)
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		c.fail("Usage: DEL <key>")
		return
	}
	if !c.tree.Remove(args[0]) {
		c.fail("Key not found.")
		return
	}
	c.ok("OK")
}

func (c *Cli) processRangeCommand(args []string) {
	if len(args) != 2 {
		c.fail("Usage: RANGE <lo> <hi>")
		return
	}
	c.printTable(c.tree.RangeQuery(args[0], args[1]))
}

func (c *Cli) processScanCommand(args []string) {
	var cursor *btree.Cursor[string, string]
	switch len(args) {
	case 1:
		cursor = c.tree.Cursor(args[0])
	case 2:
		cursor = c.tree.CursorTo(args[0], args[1])
	default:
		c.fail("Usage: SCAN <lo> [<hi>]")
		return
	}
	var rows []btree.Entry[string, string]
	for ; !cursor.IsEnd(); cursor.Next() {
		e, err := cursor.Entry()
		if err != nil {
			c.fail("%v", err)
			return
		}
		rows = append(rows, e)
	}
	c.printTable(rows)
}

// printTable prints pairs in two columns, aligned by display width.
func (c *Cli) printTable(rows []btree.Entry[string, string]) {
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "(no entries)")
		return
	}
	keyWidth := 0
	for _, r := range rows {
		keyWidth = max(keyWidth, treeviz.Width(r.Key))
	}
	for _, r := range rows {
		fmt.Fprintf(c.out, "%s  %s\n", treeviz.Pad(r.Key, keyWidth),
			treeviz.Truncate(r.Value, c.ui.valueWidth()))
	}
	fmt.Fprintf(c.out, "(%d entries)\n", len(rows))
}

func (c *Cli) processStatsCommand() {
	st := c.tree.Stats()
	rows := [][2]string{
		{"pairs", strconv.Itoa(st.Pairs)},
		{"height", strconv.Itoa(st.Height)},
		{"internal nodes", strconv.Itoa(st.InnerNodes)},
		{"leaves", strconv.Itoa(st.Leaves)},
		{"empty leaves", strconv.Itoa(st.EmptyLeaves)},
		{"underfull leaves", strconv.Itoa(st.UnderfullLeaves)},
		{"leaf fill", fmt.Sprintf("%.1f%%", 100*st.LeafFill)},
	}
	for _, r := range rows {
		fmt.Fprintf(c.out, "%s  %s\n", treeviz.Pad(r[0], 16), r[1])
	}
}

func (c *Cli) processSeedCommand(args []string) {
	if len(args) != 1 {
		c.fail("Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err == nil && n < 0 {
		err = errors.New("negative count")
	}
	if err != nil {
		c.fail("SEED: invalid count %q: %v", args[0], err)
		return
	}
	seed(c.tree, n)
	c.ok(fmt.Sprintf("OK, %d pairs", c.tree.Len()))
}

// seed inserts n pairs of random words.
func seed(tree *btree.Tree[string, string], n int) {
	for range n {
		tree.Insert(faker.Word()+faker.Word(), faker.Word())
	}
}

// Command bptbench compares B+ trees of different branching factors with
// reference indexes under mixed workloads.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/anocaj/db-internals/internal/bench"
	"github.com/anocaj/db-internals/kvindex"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	records   = flag.Int("n", 100000, "Number of records loaded into each index.")
	orders    = flag.String("orders", "8,32,128", "Comma-separated branching factors to measure.")
	csvPath   = flag.String("csv", "", "Write results as CSV to this file.")
	chartPath = flag.String("chart", "", "Draw a latency chart to this file (.png, .svg, .pdf).")
	withList  = flag.Bool("list", false, "Include the sorted list reference (slow for large n).")
	withPeb   = flag.Bool("pebble", false, "Include a Pebble LSM index.")
	pebbleDir = flag.String("pebble-dir", "", "Directory for the Pebble index; in memory if empty.")
	quiet     = flag.Bool("quiet", false, "Do not print results to stdout.")
	seed      = flag.Uint64("seed", 1, "Seed for key selection.")
)

func main() {
	flag.Usage = func() {
		fmt.Println("\nB+ Tree Benchmark\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	if *quiet {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bfs, err := parseOrders(*orders)
	if err != nil {
		return err
	}
	runner, err := bench.NewRunner(bench.Config{Records: *records, Seed: *seed})
	if err != nil {
		return err
	}
	if !*quiet {
		if err := runner.Attach(bench.NewConsoleSink(os.Stdout, false)); err != nil {
			return err
		}
	}
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := runner.Attach(bench.NewCSVSink(f)); err != nil {
			return err
		}
	}
	if *chartPath != "" {
		title := fmt.Sprintf("Mean latency, %d records", *records)
		if err := runner.Attach(bench.NewChartSink(*chartPath, title)); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := measureAll(ctx, runner, bfs)
	if err := runner.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func measureAll(ctx context.Context, runner *bench.Runner, bfs []int) error {
	for _, bf := range bfs {
		idx := kvindex.NewBPTree(bf)
		if err := runner.Run(ctx, "B+ tree", "order="+strconv.Itoa(bf), idx); err != nil {
			return err
		}
		if err := idx.Tree().Check(); err != nil {
			return err
		}
	}
	if *withList {
		if err := runner.Run(ctx, "List", "", kvindex.NewList()); err != nil {
			return err
		}
	}
	if *withPeb {
		p, err := kvindex.OpenPebble(*pebbleDir, nil)
		if err != nil {
			return err
		}
		err = runner.Run(ctx, "Pebble", "lsm", p)
		if cerr := p.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseOrders(s string) ([]int, error) {
	var bfs []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		bf, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid branching factor %q: %w", f, err)
		}
		bfs = append(bfs, bf)
	}
	if len(bfs) == 0 {
		return nil, fmt.Errorf("no branching factors given")
	}
	return bfs, nil
}

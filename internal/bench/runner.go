package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/anocaj/db-internals/kvindex"
	"github.com/guiguan/caster"
)

// Config parameterizes a Runner.
type Config struct {
	Records   int         // keys loaded before the workloads run
	Ops       int         // operations per workload, defaults to Records/2
	RangeSpan int         // keys covered by a range scan, defaults to 100
	Seed      uint64      // seed for key selection
	Values    ValueSource // defaults to FakerValues
}

func (cfg Config) normalized() Config {
	if cfg.Ops <= 0 {
		cfg.Ops = max(cfg.Records/2, 1)
	}
	if cfg.RangeSpan <= 0 {
		cfg.RangeSpan = 100
	}
	if cfg.Values == nil {
		cfg.Values = FakerValues()
	}
	return cfg
}

// Sink records results. Consume is called for every result in publication
// order, Flush once after the last one. Both are called from a single
// goroutine per sink.
type Sink interface {
	Consume(r Result) error
	Flush() error
}

// Runner measures indexes and broadcasts results to its sinks.
type Runner struct {
	cfg  Config
	cast *caster.Caster // broadcaster for results
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

// NewRunner creates a runner. Sinks must be attached before the first Run.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Records <= 0 {
		return nil, fmt.Errorf("bench: number of records must be positive, is %d", cfg.Records)
	}
	return &Runner{
		cfg:  cfg.normalized(),
		cast: caster.New(nil),
	}, nil
}

// Attach subscribes sink to the results of the runner.
func (r *Runner) Attach(sink Sink) error {
	ch, ok := r.cast.Sub(context.Background(), 64)
	if !ok {
		return errors.New("bench: runner already closed")
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		var failed error
		for m := range ch {
			if failed != nil {
				continue // keep draining
			}
			if err := sink.Consume(m.(Result)); err != nil {
				failed = err
			}
		}
		if failed == nil {
			failed = sink.Flush()
		}
		if failed != nil {
			r.mu.Lock()
			r.errs = append(r.errs, failed)
			r.mu.Unlock()
		}
	}()
	return nil
}

func (r *Runner) publish(res Result) {
	tracer().Debugf("bench: %s %s %s: %d ns/op", res.Structure, res.Config, res.Operation, res.LatencyNs)
	r.cast.Pub(res)
}

// Run loads idx with cfg.Records sequential keys and runs all workloads
// against it. It stops early if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, structure, config string, idx kvindex.Index) error {
	cfg := r.cfg
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	tracer().Infof("bench: running %s (%s), %d records", structure, config, cfg.Records)

	start := time.Now()
	for k := range cfg.Records {
		if err := idx.Insert(int64(k), cfg.Values()); err != nil {
			return fmt.Errorf("bench: load %s: %w", structure, err)
		}
	}
	loadNs := time.Since(start).Nanoseconds() / int64(cfg.Records)
	mem := ReadMemoryStats()
	r.publish(Result{
		Structure:   structure,
		Config:      config,
		Operation:   "Load",
		Ops:         cfg.Records,
		LatencyNs:   loadNs,
		MemMB:       mem.AllocMB,
		HeapObjects: mem.HeapObjects,
	})

	for _, w := range Workloads {
		if err := ctx.Err(); err != nil {
			return err
		}
		ops := cfg.Ops
		if w == Reporting {
			ops = max(ops/100, 1)
		}
		start = time.Now()
		if err := Execute(idx, w, ops, cfg.Records, cfg.RangeSpan, rng, cfg.Values); err != nil {
			return err
		}
		latency := time.Since(start).Nanoseconds() / int64(ops)
		mem = ReadMemoryStats()
		r.publish(Result{
			Structure:   structure,
			Config:      config,
			Operation:   string(w),
			Ops:         ops,
			LatencyNs:   latency,
			MemMB:       mem.AllocMB,
			HeapObjects: mem.HeapObjects,
		})
	}
	return nil
}

// Close ends the broadcast, waits for all sinks to flush and reports their
// errors.
func (r *Runner) Close() error {
	r.cast.Close()
	r.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	return errors.Join(r.errs...)
}

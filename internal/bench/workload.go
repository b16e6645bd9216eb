/*
Package bench measures key/value indexes under mixed workloads.

A Runner loads an index, samples memory, runs the workloads and publishes
a Result per measurement. Results are broadcast to any number of sinks,
which record them as CSV, as a chart or on a console.
*/
package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/anocaj/db-internals/kvindex"
	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Workload is a mix of index operations.
type Workload string

const (
	OLTP      Workload = "OLTP (90/10)"      // 90% point reads, 10% writes
	OLAP      Workload = "OLAP (10/90)"      // 10% point reads, 90% writes
	Reporting Workload = "Reporting (Range)" // range scans only
)

// Workloads lists all workloads in the order a Runner executes them.
var Workloads = []Workload{OLTP, OLAP, Reporting}

// ValueSource produces values for write operations.
type ValueSource func() []byte

// FakerValues returns a value source producing random words.
func FakerValues() ValueSource {
	return func() []byte {
		return []byte(faker.Word())
	}
}

// ConstantValue returns a value source always producing v.
func ConstantValue(v string) ValueSource {
	return func() []byte {
		return []byte(v)
	}
}

// Execute runs ops operations of workload w against idx. Keys are drawn
// uniformly from [0, keySpace); range scans cover span consecutive keys.
// Absent keys are not an error.
func Execute(idx kvindex.Index, w Workload, ops, keySpace, span int, rng *rand.Rand, values ValueSource) error {
	if keySpace <= 0 {
		return fmt.Errorf("bench: key space must be positive, is %d", keySpace)
	}
	for range ops {
		choice := rng.IntN(100)
		key := int64(rng.IntN(keySpace))
		var err error
		switch w {
		case OLTP:
			if choice < 90 {
				_, err = idx.Get(key)
			} else {
				err = idx.Insert(key, values())
			}
		case OLAP:
			if choice < 10 {
				_, err = idx.Get(key)
			} else {
				err = idx.Insert(key, values())
			}
		case Reporting:
			err = scan(idx, key, key+int64(span))
		default:
			return fmt.Errorf("bench: unknown workload %q", w)
		}
		if err != nil && !errors.Is(err, kvindex.ErrNotFound) {
			return fmt.Errorf("bench: %s: %w", w, err)
		}
	}
	return nil
}

func scan(idx kvindex.Index, start, end int64) error {
	it, err := idx.Range(start, end)
	if err != nil {
		return err
	}
	for it.Next() {
	}
	if err := it.Error(); err != nil {
		it.Close()
		return err
	}
	return it.Close()
}

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

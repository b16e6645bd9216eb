package bench

import (
	"runtime"
	"strconv"
)

// Result is a single measurement.
type Result struct {
	Structure   string // e.g. "B+ tree"
	Config      string // e.g. "order=32"
	Operation   string
	Ops         int
	LatencyNs   int64 // mean per operation
	MemMB       uint64
	HeapObjects uint64
}

// Record returns the fields of r in CSV column order, see CSVHeader.
func (r Result) Record() []string {
	return []string{
		r.Structure,
		r.Config,
		r.Operation,
		strconv.Itoa(r.Ops),
		strconv.FormatInt(r.LatencyNs, 10),
		strconv.FormatUint(r.MemMB, 10),
		strconv.FormatUint(r.HeapObjects, 10),
	}
}

// CSVHeader names the columns of Result.Record.
var CSVHeader = []string{"Structure", "Config", "Operation", "Ops", "LatencyNs", "MemMB", "HeapObjects"}

// MemoryStats is a snapshot of heap usage.
type MemoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64
	HeapObjects  uint64
}

// ReadMemoryStats collects garbage and samples the heap, so the result
// reflects live data.
func ReadMemoryStats() MemoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return MemoryStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
	}
}

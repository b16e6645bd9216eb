package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// --- CSV -------------------------------------------------------------------

// CSVSink writes results as CSV rows, preceded by a header row.
type CSVSink struct {
	w      *csv.Writer
	header bool
}

func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func (s *CSVSink) Consume(r Result) error {
	if !s.header {
		s.header = true
		if err := s.w.Write(CSVHeader); err != nil {
			return err
		}
	}
	return s.w.Write(r.Record())
}

func (s *CSVSink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}

// --- Console ---------------------------------------------------------------

// ConsoleSink prints one line per result.
type ConsoleSink struct {
	w     io.Writer
	label *color.Color
	plain bool
}

// NewConsoleSink creates a console sink. If plain is set, no colors are used.
func NewConsoleSink(w io.Writer, plain bool) *ConsoleSink {
	return &ConsoleSink{w: w, label: color.New(color.FgCyan), plain: plain}
}

func (s *ConsoleSink) Consume(r Result) error {
	name := fmt.Sprintf("%-10s %-10s", r.Structure, r.Config)
	if !s.plain {
		name = s.label.Sprint(name)
	}
	_, err := fmt.Fprintf(s.w, "%s %-18s %10d ns/op %6d MB %10d objects\n",
		name, r.Operation, r.LatencyNs, r.MemMB, r.HeapObjects)
	return err
}

func (s *ConsoleSink) Flush() error { return nil }

// --- Chart -----------------------------------------------------------------

// ChartSink collects mean latencies and draws them as a grouped bar chart,
// one group per operation and one bar per structure. The image format is
// derived from the file extension of the path.
type ChartSink struct {
	path       string
	title      string
	series     []string             // structure+config, in order of appearance
	operations []string             // in order of appearance
	latency    map[string][]float64 // series → latency per operation
}

func NewChartSink(path, title string) *ChartSink {
	return &ChartSink{path: path, title: title, latency: make(map[string][]float64)}
}

func (s *ChartSink) Consume(r Result) error {
	series := r.Structure
	if r.Config != "" {
		series += " " + r.Config
	}
	if !slices.Contains(s.series, series) {
		s.series = append(s.series, series)
	}
	op := slices.Index(s.operations, r.Operation)
	if op < 0 {
		op = len(s.operations)
		s.operations = append(s.operations, r.Operation)
	}
	vals := s.latency[series]
	for len(vals) <= op {
		vals = append(vals, 0)
	}
	vals[op] = float64(r.LatencyNs)
	s.latency[series] = vals
	return nil
}

// Plot builds the chart from the results consumed so far.
func (s *ChartSink) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.title
	p.Y.Label.Text = "ns/op"
	w := vg.Points(12)
	for i, series := range s.series {
		vals := make(plotter.Values, len(s.operations))
		copy(vals, s.latency[series])
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return nil, fmt.Errorf("bench: chart %s: %w", series, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(len(s.series)-1)/2) * w
		p.Add(bars)
		p.Legend.Add(series, bars)
	}
	p.Legend.Top = true
	p.NominalX(s.operations...)
	return p, nil
}

func (s *ChartSink) Flush() error {
	if len(s.series) == 0 {
		return nil
	}
	p, err := s.Plot()
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, s.path)
}

// Package analysis runs every line query over a line set and collects the
// results into a Report ready for rendering.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"exactgeo/src/config"
	"exactgeo/src/math/geometry"
	"exactgeo/src/math/rational"
)

// Report is the outcome of analyzing a line set.
type Report struct {
	Lines          []LineReport  `json:"lines"`
	Intersections  []PairReport  `json:"intersections"`
	ParallelGroups []GroupReport `json:"parallel_groups"`
}

// AxisResult is one axis intercept query. Exactly one of three states holds:
// a point was found, the query reported no intercept (both fields empty),
// or the query failed and Error holds the message.
type AxisResult struct {
	Point *geometry.Point `json:"point,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (r AxisResult) None() bool {
	return r.Point == nil && r.Error == ""
}

type LineReport struct {
	Name       string     `json:"name"`
	Equation   string     `json:"equation"`
	Degenerate bool       `json:"degenerate,omitempty"`
	XAxis      AxisResult `json:"x_axis"`
	YAxis      AxisResult `json:"y_axis"`
}

// PairReport describes two lines. Point is nil when they have no unique
// intersection.
type PairReport struct {
	First    string          `json:"first"`
	Second   string          `json:"second"`
	Parallel bool            `json:"parallel"`
	Point    *geometry.Point `json:"point,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// GroupReport lists the names of the lines parallel to one distinct line.
type GroupReport struct {
	Name     string   `json:"name"`
	Equation string   `json:"equation"`
	Parallel []string `json:"parallel"`
}

type Analyzer struct {
	logger *slog.Logger
}

// New returns an Analyzer logging to logger. A nil logger discards output.
func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{logger: logger}
}

// Run analyzes lines. Query failures such as division by zero are recorded
// in the report; the returned error only reports a failure of the parallel
// grouping.
func (a *Analyzer) Run(lines []config.NamedLine) (*Report, error) {
	report := &Report{
		Lines:          make([]LineReport, 0, len(lines)),
		Intersections:  []PairReport{},
		ParallelGroups: []GroupReport{},
	}

	for _, nl := range lines {
		report.Lines = append(report.Lines, a.line(nl))
	}

	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			report.Intersections = append(report.Intersections, a.Pair(lines[i], lines[j]))
		}
	}

	bare := make([]geometry.Line, len(lines))
	for i, nl := range lines {
		bare[i] = nl.Line
	}
	groups, err := geometry.GroupParallel(bare)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	for _, g := range groups {
		gr := GroupReport{
			Name:     lines[g.Index].Name,
			Equation: g.Line.String(),
			Parallel: make([]string, 0, len(g.Members)),
		}
		for _, m := range g.Members {
			gr.Parallel = append(gr.Parallel, lines[m].Name)
		}
		report.ParallelGroups = append(report.ParallelGroups, gr)
	}

	a.logger.Debug("analysis complete",
		"lines", len(report.Lines),
		"pairs", len(report.Intersections),
		"groups", len(report.ParallelGroups))
	return report, nil
}

// Pair reports parallelism and the intersection point of two lines.
func (a *Analyzer) Pair(first, second config.NamedLine) PairReport {
	pr := PairReport{First: first.Name, Second: second.Name}
	log := a.logger.With("first", first.Name, "second", second.Name)

	parallel, err := first.Line.IsParallel(second.Line)
	if err != nil {
		pr.Error = err.Error()
		log.Warn("parallel check failed", "error", err)
		return pr
	}
	pr.Parallel = parallel

	p, ok, err := first.Line.Intersect(second.Line)
	switch {
	case err != nil:
		pr.Error = err.Error()
		log.Warn("intersection failed", "error", err)
	case ok:
		pr.Point = &p
		log.Debug("intersection", "point", p.String())
	default:
		log.Debug("no unique intersection")
	}
	return pr
}

func (a *Analyzer) line(nl config.NamedLine) LineReport {
	lr := LineReport{
		Name:       nl.Name,
		Equation:   nl.Line.String(),
		Degenerate: nl.Line.IsDegenerate(),
	}
	log := a.logger.With("line", nl.Name)
	if lr.Degenerate {
		log.Warn("line has a = b = 0; query results are not meaningful")
	}

	lr.XAxis = a.axis(log, "x", nl.Line.XIntercept)
	lr.YAxis = a.axis(log, "y", nl.Line.YIntercept)
	return lr
}

func (a *Analyzer) axis(log *slog.Logger, name string, query func() (geometry.Point, bool, error)) AxisResult {
	p, ok, err := query()
	switch {
	case err != nil:
		level := slog.LevelError
		if errors.Is(err, rational.ErrDivisionByZero) {
			level = slog.LevelWarn
		}
		log.Log(context.Background(), level, "axis intercept failed", "axis", name, "error", err)
		return AxisResult{Error: err.Error()}
	case !ok:
		log.Debug("no axis intercept", "axis", name)
		return AxisResult{}
	}
	log.Debug("axis intercept", "axis", name, "point", p.String())
	return AxisResult{Point: &p}
}

package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"

	"exactgeo/src/analysis"
)

// styles holds the color formatters of the text report.
type styles struct {
	heading *color.Color
	name    *color.Color
	point   *color.Color
	none    *color.Color
	failure *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		name:    color.New(color.Bold, color.FgHiBlue),
		point:   color.New(color.FgHiGreen),
		none:    color.New(color.FgYellow),
		failure: color.New(color.FgHiRed),
	}
	for _, c := range []*color.Color{s.heading, s.name, s.point, s.none, s.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

type textRenderer struct {
	s *styles
}

func newTextRenderer(colored bool) *textRenderer {
	return &textRenderer{s: newStyles(colored)}
}

func (r *textRenderer) RenderReport(w io.Writer, report *analysis.Report) error {
	bw := bufio.NewWriter(w)
	s := r.s

	for _, lr := range report.Lines {
		s.heading.Fprint(bw, "Line ")
		s.name.Fprint(bw, lr.Name)
		bw.WriteString(": " + lr.Equation)
		if lr.Degenerate {
			bw.WriteString(" ")
			s.failure.Fprint(bw, "(degenerate)")
		}
		bw.WriteString("\n")
		r.axis(bw, "X axis", lr.XAxis)
		r.axis(bw, "Y axis", lr.YAxis)
	}

	bw.WriteString("\n")
	s.heading.Fprintln(bw, "Intersections:")
	if len(report.Intersections) == 0 {
		bw.WriteString("  ")
		s.none.Fprintln(bw, "none")
	}
	for _, pr := range report.Intersections {
		bw.WriteString("  ")
		r.pair(bw, pr)
	}

	bw.WriteString("\n")
	s.heading.Fprintln(bw, "Parallel groups:")
	for _, g := range report.ParallelGroups {
		bw.WriteString("  ")
		s.name.Fprint(bw, g.Name)
		bw.WriteString(" (" + g.Equation + ") is parallel to: ")
		if len(g.Parallel) == 0 {
			s.none.Fprintln(bw, "none")
			continue
		}
		bw.WriteString(strings.Join(g.Parallel, ", ") + "\n")
	}
	return writeError(bw.Flush())
}

func (r *textRenderer) RenderPair(w io.Writer, pair analysis.PairReport) error {
	bw := bufio.NewWriter(w)
	r.pair(bw, pair)
	return writeError(bw.Flush())
}

func (r *textRenderer) pair(bw *bufio.Writer, pr analysis.PairReport) {
	s := r.s
	s.name.Fprint(bw, pr.First)
	bw.WriteString(" ^ ")
	s.name.Fprint(bw, pr.Second)
	bw.WriteString(": ")
	switch {
	case pr.Error != "":
		s.failure.Fprint(bw, "error: "+pr.Error)
	case pr.Point != nil:
		s.point.Fprint(bw, pr.Point.String())
	case pr.Parallel:
		s.none.Fprint(bw, "no intersection (parallel)")
	default:
		s.none.Fprint(bw, "no intersection")
	}
	bw.WriteString("\n")
}

func (r *textRenderer) axis(bw *bufio.Writer, label string, res analysis.AxisResult) {
	s := r.s
	bw.WriteString("  " + label + ": ")
	switch {
	case res.Error != "":
		s.failure.Fprint(bw, "error: "+res.Error)
	case res.Point != nil:
		s.point.Fprint(bw, res.Point.String())
	default:
		s.none.Fprint(bw, "none")
	}
	bw.WriteString("\n")
}

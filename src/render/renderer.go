// Package render turns analysis reports into human-readable text or JSON.
package render

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"exactgeo/src/analysis"
	"exactgeo/src/config"
)

// Renderer writes analysis results to w.
type Renderer interface {
	RenderReport(w io.Writer, report *analysis.Report) error
	RenderPair(w io.Writer, pair analysis.PairReport) error
}

// New returns the renderer for format. colored only affects text output.
func New(format string, colored bool) (Renderer, error) {
	switch format {
	case config.FormatText:
		return newTextRenderer(colored), nil
	case config.FormatJSON:
		return jsonRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ColorEnabled resolves a color mode for output going to out. In auto mode
// color is used only when out is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

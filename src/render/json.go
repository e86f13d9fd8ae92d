package render

import (
	"encoding/json"
	"io"

	"exactgeo/src/analysis"
)

type jsonRenderer struct{}

func (jsonRenderer) RenderReport(w io.Writer, report *analysis.Report) error {
	return encode(w, report)
}

func (jsonRenderer) RenderPair(w io.Writer, pair analysis.PairReport) error {
	return encode(w, pair)
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return writeError(encoder.Encode(v))
}

package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exactgeo/src/analysis"
	"exactgeo/src/config"
	"exactgeo/src/math/geometry"
	"exactgeo/src/math/rational"
)

func namedLine(name string, a, b, c int64) config.NamedLine {
	l, err := geometry.LineFromInts(a, b, c)
	if err != nil {
		panic(err)
	}
	return config.NamedLine{Name: name, Line: l}
}

func runReport(t *testing.T, lines ...config.NamedLine) *analysis.Report {
	t.Helper()
	report, err := analysis.New(nil).Run(lines)
	require.NoError(t, err)
	return report
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("xml", false)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTextReport(t *testing.T) {
	report := runReport(t, namedLine("a", 1, -1, -3), namedLine("b", 1, 2, -5))
	r, err := New(config.FormatText, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, report))

	want := `Line a: 1/1*x + -1/1*y + -3/1 = 0
  X axis: (3/1, 0/1)
  Y axis: (0/1, -3/1)
Line b: 1/1*x + 2/1*y + -5/1 = 0
  X axis: (5/1, 0/1)
  Y axis: (0/1, 5/2)

Intersections:
  a ^ b: (11/3, 2/3)

Parallel groups:
  a (1/1*x + -1/1*y + -3/1 = 0) is parallel to: none
  b (1/1*x + 2/1*y + -5/1 = 0) is parallel to: none
`
	assert.Equal(t, want, buf.String())
}

func TestTextReportDefaultSet(t *testing.T) {
	report := runReport(t, config.Default().Lines...)
	r, err := New(config.FormatText, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, report))
	out := buf.String()

	for _, s := range []string{
		"Line l2: 2/1*x + -2/1*y + 1/1 = 0\n  X axis: (-1/2, 0/1)\n  Y axis: (0/1, 1/2)\n",
		"  l1 ^ l2: no intersection (parallel)\n",
		"  l2 ^ l4: (4/3, 11/6)\n",
		"  l3 ^ l4: (-1/1, 3/1)\n",
		"  l1 (1/1*x + -1/1*y + -3/1 = 0) is parallel to: l2, l3\n",
		"  l4 (1/1*x + 2/1*y + -5/1 = 0) is parallel to: none\n",
	} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "\x1b[")
}

func TestTextReportErrors(t *testing.T) {
	report := runReport(t, namedLine("h", 0, 1, -4), namedLine("z", 0, 0, 1))
	r, err := New(config.FormatText, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "  X axis: error: x intercept of 0/1*x + 1/1*y + -4/1 = 0: rational: division by zero\n")
	assert.Contains(t, out, "Line z: 0/1*x + 0/1*y + 1/1 = 0 (degenerate)\n")
	assert.Contains(t, out, "  h ^ z: no intersection (parallel)\n")
}

func TestTextColor(t *testing.T) {
	report := runReport(t, namedLine("a", 1, -1, -3))
	r, err := New(config.FormatText, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, report))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRenderPair(t *testing.T) {
	a := analysis.New(nil)
	pr := a.Pair(namedLine("p", 1, -1, -3), namedLine("q", 2, -2, 1))

	r, err := New(config.FormatText, false)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.RenderPair(&buf, pr))
	assert.Equal(t, "p ^ q: no intersection (parallel)\n", buf.String())
}

func TestJSONReport(t *testing.T) {
	report := runReport(t, namedLine("a", 1, -1, -3), namedLine("b", 1, 2, -5), namedLine("h", 0, 1, -4))
	r, err := New(config.FormatJSON, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, report))

	var decoded struct {
		Lines []struct {
			Name  string `json:"name"`
			XAxis struct {
				Point *struct {
					X rational.Fraction `json:"x"`
					Y rational.Fraction `json:"y"`
				} `json:"point"`
				Error string `json:"error"`
			} `json:"x_axis"`
		} `json:"lines"`
		Intersections []struct {
			First  string          `json:"first"`
			Second string          `json:"second"`
			Point  *geometry.Point `json:"point"`
		} `json:"intersections"`
		ParallelGroups []struct {
			Name     string   `json:"name"`
			Parallel []string `json:"parallel"`
		} `json:"parallel_groups"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Lines, 3)
	require.NotNil(t, decoded.Lines[0].XAxis.Point)
	assert.Equal(t, rational.MustNew(3, 1), decoded.Lines[0].XAxis.Point.X)
	assert.Contains(t, decoded.Lines[2].XAxis.Error, "division by zero")

	require.Len(t, decoded.Intersections, 3)
	require.NotNil(t, decoded.Intersections[0].Point)
	assert.Equal(t, "(11/3, 2/3)", decoded.Intersections[0].Point.String())

	assert.Contains(t, buf.String(), `"x": "11/3"`)
	assert.Len(t, decoded.ParallelGroups, 3)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrors(t *testing.T) {
	report := runReport(t, namedLine("a", 1, -1, -3))
	for _, format := range []string{config.FormatText, config.FormatJSON} {
		r, err := New(format, false)
		require.NoError(t, err)
		err = r.RenderReport(failingWriter{}, report)
		require.Error(t, err, format)
		assert.Contains(t, err.Error(), "disk full")
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))
	assert.False(t, ColorEnabled(config.ColorAuto, &buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(config.ColorAuto, &buf))
}

package analysis

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exactgeo/src/config"
	"exactgeo/src/math/geometry"
	"exactgeo/src/math/rational"
)

var fr = rational.MustNew

func named(name string, a, b, c int64) config.NamedLine {
	return config.NamedLine{
		Name: name,
		Line: geometry.NewLine(fr(a, 1), fr(b, 1), fr(c, 1)),
	}
}

func point(x, y rational.Fraction) *geometry.Point {
	p := geometry.NewPoint(x, y)
	return &p
}

func TestRunDefaultSet(t *testing.T) {
	report, err := New(nil).Run(config.Default().Lines)
	require.NoError(t, err)

	require.Len(t, report.Lines, 4)
	l1 := report.Lines[0]
	assert.Equal(t, "l1", l1.Name)
	assert.Equal(t, "1/1*x + -1/1*y + -3/1 = 0", l1.Equation)
	assert.Equal(t, point(fr(3, 1), rational.Zero), l1.XAxis.Point)
	assert.Equal(t, point(rational.Zero, fr(-3, 1)), l1.YAxis.Point)

	// Six unordered pairs of four lines.
	require.Len(t, report.Intersections, 6)
	byPair := map[string]PairReport{}
	for _, pr := range report.Intersections {
		byPair[pr.First+"^"+pr.Second] = pr
	}
	assert.True(t, byPair["l1^l2"].Parallel)
	assert.Nil(t, byPair["l1^l2"].Point)
	assert.False(t, byPair["l1^l4"].Parallel)
	assert.Equal(t, point(fr(11, 3), fr(2, 3)), byPair["l1^l4"].Point)

	require.Len(t, report.ParallelGroups, 4)
	assert.Equal(t, GroupReport{
		Name:     "l1",
		Equation: "1/1*x + -1/1*y + -3/1 = 0",
		Parallel: []string{"l2", "l3"},
	}, report.ParallelGroups[0])
	assert.Empty(t, report.ParallelGroups[3].Parallel)
}

func TestRunRecordsDivisionByZero(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	report, err := New(logger).Run([]config.NamedLine{
		named("horizontal", 0, 1, -4),
		named("vertical", 1, 0, -2),
	})
	require.NoError(t, err)

	horizontal := report.Lines[0]
	assert.Contains(t, horizontal.XAxis.Error, "division by zero")
	assert.True(t, horizontal.YAxis.None())

	vertical := report.Lines[1]
	assert.True(t, vertical.XAxis.None())
	assert.Contains(t, vertical.YAxis.Error, "division by zero")

	require.Len(t, report.Intersections, 1)
	assert.Equal(t, point(fr(2, 1), fr(4, 1)), report.Intersections[0].Point)

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "axis intercept failed")
	assert.Contains(t, logs.String(), "line=horizontal")
}

func TestRunDegenerate(t *testing.T) {
	report, err := New(nil).Run([]config.NamedLine{named("empty", 0, 0, 1)})
	require.NoError(t, err)
	assert.True(t, report.Lines[0].Degenerate)
	assert.Empty(t, report.Intersections)
}

func TestRunGroupingOverflow(t *testing.T) {
	huge := fr(math.MaxInt64, 1)
	_, err := New(nil).Run([]config.NamedLine{
		{Name: "huge", Line: geometry.NewLine(huge, huge, rational.One)},
		named("small", 2, 3, 0),
	})
	require.ErrorIs(t, err, rational.ErrOverflow)
}

func TestPairOverflowRecorded(t *testing.T) {
	huge := fr(math.MaxInt64, 1)
	pr := New(nil).Pair(
		config.NamedLine{Name: "huge", Line: geometry.NewLine(huge, huge, rational.One)},
		named("small", 2, 3, 0),
	)
	assert.Contains(t, pr.Error, "does not fit")
	assert.Nil(t, pr.Point)
}

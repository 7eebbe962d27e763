package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mwiater/tally/internal/histogram"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, opts Options) string {
	t.Helper()
	var out bytes.Buffer
	_, err := Run(context.Background(), strings.NewReader(input), &out, opts)
	require.NoError(t, err)
	return out.String()
}

func TestRunBasic(t *testing.T) {
	got := run(t, "1\n2\n3\n4\n5\n", Options{Stats: Selection{Basic: true}})
	assert.Equal(t, "count: 5\nmin:   1.000\nmean:  3.000\nmax:   5.000\n", got)
}

func TestRunAllStatistics(t *testing.T) {
	sel := Selection{Count: true, Min: true, Mean: true, Max: true, Sum: true, StandardDeviation: true}
	got := run(t, "2\n4\n4\n4\n5\n5\n7\n9\n", Options{Stats: sel})
	want := strings.Join([]string{
		"count: 8",
		"min:   2.000",
		"mean:  5.000",
		"max:   9.000",
		"sum: 40",
		"standard deviation: 2.138",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestRunSumFormatting(t *testing.T) {
	assert.Equal(t, "sum: 0.5\n", run(t, "0.25\n0.25\n", Options{Stats: Selection{Sum: true}}))
	assert.Equal(t, "sum: -3\n", run(t, "-1\n-2\n", Options{Stats: Selection{Sum: true}}))
}

func TestRunSkipsUnparseableLines(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	got := run(t, "1\nabc\n3\n", Options{Stats: Selection{Count: true, Mean: true}})
	assert.Equal(t, "count: 2\nmean:  2.000\n", got)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "could not parse line 2")
}

func TestRunEmptyStream(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	sel := Selection{Basic: true, Sum: true, StandardDeviation: true}
	cfg := histogram.DefaultConfig()
	got := run(t, "", Options{Stats: sel, Plot: &cfg})
	assert.Equal(t, "count: 0\nsum: 0\n", got)
	assert.NotContains(t, got, "NaN")

	var warnings []string
	for _, e := range hook.AllEntries() {
		warnings = append(warnings, e.Message)
	}
	assert.Len(t, warnings, 5, "min, mean, max, standard deviation, plot: %v", warnings)
}

func TestRunSingleValueStandardDeviation(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	got := run(t, "4\n", Options{Stats: Selection{StandardDeviation: true}})
	assert.Empty(t, got)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "standard deviation")
}

func TestRunPlot(t *testing.T) {
	cfg := histogram.Config{Width: 10, Height: 10, NumLabels: 1}
	got := run(t, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n", Options{Stats: Selection{Count: true}, Plot: &cfg})

	rows := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, rows, 13, "count line, header, ten rows, trailer")
	assert.Equal(t, "count: 10", rows[0])
	for _, row := range rows[2:12] {
		assert.True(t, strings.HasSuffix(row, ": X"), "row %q", row)
	}
	assert.Equal(t, "9.00", rows[12])
}

func TestRunPlotDegenerate(t *testing.T) {
	cfg := histogram.Config{Width: 5, Height: 2, NumLabels: 1, Mode: histogram.Log}
	got := run(t, "3\n3\n3\n", Options{Plot: &cfg})
	assert.Contains(t, got, "3.00: #####\n")
}

func TestRunInvalidPlotConfig(t *testing.T) {
	cfg := histogram.Config{Width: 0, Height: 2, NumLabels: 1}
	var out bytes.Buffer
	_, err := Run(context.Background(), strings.NewReader("1\n"), &out, Options{Plot: &cfg})
	assert.Error(t, err)
	assert.Zero(t, out.Len())
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err := Run(ctx, strings.NewReader("1\n2\n"), &out, Options{Stats: Selection{Count: true}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

func TestSelectionAny(t *testing.T) {
	assert.False(t, Selection{}.Any())
	assert.True(t, Selection{Sum: true}.Any())
	assert.True(t, Selection{Basic: true}.Any())
}

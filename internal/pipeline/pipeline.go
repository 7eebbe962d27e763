// Package pipeline drives a single pass over the input: it accumulates
// statistics, buffers values for plotting and writes the requested output.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mwiater/tally/internal/histogram"
	"github.com/mwiater/tally/internal/ingest"
	"github.com/mwiater/tally/internal/logging"
	"github.com/mwiater/tally/internal/stats"
)

// Options selects what Run produces. A nil Plot disables the histogram.
type Options struct {
	Stats Selection
	Plot  *histogram.Config
}

// Run consumes r to the end, then writes the selected statistics and, when
// requested, the histogram to out. Diagnostics are logged, never written to out.
func Run(ctx context.Context, r io.Reader, out io.Writer, opts Options) (stats.Summary, error) {
	var summary stats.Summary

	if opts.Plot != nil {
		if err := opts.Plot.Validate(); err != nil {
			return summary, fmt.Errorf("invalid plot configuration: %w", err)
		}
	}

	var values []float64
	skipped, err := ingest.Each(ctx, r, func(rec ingest.Record) error {
		summary.Add(rec.Value)
		if opts.Plot != nil {
			values = append(values, rec.Value)
		}
		return nil
	})
	if err != nil {
		return summary, err
	}
	logging.Debugf("read %s values, skipped %s lines", humanize.Comma(int64(summary.Count)), humanize.Comma(int64(skipped)))

	if err := WriteSummary(out, &summary, opts.Stats); err != nil {
		return summary, err
	}

	if opts.Plot == nil {
		return summary, nil
	}
	min, max, err := summary.Range()
	if err != nil {
		logging.Warnf("cannot plot: %v", err)
		return summary, nil
	}
	if min == max {
		logging.Debugf("all values equal %v, plotting a single bucket", min)
	}
	if err := histogram.Plot(out, values, *opts.Plot, min, max); err != nil {
		if errors.Is(err, histogram.ErrNothingToPlot) {
			logging.Warnf("cannot plot: %v", err)
			return summary, nil
		}
		return summary, err
	}
	return summary, nil
}

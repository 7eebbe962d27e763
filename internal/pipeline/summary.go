package pipeline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mwiater/tally/internal/logging"
	"github.com/mwiater/tally/internal/stats"
)

// Selection lists the statistics to print. Basic implies Count, Min, Mean and Max.
type Selection struct {
	Basic             bool
	Count             bool
	Min               bool
	Mean              bool
	Max               bool
	Sum               bool
	StandardDeviation bool
}

// Any reports whether at least one statistic is selected.
func (s Selection) Any() bool {
	return s.Basic || s.Count || s.Min || s.Mean || s.Max || s.Sum || s.StandardDeviation
}

// errWriter keeps the first write error so a run of prints can be checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// WriteSummary prints the selected statistics, one per line, in a fixed order.
// Statistics that are undefined for the observed stream are skipped with a
// warning instead of being printed as NaN or a sentinel.
func WriteSummary(w io.Writer, s *stats.Summary, sel Selection) error {
	ew := &errWriter{w: w}

	if sel.Count || sel.Basic {
		ew.printf("count: %d\n", s.Count)
	}

	lo, hi, rangeErr := s.Range()
	if sel.Min || sel.Basic {
		if rangeErr != nil {
			logging.Warnf("min: %v", rangeErr)
		} else {
			ew.printf("min:   %.3f\n", lo)
		}
	}
	if sel.Mean || sel.Basic {
		if mean, err := s.Mean(); err != nil {
			logging.Warnf("mean: %v", err)
		} else {
			ew.printf("mean:  %.3f\n", mean)
		}
	}
	if sel.Max || sel.Basic {
		if rangeErr != nil {
			logging.Warnf("max: %v", rangeErr)
		} else {
			ew.printf("max:   %.3f\n", hi)
		}
	}
	if sel.Sum {
		ew.printf("sum: %s\n", strconv.FormatFloat(s.Sum, 'f', -1, 64))
	}
	if sel.StandardDeviation {
		if sd, err := s.Moments.SampleStandardDeviation(); err != nil {
			logging.Warnf("standard deviation: %v", err)
		} else {
			ew.printf("standard deviation: %.3f\n", sd)
		}
	}
	return ew.err
}

// Package filter passes through input lines whose values fall within optional bounds.
package filter

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mwiater/tally/internal/ingest"
	"github.com/mwiater/tally/internal/logging"
)

// ConfigParseError reports a bound option that is not a number.
type ConfigParseError struct {
	Option string
	Value  string
	Err    error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("could not parse option --%s %q: %v", e.Option, e.Value, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// Bounds holds the optional limits. A nil side is unbounded.
type Bounds struct {
	Lower *float64
	Upper *float64
}

// ParseBounds builds Bounds from the raw --less-than and --greater-than
// option values. An empty string leaves that side unbounded.
func ParseBounds(lessThan, greaterThan string) (Bounds, error) {
	var b Bounds
	upper, err := parseBound("less-than", lessThan)
	if err != nil {
		return Bounds{}, err
	}
	lower, err := parseBound("greater-than", greaterThan)
	if err != nil {
		return Bounds{}, err
	}
	b.Upper = upper
	b.Lower = lower
	return b, nil
}

func parseBound(option, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ConfigParseError{Option: option, Value: raw, Err: err}
	}
	return &v, nil
}

// Allows reports whether value is inside the bounds. Bounds are inclusive.
func (b Bounds) Allows(value float64) bool {
	if b.Lower != nil && value < *b.Lower {
		return false
	}
	if b.Upper != nil && value > *b.Upper {
		return false
	}
	return true
}

// Run copies every line of r whose value is allowed by b to w, byte for byte
// and in input order. Unparseable lines are logged and dropped. It returns the
// number of lines written.
func Run(ctx context.Context, r io.Reader, w io.Writer, b Bounds) (int, error) {
	passed := 0
	skipped, err := ingest.Each(ctx, r, func(rec ingest.Record) error {
		if !b.Allows(rec.Value) {
			return nil
		}
		if _, err := io.WriteString(w, rec.Text+"\n"); err != nil {
			return fmt.Errorf("write line %d: %w", rec.Line, err)
		}
		passed++
		return nil
	})
	logging.Debugf("filter passed %s lines, skipped %s unparseable", humanize.Comma(int64(passed)), humanize.Comma(int64(skipped)))
	return passed, err
}

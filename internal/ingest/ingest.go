// Package ingest reads newline-delimited numbers.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mwiater/tally/internal/logging"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

var errNotFinite = errors.New("value is not finite")

// Record is one successfully parsed input line.
type Record struct {
	Line  int
	Text  string
	Value float64
}

// ParseError reports a line that is not a finite floating-point literal.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts one line of text into a value.
func Parse(line int, text string) (Record, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return Record{}, &ParseError{Line: line, Text: text, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Record{}, &ParseError{Line: line, Text: text, Err: errNotFinite}
	}
	return Record{Line: line, Text: text, Value: v}, nil
}

// Each calls fn for every parseable line of r, in order. Lines that do not
// parse are logged and skipped. It returns the number of skipped lines along
// with the first error from reading, from fn, or from ctx.
func Each(ctx context.Context, r io.Reader, fn func(Record) error) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	skipped := 0
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return skipped, err
		}
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")

		rec, err := Parse(line, text)
		if err != nil {
			logging.Warnf("%v", err)
			skipped++
			continue
		}
		if err := fn(rec); err != nil {
			return skipped, err
		}
	}
	if err := scanner.Err(); err != nil {
		return skipped, fmt.Errorf("read input: %w", err)
	}
	return skipped, nil
}

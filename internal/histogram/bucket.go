// Package histogram assigns values to buckets and renders them as ASCII bars.
package histogram

import (
	"fmt"
	"math"
)

// Mode selects how the value range is split into buckets.
type Mode int

const (
	// Linear uses equal-width buckets.
	Linear Mode = iota
	// Log uses logarithmically spaced buckets, giving more resolution to low values.
	Log
	// LogReverse mirrors Log, giving more resolution to high values.
	LogReverse
)

// linearInflation widens the linear range slightly so the maximum does not
// land on the upper boundary of the last bucket.
const linearInflation = 1.000001

// ModeFor maps the log-x and log-x-rev switches to a Mode.
func ModeFor(logX, logXRev bool) (Mode, error) {
	switch {
	case logX && logXRev:
		return Linear, fmt.Errorf("log-x and log-x-rev are mutually exclusive")
	case logX:
		return Log, nil
	case logXRev:
		return LogReverse, nil
	default:
		return Linear, nil
	}
}

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Log:
		return "log"
	case LogReverse:
		return "log-reverse"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool {
	return m >= Linear && m <= LogReverse
}

// bucketer maps values into [0, n) for a fixed range.
type bucketer struct {
	mode     Mode
	n        int
	min, max float64
	width    float64 // linear
	logBase  float64 // log modes: ln(max-min+1)
}

func newBucketer(mode Mode, n int, min, max float64) bucketer {
	b := bucketer{mode: mode, n: n, min: min, max: max}
	switch mode {
	case Log, LogReverse:
		b.logBase = math.Log(max - min + 1)
	default:
		// For a negative max, max*1.000001 would shrink the range; inflate by |max| instead.
		span := max - min + math.Abs(max)*(linearInflation-1)
		if !(span > 0) {
			span = max - min
		}
		b.width = span / float64(n)
	}
	return b
}

func (b bucketer) index(v float64) int {
	var f float64
	switch b.mode {
	case Log:
		f = math.Log(v-b.min+1) / b.logBase * float64(b.n)
	case LogReverse:
		f = float64(b.n) * (1 - math.Log(b.max+1-v)/b.logBase)
	default:
		f = (v - b.min) / b.width
	}
	return clamp(math.Floor(f), b.n)
}

// clamp maps a computed bucket position into [0, n). The value nearest to the
// upper bound maps to the last bucket.
func clamp(f float64, n int) int {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f >= float64(n):
		return n - 1
	default:
		return int(f)
	}
}

// lowerEdge returns the value at the left edge of bucket i, inverting the
// transform used by index.
func (m Mode) lowerEdge(i, n int, min, max float64) float64 {
	frac := float64(i) / float64(n)
	switch m {
	case Log:
		return math.Pow(max-min+1, frac) + min - 1
	case LogReverse:
		return max + 1 - math.Pow(max-min+1, 1-frac)
	default:
		return min + float64(i)*(max-min)/float64(n)
	}
}

// Bucketize counts values into n buckets spanning [min, max]. Every value
// increments exactly one bucket. When max == min all values share bucket 0.
func Bucketize(values []float64, n int, min, max float64, mode Mode) []uint64 {
	if n <= 0 {
		return nil
	}
	buckets := make([]uint64, n)
	if !(max > min) {
		buckets[0] = uint64(len(values))
		return buckets
	}

	b := newBucketer(mode, n, min, max)
	for _, v := range values {
		buckets[b.index(v)]++
	}
	return buckets
}

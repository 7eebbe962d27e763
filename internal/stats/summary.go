package stats

import "errors"

// ErrEmptyStream is returned when a query needs a value range but the stream was empty.
var ErrEmptyStream = errors.New("no values in stream")

// Summary aggregates count, range, sum and moments of a stream.
// It is owned by a single caller and updated once per value.
type Summary struct {
	Count   uint64
	Min     float64
	Max     float64
	Sum     float64
	Moments StreamingVariance
}

// Add updates every aggregate with value.
func (s *Summary) Add(value float64) {
	s.Count++
	if s.Count == 1 {
		s.Min = value
		s.Max = value
	} else {
		if value < s.Min {
			s.Min = value
		}
		if value > s.Max {
			s.Max = value
		}
	}
	s.Sum += value
	s.Moments.Update(value)
}

// Range returns the observed minimum and maximum.
func (s *Summary) Range() (float64, float64, error) {
	if s.Count == 0 {
		return 0, 0, ErrEmptyStream
	}
	return s.Min, s.Max, nil
}

// Mean returns the running mean or ErrEmptyStream.
func (s *Summary) Mean() (float64, error) {
	if s.Count == 0 {
		return 0, ErrEmptyStream
	}
	return s.Moments.Mean(), nil
}

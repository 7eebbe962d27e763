// Package stats accumulates running statistics over a stream of values.
package stats

import (
	"errors"
	"math"
)

var (
	// ErrNoValues is returned by queries that need at least one value.
	ErrNoValues = errors.New("no values observed")
	// ErrInsufficientValues is returned by sample queries that need at least two values.
	ErrInsufficientValues = errors.New("at least two values are required")
)

// StreamingVariance holds the values needed for online calculation of mean and
// variance using Welford's algorithm. The zero value is ready to use.
type StreamingVariance struct {
	count uint64
	mean  float64
	m2    float64 // Sum of squares of differences from the current mean
}

// Update adds a single observation.
func (s *StreamingVariance) Update(value float64) {
	s.count++
	delta := value - s.mean
	s.mean += delta / float64(s.count)
	delta2 := value - s.mean
	s.m2 += delta * delta2
}

// Count returns the number of observations.
func (s *StreamingVariance) Count() uint64 {
	return s.count
}

// Mean returns the running mean, or 0 when nothing was observed.
func (s *StreamingVariance) Mean() float64 {
	return s.mean
}

// Variance returns the population variance.
func (s *StreamingVariance) Variance() (float64, error) {
	if s.count == 0 {
		return 0, ErrNoValues
	}
	return s.m2 / float64(s.count), nil
}

// StandardDeviation returns the population standard deviation.
func (s *StreamingVariance) StandardDeviation() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// SampleVariance returns the unbiased sample variance, M2/(n-1).
func (s *StreamingVariance) SampleVariance() (float64, error) {
	if s.count < 2 {
		return 0, ErrInsufficientValues
	}
	return s.m2 / float64(s.count-1), nil
}

// SampleStandardDeviation returns the square root of SampleVariance.
func (s *StreamingVariance) SampleStandardDeviation() (float64, error) {
	v, err := s.SampleVariance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

package histogram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrNothingToPlot is returned when there are no counts to draw.
var ErrNothingToPlot = errors.New("nothing to plot")

// Default plot dimensions.
const (
	DefaultWidth     = 80
	DefaultHeight    = 10
	DefaultNumLabels = 4
)

// Config controls bucketing and rendering. Height is the number of buckets.
type Config struct {
	Width     int
	Height    int
	NumLabels int
	Mode      Mode
	LogY      bool
	OmitEmpty bool
	// BarColor is an optional lipgloss color for the bars. It has no effect
	// when the output does not support color.
	BarColor string
}

// DefaultConfig returns a linear plot with the default dimensions.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		NumLabels: DefaultNumLabels,
		Mode:      Linear,
	}
}

// Validate checks that the plot dimensions are usable.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.NumLabels < 1 {
		return fmt.Errorf("num-labels must be positive, got %d", c.NumLabels)
	}
	if !c.Mode.valid() {
		return fmt.Errorf("unknown bucket mode %v", c.Mode)
	}
	return nil
}

// Plot buckets values and renders them to w.
func Plot(w io.Writer, values []float64, cfg Config, min, max float64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return Render(w, Bucketize(values, cfg.Height, min, max, cfg.Mode), cfg, min, max)
}

// Render writes the histogram for buckets covering [min, max]: a header of
// count markers, one labelled row per bucket and a closing line with max.
func Render(w io.Writer, buckets []uint64, cfg Config, min, max float64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var bucketMax uint64
	for _, c := range buckets {
		if c > bucketMax {
			bucketMax = c
		}
	}
	if bucketMax == 0 {
		return ErrNothingToPlot
	}

	var scale float64
	if cfg.LogY {
		scale = float64(cfg.Width) / math.Log10(float64(bucketMax))
	} else {
		scale = float64(cfg.Width) / float64(bucketMax)
	}

	bar := func(s string) string { return s }
	if cfg.BarColor != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.BarColor))
		bar = func(s string) string { return style.Render(s) }
	}

	bw := bufio.NewWriter(w)
	padding := len(fmt.Sprintf("%.2f", max))

	fmt.Fprintf(bw, "%*s  ", padding, "")
	labelWidth := cfg.Width/cfg.NumLabels - 2
	if labelWidth < 0 {
		labelWidth = 0
	}
	for i := 1; i <= cfg.NumLabels; i++ {
		frac := float64(i) / float64(cfg.NumLabels)
		marker := float64(bucketMax) * frac
		if cfg.LogY {
			marker = math.Pow(10, math.Log10(float64(bucketMax))*frac)
		}
		fmt.Fprintf(bw, "%*.3f |", labelWidth, marker)
	}
	fmt.Fprintln(bw)

	n := len(buckets)
	for i, count := range buckets {
		if cfg.OmitEmpty && count == 0 {
			continue
		}
		fmt.Fprintf(bw, "%*.2f: ", padding, cfg.Mode.lowerEdge(i, n, min, max))
		switch {
		case count > 1:
			size := float64(count)
			if cfg.LogY {
				size = math.Log10(size)
			}
			if tiles := int(math.Round(scale * size)); tiles > 0 {
				bw.WriteString(bar(strings.Repeat("#", tiles)))
			}
		case count == 1:
			bw.WriteString("X")
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "%*.2f\n", padding, max)
	return bw.Flush()
}

// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"strings"

	"github.com/mwiater/tally/internal/histogram"
)

const (
	// ConfigName is the base name of the config file searched for when --config is not given.
	ConfigName = "tally"
	// ConfigType is the only supported config file format.
	ConfigType = "json"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool         `json:"debug"`
	LogFile    string       `json:"logFile,omitempty"`
	Plot       PlotDefaults `json:"plot"`
	ConfigPath string       `json:"-"`
}

// PlotDefaults holds the histogram settings used when the matching plot flag is not given.
type PlotDefaults struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	NumLabels int    `json:"numLabels"`
	LogX      bool   `json:"logX"`
	LogXRev   bool   `json:"logXRev"`
	LogY      bool   `json:"logY"`
	OmitEmpty bool   `json:"omitEmpty"`
	BarColor  string `json:"barColor,omitempty"`
}

// Defaults returns the built-in configuration values, keyed the way viper sees them.
func Defaults() map[string]any {
	return map[string]any{
		"debug":          false,
		"logFile":        "",
		"plot.width":     histogram.DefaultWidth,
		"plot.height":    histogram.DefaultHeight,
		"plot.numLabels": histogram.DefaultNumLabels,
		"plot.logX":      false,
		"plot.logXRev":   false,
		"plot.logY":      false,
		"plot.omitEmpty": false,
		"plot.barColor":  "",
	}
}

// LogFilePath returns the path to the application log file. An empty path
// means diagnostics go to stderr only.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// HistogramConfig converts the plot settings into a renderer configuration.
// Zero sizes fall back to the defaults.
func (c Config) HistogramConfig() (histogram.Config, error) {
	p := c.Plot
	mode, err := histogram.ModeFor(p.LogX, p.LogXRev)
	if err != nil {
		return histogram.Config{}, err
	}

	cfg := histogram.DefaultConfig()
	if p.Width != 0 {
		cfg.Width = p.Width
	}
	if p.Height != 0 {
		cfg.Height = p.Height
	}
	if p.NumLabels != 0 {
		cfg.NumLabels = p.NumLabels
	}
	cfg.Mode = mode
	cfg.LogY = p.LogY
	cfg.OmitEmpty = p.OmitEmpty
	cfg.BarColor = strings.TrimSpace(p.BarColor)

	if err := cfg.Validate(); err != nil {
		return histogram.Config{}, err
	}
	return cfg, nil
}

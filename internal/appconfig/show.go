package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	logFile := cfg.LogFilePath()
	if logFile == "" {
		logFile = "(stderr only)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", logFile)
	fmt.Fprintln(out, "  Plot:")
	fmt.Fprintf(out, "    Width:         %d\n", cfg.Plot.Width)
	fmt.Fprintf(out, "    Height:        %d\n", cfg.Plot.Height)
	fmt.Fprintf(out, "    Num Labels:    %d\n", cfg.Plot.NumLabels)
	fmt.Fprintf(out, "    Log X:         %v\n", cfg.Plot.LogX)
	fmt.Fprintf(out, "    Log X Reverse: %v\n", cfg.Plot.LogXRev)
	fmt.Fprintf(out, "    Log Y:         %v\n", cfg.Plot.LogY)
	fmt.Fprintf(out, "    Omit Empty:    %v\n", cfg.Plot.OmitEmpty)
	if cfg.Plot.BarColor != "" {
		fmt.Fprintf(out, "    Bar Color:     %s\n", cfg.Plot.BarColor)
	}
}

package tally

import (
	"github.com/mwiater/tally/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// plotCmd draws a histogram of the values read from stdin, after any
// statistics selected with the root flags.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw a histogram of the values on stdin",
	Long: `Collect every value from stdin, then draw a histogram with one row per bucket.

Bucket boundaries depend on the minimum and maximum of the whole stream, so
nothing is drawn until the input ends. --log-x and --log-x-rev space the
buckets logarithmically; --log-y scales bar lengths logarithmically.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plotCfg, err := GetConfig().HistogramConfig()
		if err != nil {
			return err
		}
		_, err = pipeline.Run(commandContext(cmd), cmd.InOrStdin(), cmd.OutOrStdout(), pipeline.Options{
			Stats: statFlags,
			Plot:  &plotCfg,
		})
		return err
	},
}

func init() {
	plotCmd.Flags().Int("width", 0, "width of the longest bar in characters (0 = config or 80)")
	plotCmd.Flags().Int("height", 0, "number of buckets (0 = config or 10)")
	plotCmd.Flags().Int("num-labels", 0, "number of count markers in the header (0 = config or 4)")
	plotCmd.Flags().Bool("log-x", false, "space buckets logarithmically, favouring small values")
	plotCmd.Flags().Bool("log-x-rev", false, "space buckets logarithmically, favouring large values")
	plotCmd.Flags().Bool("log-y", false, "scale bar lengths logarithmically")
	plotCmd.Flags().Bool("omit-empty", false, "skip rows for empty buckets")
	plotCmd.Flags().String("bar-color", "", "color for the bars when writing to a terminal (e.g. 63 or #7D56F4)")
	plotCmd.MarkFlagsMutuallyExclusive("log-x", "log-x-rev")

	for key, flag := range map[string]string{
		"plot.width":     "width",
		"plot.height":    "height",
		"plot.numLabels": "num-labels",
		"plot.logX":      "log-x",
		"plot.logXRev":   "log-x-rev",
		"plot.logY":      "log-y",
		"plot.omitEmpty": "omit-empty",
		"plot.barColor":  "bar-color",
	} {
		_ = viper.BindPFlag(key, plotCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(plotCmd)
}

package tally

import (
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/mwiater/tally/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showConfigDump bool

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:   viper.GetBool("debug"),
			LogFile: viper.GetString("logFile"),
			Plot: appconfig.PlotDefaults{
				Width:     viper.GetInt("plot.width"),
				Height:    viper.GetInt("plot.height"),
				NumLabels: viper.GetInt("plot.numLabels"),
				LogX:      viper.GetBool("plot.logX"),
				LogXRev:   viper.GetBool("plot.logXRev"),
				LogY:      viper.GetBool("plot.logY"),
				OmitEmpty: viper.GetBool("plot.omitEmpty"),
				BarColor:  viper.GetString("plot.barColor"),
			},
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)

		if showConfigDump {
			pp.ColoringEnabled = !color.NoColor
			cfg := GetConfig()
			if cfg == nil {
				cfg = &fallback
			}
			pp.Fprintln(cmd.OutOrStdout(), cfg)
		}
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigDump, "dump", false, "also pretty-print the raw configuration struct")
	showCmd.AddCommand(showConfigCmd)
}

// internal/commands/root.go
package tally

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mwiater/tally/internal/appconfig"
	"github.com/mwiater/tally/internal/logging"
	"github.com/mwiater/tally/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	statFlags     pipeline.Selection
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd prints summary statistics of the numbers read from stdin.
var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Summary statistics, histograms and filters for numbers on stdin",
	Long: `Read one number per line from stdin and print summary statistics.

Use the plot subcommand to draw a histogram and the filter subcommand to pass
through only the lines within given bounds. Lines that are not numbers are
reported on stderr and skipped.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// Flags > config file > defaults.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath(), currentConfig.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.LogEvent("config loaded from %q", cfg.ConfigPath)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !statFlags.Any() {
			return cmd.Help()
		}
		_, err := pipeline.Run(commandContext(cmd), cmd.InOrStdin(), cmd.OutOrStdout(), pipeline.Options{Stats: statFlags})
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logging.Close()

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./tally.json or $HOME/.config/tally/tally.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "", "also append diagnostics to this file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))

	rootCmd.PersistentFlags().BoolVarP(&statFlags.Basic, "basic", "b", false, "print count, min, mean and max")
	rootCmd.PersistentFlags().BoolVar(&statFlags.Count, "count", false, "print the number of values")
	rootCmd.PersistentFlags().BoolVar(&statFlags.Min, "min", false, "print the minimum")
	rootCmd.PersistentFlags().BoolVar(&statFlags.Mean, "mean", false, "print the mean")
	rootCmd.PersistentFlags().BoolVar(&statFlags.Max, "max", false, "print the maximum")
	rootCmd.PersistentFlags().BoolVar(&statFlags.Sum, "sum", false, "print the sum")
	rootCmd.PersistentFlags().BoolVarP(&statFlags.StandardDeviation, "standard-deviation", "d", false, "print the sample standard deviation")
}

// initConfig points viper at the config file, either the one given with
// --config or tally.json in the working directory or $HOME/.config/tally.
func initConfig() {
	viper.SetConfigType(appconfig.ConfigType)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	viper.SetConfigName(appconfig.ConfigName)
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/tally")
}

// ensureConfigLoaded reads and validates the config file and sets safe defaults.
// A missing file is only an error when it was named explicitly.
func ensureConfigLoaded() error {
	for key, value := range appconfig.Defaults() {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return appconfig.ValidateFile(viper.ConfigFileUsed())
}

// commandContext returns the command's context, or a background context when
// the command is invoked outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

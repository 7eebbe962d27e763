package tally

import (
	"github.com/mwiater/tally/internal/filter"
	"github.com/spf13/cobra"
)

var filterOpts struct {
	lessThan    string
	greaterThan string
}

// filterCmd re-emits the stdin lines whose values are within the given bounds.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Pass through the lines whose values are within bounds",
	Long: `Copy each line of stdin to stdout, unchanged, if its value is not below
--greater-than and not above --less-than. Either bound may be omitted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bounds, err := filter.ParseBounds(filterOpts.lessThan, filterOpts.greaterThan)
		if err != nil {
			return err
		}
		_, err = filter.Run(commandContext(cmd), cmd.InOrStdin(), cmd.OutOrStdout(), bounds)
		return err
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterOpts.lessThan, "less-than", "", "drop values greater than this")
	filterCmd.Flags().StringVar(&filterOpts.greaterThan, "greater-than", "", "drop values less than this")

	rootCmd.AddCommand(filterCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kedare/conlog/pkg/conlog"
)

var (
	dividerLength    int
	dividerStyles    []string
	dividerFullWidth bool
)

var dividerCmd = &cobra.Command{
	Use:   "divider [char]",
	Short: "Print a divider line",
	Long: `Print a separator line. The character, length and styles default to the
[divider] section of the configuration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := configuredDivider()
		if len(args) == 1 {
			d = d.WithChar(args[0])
		}
		if cmd.Flags().Changed("length") {
			d = d.WithLength(dividerLength)
		}
		if cmd.Flags().Changed("style") {
			d = d.WithStyles(dividerStyles...)
		}
		if dividerFullWidth {
			d = d.WithFullWidth()
		}

		factory.Plain().Divider(d).Print()

		return nil
	},
}

// configuredDivider returns the divider described by the configuration.
func configuredDivider() conlog.Divider {
	return conlog.NewDivider(cfg.Divider.Char, cfg.Divider.Length).WithStyles(cfg.Divider.Styles...)
}

func init() {
	rootCmd.AddCommand(dividerCmd)

	dividerCmd.Flags().IntVarP(&dividerLength, "length", "l", conlog.DefaultDividerLength, "Number of repetitions")
	dividerCmd.Flags().StringSliceVarP(&dividerStyles, "style", "s", nil, "Divider styles")
	dividerCmd.Flags().BoolVarP(&dividerFullWidth, "full-width", "w", false, "Span the terminal width")
}

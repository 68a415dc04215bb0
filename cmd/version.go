package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kedare/conlog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata for this binary",
	Long:  "Display the version, commit, build date and target platform embedded in the binary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := pterm.DefaultTable.WithData(version.Get().Rows()).Srender()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.Get().String()
}

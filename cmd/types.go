package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the record types and their styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		tableData := pterm.TableData{{"Type", "Styles", "Sample"}}
		for _, name := range factory.TypeNames() {
			styles, _ := factory.Registry().Lookup(name)
			sample := factory.Get(name).Text("sample " + name).String()
			tableData = append(tableData, []string{name, strings.Join(styles, ", "), sample})
		}

		out, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

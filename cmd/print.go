package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kedare/conlog/pkg/conlog"
)

var (
	printType          string
	printPrefix        string
	printPrefixStyles  []string
	printStyles        []string
	printDetail        string
	printDetailStyles  []string
	printData          string
	printTime          bool
	printPrependDivide bool
	printAppendDivide  bool
)

var printCmd = &cobra.Command{
	Use:   "print [text...]",
	Short: "Print one log record",
	Long: `Compose and print a single record. Text may contain [[markers]] to highlight a
part of the message. --data accepts JSON, which is printed indented below the
message; anything that is not valid JSON is printed as is.`,
	Example: `  conlog print --type success --prefix DONE "deployed [[v1.4.2]]"
  conlog print --type error --prefix ERR --detail "exit code 2" "build failed"
  conlog print --time --data '{"rows": 3}' "import finished"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		buildRecord(args).Print()
		return nil
	},
}

func buildRecord(args []string) conlog.Logger {
	l := factory.Get(printType).
		Prefix(printPrefix, printPrefixStyles...).
		Detail(printDetail, printDetailStyles...).
		Time(printTime)

	text := strings.Join(args, " ")
	if len(printStyles) > 0 {
		l = l.Text(text, conlog.Styles(printStyles))
	} else {
		l = l.Text(text)
	}

	if printData != "" {
		l = l.Data(parseData(printData))
	}
	if printPrependDivide {
		l = l.PrependDivider(configuredDivider())
	}
	if printAppendDivide {
		l = l.AppendDivider(configuredDivider())
	}

	return l
}

func parseData(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}

	return v
}

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().StringVarP(&printType, "type", "t", "info", "Record type (info, warn, error, debug, success, failure, plain or a configured type)")
	printCmd.Flags().StringVarP(&printPrefix, "prefix", "p", "", "Leading label")
	printCmd.Flags().StringSliceVar(&printPrefixStyles, "prefix-style", nil, "Styles for the prefix")
	printCmd.Flags().StringSliceVarP(&printStyles, "style", "s", nil, "Styles for the text (default: the type's styles)")
	printCmd.Flags().StringVarP(&printDetail, "detail", "d", "", "Detail line printed below the message")
	printCmd.Flags().StringSliceVar(&printDetailStyles, "detail-style", nil, "Styles for the detail line")
	printCmd.Flags().StringVar(&printData, "data", "", "JSON data printed below the message")
	printCmd.Flags().BoolVar(&printTime, "time", false, "Show the time of day")
	printCmd.Flags().BoolVar(&printPrependDivide, "prepend-divider", false, "Print a divider before the record")
	printCmd.Flags().BoolVar(&printAppendDivide, "append-divider", false, "Print a divider after the record")
}

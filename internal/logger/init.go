// Package logger provides the diagnostic logger used by conlog itself
package logger

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// InitPterm sends all diagnostic output to stderr so that stdout only
// carries the records the user asked to print.
func InitPterm() {
	SetWriter(os.Stderr)
}

// SetWriter points every diagnostic prefix printer at w.
func SetWriter(w io.Writer) {
	pterm.Info.Writer = w
	pterm.Success.Writer = w
	pterm.Warning.Writer = w
	pterm.Error.Writer = w
	pterm.Debug.Writer = w
}

//go:build !js

package render

import "os"

// DefaultSink prints console calls to stdout.
func DefaultSink() Sink {
	return WriterSink{W: os.Stdout}
}

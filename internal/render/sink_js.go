//go:build js && wasm

package render

import "syscall/js"

type jsSink struct {
	console js.Value
}

// Log forwards the call to console.log.
func (s jsSink) Log(format string, args ...any) {
	values := make([]any, 0, len(args)+1)
	values = append(values, format)
	values = append(values, args...)
	s.console.Call("log", values...)
}

// DefaultSink returns the global JavaScript console.
func DefaultSink() Sink {
	return jsSink{console: js.Global().Get("console")}
}

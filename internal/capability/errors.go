package capability

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTerminal is returned by probes that need an interactive terminal.
	ErrNotTerminal = errors.New("output is not a terminal")
	// ErrColorDisabled is returned when colour output is switched off.
	ErrColorDisabled = errors.New("color output disabled")
)

// PanicError wraps a panic raised by a probe.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("probe panicked: %v", e.Value)
}

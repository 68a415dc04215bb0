package conlog

import (
	"bytes"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 45, 0, time.Local)
}

// newPlain returns a colourless terminal factory writing to a buffer.
func newPlain(t *testing.T, opts ...Option) (*Factory, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := []Option{
		WithWriter(&buf),
		WithPlatform(PlatformTerminal),
		WithColor(false),
		WithClock(fixedClock),
		WithRegistry(NewRegistry()),
		WithSpinnerFactory(nil),
	}

	return New(append(base, opts...)...), &buf
}

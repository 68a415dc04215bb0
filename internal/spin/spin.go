// Package spin adapts the pterm spinner to the stream controller and
// provides the plain-line fallback used when no terminal is attached.
package spin

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/kedare/conlog/internal/capability"
	"github.com/kedare/conlog/internal/env"
	"github.com/kedare/conlog/internal/output"
)

// Widget is a live spinner. Success, Fail and Stop end it.
type Widget interface {
	Update(text string)
	Success(text string)
	Fail(text string)
	Stop(text string) error
}

// Factory starts a new widget showing text.
type Factory func(text string) (Widget, error)

// Probe loads the pterm spinner writing to w when tty is an interactive
// terminal. A nil tty falls back to w itself.
func Probe(w io.Writer, tty *os.File) capability.Probe[Factory] {
	return func(context.Context) (Factory, error) {
		if tty == nil {
			tty, _ = w.(*os.File)
		}
		if tty == nil || !env.IsTerminal(tty.Fd()) {
			return nil, capability.ErrNotTerminal
		}

		return Pterm(w), nil
	}
}

// Pterm returns a factory for pterm spinners writing to w.
func Pterm(w io.Writer) Factory {
	return func(text string) (Widget, error) {
		sp, err := pterm.DefaultSpinner.
			WithWriter(w).
			WithRemoveWhenDone(false).
			WithShowTimer(false).
			Start(fit(text))
		if err != nil {
			return nil, fmt.Errorf("failed to start spinner: %w", err)
		}

		return &ptermWidget{sp: sp}, nil
	}
}

type ptermWidget struct {
	mu      sync.Mutex
	sp      *pterm.SpinnerPrinter
	stopped bool
}

func (p *ptermWidget) Update(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.sp.UpdateText(fit(text))
}

func (p *ptermWidget) Success(text string) {
	p.finish(func() { p.sp.Success(text) })
}

func (p *ptermWidget) Fail(text string) {
	p.finish(func() { p.sp.Fail(text) })
}

func (p *ptermWidget) Stop(text string) error {
	var err error
	p.finish(func() {
		if text != "" {
			p.sp.UpdateText(fit(text))
		}
		err = p.sp.Stop()
	})

	return err
}

func (p *ptermWidget) finish(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true
	fn()
}

// fit keeps spinner text on one line so redraws do not scroll.
func fit(text string) string {
	return output.Truncate(text, output.WidthOrFallback()-4)
}

// Fallback prints tagged lines in place of a spinner.
type Fallback struct {
	W   io.Writer
	Now func() time.Time
}

func (f Fallback) Started(text string)   { f.line("[STREAM STARTED]", text) }
func (f Fallback) Stopped(text string)   { f.line("[STREAM STOPPED]", text) }
func (f Fallback) Succeeded(text string) { f.line("✓ [STREAM SUCCESS]", text) }
func (f Fallback) Failed(text string)    { f.line("✗ [STREAM FAILED]", text) }

// Updated prints text behind a time-of-day stamp.
func (f Fallback) Updated(text string) {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	f.line("["+now().Format(time.TimeOnly)+"]", text)
}

func (f Fallback) line(tag, text string) {
	if text == "" {
		fmt.Fprintln(f.W, tag)
		return
	}
	fmt.Fprintln(f.W, tag, text)
}

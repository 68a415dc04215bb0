package conlog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kedare/conlog/internal/logger"
	"github.com/kedare/conlog/internal/spin"
)

// StreamState is the position of a Stream in its lifecycle.
type StreamState int

const (
	StateIdle StreamState = iota
	StateStarted
	StateSucceeded
	StateFailed
	StateStopped
)

// String returns the state name.
func (s StreamState) String() string {
	switch s {
	case StateStarted:
		return "started"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Terminal reports whether the state ends the stream.
func (s StreamState) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateStopped
}

// Stream renders a record as an updatable spinner line. Without a
// terminal spinner it prints tagged plain lines instead. Once succeeded,
// failed or stopped, further calls only print plain lines.
//
// A Stream is safe for concurrent use.
type Stream struct {
	mu       sync.Mutex
	rec      Logger
	state    StreamState
	widget   SpinnerWidget
	delay    time.Duration
	fallback spin.Fallback
}

func newStream(rec Logger) *Stream {
	f := rec.factory()

	return &Stream{
		rec:      rec,
		fallback: spin.Fallback{W: f.fallback, Now: f.now},
	}
}

// State returns the current state.
func (s *Stream) State() StreamState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Record returns the record the stream renders.
func (s *Stream) Record() Logger {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rec
}

// Prefix updates the stream's prefix.
func (s *Stream) Prefix(text string, styles ...string) *Stream {
	return s.edit(func(l Logger) Logger { return l.Prefix(text, styles...) })
}

// Text updates the stream's text.
func (s *Stream) Text(args ...any) *Stream {
	return s.edit(func(l Logger) Logger { return l.Text(args...) })
}

// Detail updates the stream's detail.
func (s *Stream) Detail(text string, styles ...string) *Stream {
	return s.edit(func(l Logger) Logger { return l.Detail(text, styles...) })
}

// Data updates the stream's data.
func (s *Stream) Data(value any) *Stream {
	return s.edit(func(l Logger) Logger { return l.Data(value) })
}

// Time toggles the timestamp.
func (s *Stream) Time(show ...bool) *Stream {
	return s.edit(func(l Logger) Logger { return l.Time(show...) })
}

// Delay sets a pause consumed by the next AsyncUpdate.
func (s *Stream) Delay(d time.Duration) *Stream {
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()

	return s
}

// StartContext starts the spinner with output, or with the composed
// record when output is empty. Starting a running stream updates its text.
func (s *Stream) StartContext(ctx context.Context, output ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := s.textFor(output)
	switch {
	case s.state.Terminal():
		s.fallback.Started(text)
		return nil
	case s.state == StateStarted:
		s.push(text)
		return nil
	}

	s.state = StateStarted

	res := s.rec.factory().spinners.Resolve(ctx)
	if !res.OK() {
		s.fallback.Started(text)
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stream start: %w", err)
		}
		return nil
	}

	w, err := res.Handle(text)
	if err != nil {
		s.fallback.Started(text)
		return fmt.Errorf("stream start: %w", err)
	}
	s.widget = w

	return nil
}

// UpdateContext pushes the composed record to the spinner.
func (s *Stream) UpdateContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("stream update: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.push(s.rec.String())

	return nil
}

// AsyncUpdate updates the spinner and then waits for delay, or for the
// pending Delay when no delay is given.
func (s *Stream) AsyncUpdate(ctx context.Context, delay ...time.Duration) error {
	if err := s.UpdateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	wait := s.delay
	s.delay = 0
	s.mu.Unlock()
	if len(delay) > 0 {
		wait = delay[0]
	}
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stream update: %w", ctx.Err())
	}
}

// SucceedContext ends the stream with a success mark.
func (s *Stream) SucceedContext(ctx context.Context, output ...string) error {
	return s.finish(ctx, StateSucceeded, output)
}

// FailContext ends the stream with a failure mark.
func (s *Stream) FailContext(ctx context.Context, output ...string) error {
	return s.finish(ctx, StateFailed, output)
}

// StopContext ends the stream leaving output as the last line.
func (s *Stream) StopContext(ctx context.Context, output ...string) error {
	return s.finish(ctx, StateStopped, output)
}

// Start is StartContext without a deadline; errors are logged.
func (s *Stream) Start(output ...string) *Stream {
	s.report("start", s.StartContext(context.Background(), output...))
	return s
}

// Update is UpdateContext without a deadline.
func (s *Stream) Update() *Stream {
	s.report("update", s.UpdateContext(context.Background()))
	return s
}

// Succeed is SucceedContext without a deadline.
func (s *Stream) Succeed(output ...string) {
	s.report("succeed", s.SucceedContext(context.Background(), output...))
}

// Fail is FailContext without a deadline.
func (s *Stream) Fail(output ...string) {
	s.report("fail", s.FailContext(context.Background(), output...))
}

// Stop is StopContext without a deadline.
func (s *Stream) Stop(output ...string) {
	s.report("stop", s.StopContext(context.Background(), output...))
}

func (s *Stream) finish(ctx context.Context, target StreamState, output []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("stream %s: %w", target, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	text := s.textFor(output)
	w := s.widget
	s.widget = nil
	if !s.state.Terminal() {
		s.state = target
	}

	if w == nil {
		switch target {
		case StateSucceeded:
			s.fallback.Succeeded(text)
		case StateFailed:
			s.fallback.Failed(text)
		default:
			s.fallback.Stopped(text)
		}

		return nil
	}

	switch target {
	case StateSucceeded:
		w.Success(text)
	case StateFailed:
		w.Fail(text)
	default:
		if err := w.Stop(text); err != nil {
			return fmt.Errorf("stream stop: %w", err)
		}
	}

	return nil
}

// push shows text on the live widget, or as a timestamped line.
func (s *Stream) push(text string) {
	if s.widget != nil && s.state == StateStarted {
		s.widget.Update(text)
		return
	}
	s.fallback.Updated(text)
}

func (s *Stream) textFor(output []string) string {
	if len(output) > 0 && output[0] != "" {
		return output[0]
	}

	return s.rec.String()
}

func (s *Stream) edit(fn func(Logger) Logger) *Stream {
	s.mu.Lock()
	s.rec = fn(s.rec)
	s.mu.Unlock()

	return s
}

func (s *Stream) report(op string, err error) {
	if err != nil {
		logger.Log.Debugf("stream %s: %v", op, err)
	}
}

// Package capability resolves optional rendering capabilities (colour,
// spinner) once per process. A probe either yields a handle (Loaded) or
// an error (Unavailable); neither outcome is fatal to the caller.
package capability

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/kedare/conlog/internal/logger"
)

// Status of a resolved capability.
type Status int

const (
	Unavailable Status = iota
	Loaded
)

// String returns the status name.
func (s Status) String() string {
	if s == Loaded {
		return "loaded"
	}

	return "unavailable"
}

// Result is the outcome of a probe.
type Result[T any] struct {
	Status Status
	Handle T
	Err    error
}

// OK reports whether the capability loaded.
func (r Result[T]) OK() bool {
	return r.Status == Loaded
}

// Probe attempts to load a capability.
type Probe[T any] func(ctx context.Context) (T, error)

// Provider memoizes a Loaded result. Unavailable results are not cached so
// a later call may retry; concurrent callers share a single probe.
type Provider[T any] struct {
	name  string
	probe Probe[T]

	group  singleflight.Group
	mu     sync.RWMutex
	loaded *Result[T]
}

// New creates a provider named name. The name keys the diagnostic that is
// logged once when the probe fails.
func New[T any](name string, probe Probe[T]) *Provider[T] {
	return &Provider[T]{name: name, probe: probe}
}

// Static returns a provider that always yields handle.
func Static[T any](name string, handle T) *Provider[T] {
	return New(name, func(context.Context) (T, error) { return handle, nil })
}

// Resolve runs the probe unless a handle is already cached.
func (p *Provider[T]) Resolve(ctx context.Context) Result[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	p.mu.RLock()
	if p.loaded != nil {
		r := *p.loaded
		p.mu.RUnlock()

		return r
	}
	p.mu.RUnlock()

	ch := p.group.DoChan(p.name, func() (interface{}, error) {
		return p.run(ctx), nil
	})

	select {
	case res := <-ch:
		return res.Val.(Result[T])
	case <-ctx.Done():
		return Result[T]{Status: Unavailable, Err: ctx.Err()}
	}
}

// Reset forgets a cached handle.
func (p *Provider[T]) Reset() {
	p.mu.Lock()
	p.loaded = nil
	p.mu.Unlock()
}

func (p *Provider[T]) run(ctx context.Context) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Result[T]{Status: Unavailable, Err: &PanicError{Value: rec}}
			p.report(r.Err)
		}
	}()

	handle, err := p.probe(ctx)
	if err != nil {
		p.report(err)

		return Result[T]{Status: Unavailable, Err: err}
	}

	r = Result[T]{Status: Loaded, Handle: handle}

	p.mu.Lock()
	p.loaded = &r
	p.mu.Unlock()

	return r
}

func (p *Provider[T]) report(err error) {
	logger.Log.Oncef("capability:"+p.name, logger.LevelDebug, "%s unavailable, using plain output: %v", p.name, err)
}

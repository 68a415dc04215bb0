package conlog

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pterm/pterm"

	"github.com/kedare/conlog/internal/capability"
	"github.com/kedare/conlog/internal/env"
	"github.com/kedare/conlog/internal/render"
	"github.com/kedare/conlog/internal/spin"
)

// SpinnerWidget is a live spinner driven by a Stream.
type SpinnerWidget = spin.Widget

// SpinnerFactory starts a SpinnerWidget showing the given text.
type SpinnerFactory = spin.Factory

// Platform selects the rendering backend.
type Platform = env.Platform

const (
	// PlatformTerminal renders ANSI sequences.
	PlatformTerminal = env.Terminal
	// PlatformConsole renders %c templates with CSS arguments.
	PlatformConsole = env.Console
)

// colorSupport is resolved once per process.
var colorSupport = capability.New("color", func(context.Context) (bool, error) {
	if !pterm.PrintColor {
		return false, capability.ErrColorDisabled
	}

	return true, nil
})

// Factory creates loggers that share a renderer, a type registry and a
// spinner provider.
type Factory struct {
	platform Platform
	renderer render.TextRenderer
	registry *Registry
	now      func() time.Time
	spinners *capability.Provider[SpinnerFactory]
	fallback io.Writer
}

type settings struct {
	writer   io.Writer
	tty      *os.File
	sink     render.Sink
	platform *Platform
	color    *bool
	now      func() time.Time
	registry *Registry
	spinners *capability.Provider[SpinnerFactory]
}

// Option configures a Factory.
type Option func(*settings)

// WithWriter sends terminal output, or the text form of console calls, to w.
func WithWriter(w io.Writer) Option {
	return func(s *settings) { s.writer = w }
}

// WithTTY names the file checked for an interactive terminal before a
// spinner is started.
func WithTTY(f *os.File) Option {
	return func(s *settings) { s.tty = f }
}

// WithSink routes console calls to sink.
func WithSink(sink render.Sink) Option {
	return func(s *settings) { s.sink = sink }
}

// WithPlatform skips detection.
func WithPlatform(p Platform) Option {
	return func(s *settings) { s.platform = &p }
}

// WithColor forces terminal colours on or off.
func WithColor(enabled bool) Option {
	return func(s *settings) { s.color = &enabled }
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithRegistry uses r instead of the process-wide registry.
func WithRegistry(r *Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithSpinnerFactory drives streams with f instead of probing for a
// terminal spinner. A nil f disables spinners.
func WithSpinnerFactory(f SpinnerFactory) Option {
	return func(s *settings) {
		if f == nil {
			s.spinners = capability.New("spinner", func(context.Context) (SpinnerFactory, error) {
				return nil, capability.ErrNotTerminal
			})
			return
		}
		s.spinners = capability.Static("spinner", f)
	}
}

// New creates a factory. The platform is detected unless WithPlatform is
// given; anything that is not positively a browser renders for a terminal.
func New(opts ...Option) *Factory {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	f := &Factory{
		registry: s.registry,
		now:      s.now,
		spinners: s.spinners,
	}
	if f.registry == nil {
		f.registry = defaultRegistry
	}
	if f.now == nil {
		f.now = time.Now
	}

	f.platform = env.Detect()
	if s.platform != nil {
		f.platform = *s.platform
	}

	if f.platform == PlatformConsole {
		sink := s.sink
		switch {
		case sink != nil:
		case s.writer != nil:
			sink = render.WriterSink{W: s.writer}
		default:
			sink = render.DefaultSink()
		}
		f.renderer = render.NewConsole(sink)
		f.fallback = render.SinkWriter(sink)
		if f.spinners == nil {
			f.spinners = capability.New("spinner", func(context.Context) (SpinnerFactory, error) {
				return nil, capability.ErrNotTerminal
			})
		}

		return f
	}

	w := s.writer
	tty := s.tty
	if w == nil {
		w = colorable.NewColorableStdout()
		if tty == nil {
			tty = os.Stdout
		}
	}

	var color bool
	if s.color != nil {
		color = *s.color
	} else {
		color = colorSupport.Resolve(context.Background()).OK()
	}

	f.renderer = render.NewTerminal(w, color)
	f.fallback = w
	if f.spinners == nil {
		f.spinners = capability.New("spinner", spin.Probe(w, tty))
	}

	return f
}

// Platform returns the rendering backend in use.
func (f *Factory) Platform() Platform {
	return f.platform
}

// Registry returns the type registry.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// Get returns a logger for the named type. Unknown names yield an
// unstyled logger carrying that name.
func (f *Factory) Get(name string) Logger {
	styles, _ := f.registry.Lookup(name)

	return Logger{f: f, typ: name, defaultStyles: styles}
}

// Register adds a custom type.
func (f *Factory) Register(name string, styles ...string) error {
	return f.registry.Register(name, styles...)
}

// Type registers name with styles and returns its logger.
func (f *Factory) Type(name string, styles ...string) (Logger, error) {
	if err := f.registry.Register(name, styles...); err != nil {
		return Logger{f: f, typ: name}, err
	}

	return f.Get(name), nil
}

// TypeNames lists the registered type names.
func (f *Factory) TypeNames() []string {
	return f.registry.Names()
}

func (f *Factory) Info() Logger    { return f.Get("info") }
func (f *Factory) Warn() Logger    { return f.Get("warn") }
func (f *Factory) Error() Logger   { return f.Get("error") }
func (f *Factory) Debug() Logger   { return f.Get("debug") }
func (f *Factory) Success() Logger { return f.Get("success") }
func (f *Factory) Failure() Logger { return f.Get("failure") }
func (f *Factory) Plain() Logger   { return f.Get("plain") }

var (
	defaultRegistry = NewRegistry()

	defaultMu      sync.Mutex
	defaultFactory *Factory
)

// Default returns the process-wide factory, creating it on first use.
func Default() *Factory {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultFactory == nil {
		defaultFactory = New()
	}

	return defaultFactory
}

// SetDefault replaces the process-wide factory.
func SetDefault(f *Factory) {
	defaultMu.Lock()
	defaultFactory = f
	defaultMu.Unlock()
}

// Get returns a logger of the named type from the default factory.
func Get(name string) Logger { return Default().Get(name) }

// RegisterType adds a custom type to the default factory.
func RegisterType(name string, styles ...string) error {
	return Default().Register(name, styles...)
}

// Type registers a custom type on the default factory and returns it.
func Type(name string, styles ...string) (Logger, error) {
	return Default().Type(name, styles...)
}

// TypeNames lists the types known to the default factory.
func TypeNames() []string { return Default().TypeNames() }

func Info() Logger    { return Default().Info() }
func Warn() Logger    { return Default().Warn() }
func Error() Logger   { return Default().Error() }
func Debug() Logger   { return Default().Debug() }
func Success() Logger { return Default().Success() }
func Failure() Logger { return Default().Failure() }
func Plain() Logger   { return Default().Plain() }

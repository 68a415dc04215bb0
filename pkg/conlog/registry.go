package conlog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrEmptyTypeName is returned when registering a type without a name.
	ErrEmptyTypeName = errors.New("type name is empty")
	// ErrReservedType is returned when registering over a built-in type.
	ErrReservedType = errors.New("type name is reserved")
)

var builtinTypes = map[string][]string{
	"info":    {"blue"},
	"warn":    {"yellow"},
	"error":   {"red"},
	"debug":   {"gray"},
	"success": {"green"},
	"failure": {"red", "bold"},
	"plain":   nil,
}

// Registry maps type names to their default text styles.
type Registry struct {
	mu    sync.RWMutex
	types map[string][]string
}

// NewRegistry returns a registry holding the built-in types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string][]string, len(builtinTypes))}
	for name, styles := range builtinTypes {
		r.types[name] = clone(styles)
	}

	return r
}

// Register adds or replaces a custom type. Built-in names cannot be
// registered again.
func (r *Registry) Register(name string, styles ...string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyTypeName
	}
	if Reserved(name) {
		return fmt.Errorf("cannot register %q: %w", name, ErrReservedType)
	}

	r.mu.Lock()
	r.types[name] = clone(styles)
	r.mu.Unlock()

	return nil
}

// Lookup returns the default styles of name.
func (r *Registry) Lookup(name string) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	styles, ok := r.types[name]

	return clone(styles), ok
}

// Names returns every known type name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Reserved reports whether name is a built-in type.
func Reserved(name string) bool {
	_, ok := builtinTypes[name]

	return ok
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}

	return append(make([]string, 0, len(s)), s...)
}

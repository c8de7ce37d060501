package engine

import (
	"fmt"
	"slices"
	"sync"
)

// Constructor builds a fresh Format instance.
type Constructor func() Format

// Registry maps format ids to constructors. Registration probes the
// constructor once; Create builds a fresh instance per call so formats may
// carry per-run state. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Constructor
}

// NewRegistry returns an empty registry. Most callers want Default, which
// already carries the built-in formats.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Constructor)}
}

// Register probes ctor and binds it to id. A nil constructor, a nil probe
// instance or an empty extension fail with ErrBadConstructor. Registering an
// id that is already bound is a silent no-op: the first registration wins.
func (r *Registry) Register(id string, ctor Constructor) error {
	if id == "" {
		return fmt.Errorf("%w: empty format id", ErrBadConstructor)
	}
	if ctor == nil {
		return fmt.Errorf("%w: %q has no constructor", ErrBadConstructor, id)
	}
	if probe := ctor(); probe == nil || probe.Ext() == "" {
		return fmt.Errorf("%w: %q", ErrBadConstructor, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.formats[id]; taken {
		return nil
	}
	r.formats[id] = ctor
	return nil
}

// Unregister removes the binding for id if present.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	delete(r.formats, id)
	r.mu.Unlock()
}

// Create builds a fresh Format for id. Unknown ids fail with
// ErrUnknownFormat.
func (r *Registry) Create(id string) (Format, error) {
	r.mu.RLock()
	ctor, ok := r.formats[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, id)
	}
	return ctor(), nil
}

// Formats returns the registered ids in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.formats))
	for id := range r.formats {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry carrying the built-in formats.
func Default() *Registry {
	return defaultRegistry
}

// Register binds a constructor in the default registry.
func Register(id string, ctor Constructor) error {
	return defaultRegistry.Register(id, ctor)
}

// MustRegister is Register for init paths; it panics on failure.
func MustRegister(id string, ctor Constructor) {
	if err := defaultRegistry.Register(id, ctor); err != nil {
		panic(err)
	}
}

// Unregister removes a binding from the default registry.
func Unregister(id string) {
	defaultRegistry.Unregister(id)
}

// Create builds a fresh Format from the default registry.
func Create(id string) (Format, error) {
	return defaultRegistry.Create(id)
}

// Formats returns the ids registered in the default registry.
func Formats() []string {
	return defaultRegistry.Formats()
}

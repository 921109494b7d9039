package vss

import (
	"errors"
	"fmt"
	"sync"
)

// ErrProviderNotRegistered is returned when the resolved assembly name has
// no registered factory.
var ErrProviderNotRegistered = errors.New("no provider registered for assembly")

// Registry maps assembly short names to provider factories. The statically
// linked variants register themselves here instead of being located by
// runtime name lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewRegistry returns an empty registry. Callers that need an isolated load
// context use their own instance instead of DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ProviderFactory)}
}

// DefaultRegistry holds the providers linked into the running process.
var DefaultRegistry = NewRegistry()

// Register makes factory loadable under the given assembly short name.
// Registering a name twice replaces the earlier factory.
func (r *Registry) Register(shortName string, factory ProviderFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[shortName] = factory
}

// Load resolves the implementation assembly for the running host and
// instantiates its factory. An *UnsupportedPlatformError from resolution is
// propagated unchanged, as is any factory error; nothing is retried.
func (r *Registry) Load() (Provider, error) {
	id, err := Resolve()
	if err != nil {
		return nil, err
	}

	return r.load(id)
}

func (r *Registry) load(id AssemblyIdentity) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[id.ShortName]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotRegistered, id.FullName())
	}

	return factory()
}

// LoadImplementation loads the provider for the running host from the
// default registry. Concurrent calls are independent; each returns a fresh
// instance owned by its caller.
func LoadImplementation() (Provider, error) {
	return DefaultRegistry.Load()
}

// Package registry provides a named factory registry for agents, letting an
// application register agent constructors once and build fresh instances by
// name wherever an agent is needed.
//
// A Registry is typed over one observation/action pairing; applications that
// drive several pairings hold one registry per pairing. Unlike the agents it
// builds, a Registry is safe for concurrent use.
package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/polyrl/agentkit"
	"github.com/polyrl/agentkit/agent"
)

// Common errors returned by registry operations.
var (
	// ErrAlreadyRegistered is returned when a factory name is registered twice.
	ErrAlreadyRegistered = errors.New("registry: factory already registered")

	// ErrNotRegistered is returned when no factory exists under the
	// requested name.
	ErrNotRegistered = errors.New("registry: factory not registered")

	// ErrEmptyName is returned when a factory is registered under an empty name.
	ErrEmptyName = errors.New("registry: name is required")

	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("registry: factory is nil")
)

// Factory constructs a fresh agent instance. Each Build call invokes the
// factory again, so built agents never share mutable state unless the
// factory deliberately returns a shared instance.
type Factory[O, A any] func() (agent.Agent[O, A], error)

// Registry maps names to agent factories for one observation/action pairing.
// The zero value is not usable; construct with New.
type Registry[O, A any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[O, A]
}

// New returns an empty registry.
func New[O, A any]() *Registry[O, A] {
	return &Registry[O, A]{
		factories: make(map[string]Factory[O, A]),
	}
}

// Register stores a factory under the given name. Registering a name twice
// or passing an empty name or nil factory is a validation error.
func (r *Registry[O, A]) Register(name string, factory Factory[O, A]) error {
	if name == "" {
		return agentkit.NewValidationError("Registry.Register", ErrEmptyName)
	}
	if factory == nil {
		return agentkit.NewValidationError("Registry.Register", ErrNilFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return agentkit.NewValidationError("Registry.Register", ErrAlreadyRegistered).
			WithContext(map[string]any{"name": name})
	}

	r.factories[name] = factory
	return nil
}

// Build constructs a fresh agent from the factory registered under name.
func (r *Registry[O, A]) Build(name string) (agent.Agent[O, A], error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, agentkit.NewNotFoundError("Registry.Build", ErrNotRegistered).
			WithContext(map[string]any{"name": name})
	}

	return factory()
}

// Names returns the registered factory names in sorted order.
func (r *Registry[O, A]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered factories.
func (r *Registry[O, A]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Clear removes all registered factories. This is primarily useful for tests.
func (r *Registry[O, A]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]Factory[O, A])
}

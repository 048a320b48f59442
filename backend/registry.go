package backend

import (
	"fmt"
	"slices"
	"sync"
)

// Factory creates a new output for the given canvas.
type Factory func(cfg Config) (Output, error)

// registry holds registered outputs.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers an output factory with the given name.
// This is typically called from init() functions in backend packages.
// If an output with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes an output from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered output names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if an output with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get creates an output by name.
func Get(name string, cfg Config) (Output, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return factory(cfg)
}

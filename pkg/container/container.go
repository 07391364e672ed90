// Package container implements a string-tagged service registry with lazy
// instantiation and an ordered component lifecycle.
//
// Services are registered under unique tags with factory functions and
// resolved on demand; singleton services are memoized on first resolution.
// Components group related registrations: loading a component invokes its
// Register hook immediately, booting the container later invokes every
// loaded component's Boot hook in load order.
package container

import (
	"fmt"
	"sync"
)

// Params carries caller-supplied arguments into a Factory.
type Params map[string]any

// Factory produces one service instance. It receives the owning container,
// so it may resolve other already-registered services.
type Factory func(c *Container, params Params) (any, error)

type serviceDefinition struct {
	factory   Factory
	singleton bool
}

// Container is the service registry. It owns the service definitions, the
// singleton cache, a free-form variable store and the ordered list of
// loaded components.
//
// The zero value is not usable; construct with New. A mutex guards the
// internal maps, but the lifecycle semantics are sequential: register
// everything, then boot, on one goroutine.
type Container struct {
	mu         sync.RWMutex
	services   map[string]serviceDefinition
	instances  map[string]any
	variables  map[string]any
	resolving  map[string]bool
	components []Component
}

func New() *Container {
	return &Container{
		services:  make(map[string]serviceDefinition),
		instances: make(map[string]any),
		variables: make(map[string]any),
		resolving: make(map[string]bool),
	}
}

// Has reports whether a service is registered under tag.
func (c *Container) Has(tag string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.services[tag]
	return ok
}

// Add registers a singleton service: the factory runs at most once per
// container lifetime and the result is cached. Registration is add-only —
// a tag can never be re-registered.
func (c *Container) Add(tag string, factory Factory) error {
	return c.add(tag, factory, true)
}

// AddTransient registers a service whose factory runs on every Get.
func (c *Container) AddTransient(tag string, factory Factory) error {
	return c.add(tag, factory, false)
}

func (c *Container) add(tag string, factory Factory, singleton bool) error {
	if factory == nil {
		return ErrInvalidFactory.WithDetail("tag", tag)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.services[tag]; exists {
		return ErrServiceAlreadyRegistered.WithDetail("tag", tag)
	}

	c.services[tag] = serviceDefinition{factory: factory, singleton: singleton}
	return nil
}

// Get resolves the service registered under tag, invoking its factory with
// params. For singleton services the factory runs only on the first call;
// later calls return the cached instance and ignore params entirely. That
// params are discarded on cache hits is deliberate — they only matter on
// the call that triggers construction.
//
// A factory may resolve other tags reentrantly. A factory that transitively
// resolves its own tag fails fast with ErrCircularResolution.
func (c *Container) Get(tag string, params Params) (any, error) {
	c.mu.RLock()
	if instance, ok := c.instances[tag]; ok {
		c.mu.RUnlock()
		return instance, nil
	}
	def, ok := c.services[tag]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrServiceNotFound.WithDetail("tag", tag)
	}

	c.mu.Lock()
	if c.resolving[tag] {
		c.mu.Unlock()
		return nil, ErrCircularResolution.WithDetail("tag", tag)
	}
	c.resolving[tag] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.resolving, tag)
		c.mu.Unlock()
	}()

	instance, err := def.factory(c, params)
	if err != nil {
		return nil, err
	}

	if !def.singleton {
		return instance, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[tag]; ok {
		return existing, nil
	}
	c.instances[tag] = instance
	return instance, nil
}

// Instantiate runs a factory against this container without registering a
// tag. Convenience for one-off construction with access to the registry.
func (c *Container) Instantiate(factory Factory, params Params) (any, error) {
	if factory == nil {
		return nil, ErrInvalidFactory
	}
	return factory(c, params)
}

// SetVariable stores a value in the container's variable store, shared
// state passed between components independently of services.
func (c *Container) SetVariable(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.variables[key] = value
}

// Variable returns the stored value for key, or nil when absent.
func (c *Container) Variable(key string) any {
	v, _ := c.LookupVariable(key)
	return v
}

// LookupVariable distinguishes a stored nil from an absent key.
func (c *Container) LookupVariable(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.variables[key]
	return v, ok
}

// Resolve resolves tag and type-asserts the instance to T.
func Resolve[T any](c *Container, tag string, params Params) (T, error) {
	instance, err := c.Get(tag, params)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		var zero T
		return zero, ErrUnexpectedServiceType.
			WithDetail("tag", tag).
			WithDetail("type", typeName(instance))
	}
	return typed, nil
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}

package container

import (
	"fmt"
	"reflect"
	"sync"
)

// Component is an ordered unit of registration and boot logic. Its Register
// hook runs synchronously while the component is loaded and is expected to
// Add services; its Boot hook runs later, during Container.Boot, and may Get
// services registered by any previously loaded component.
//
// The interface is sealed: implementations must embed Base, which binds the
// owning container and supplies no-op hook defaults.
type Component interface {
	Register() error
	Boot() error

	attach(c *Container)
}

// Base is the mandatory embedded core of every component. It carries the
// container reference assigned at load time.
type Base struct {
	app *Container
}

// App returns the container the component was loaded into. Nil before load.
func (b *Base) App() *Container { return b.app }

func (b *Base) Register() error { return nil }

func (b *Base) Boot() error { return nil }

func (b *Base) attach(c *Container) { b.app = c }

// Constructor builds a fresh component instance.
type Constructor func() Component

var componentInterface = reflect.TypeOf((*Component)(nil)).Elem()

var (
	typesMu        sync.RWMutex
	componentTypes = make(map[string]reflect.Type)
)

// RegisterComponentType makes a component type loadable by name, in the
// manner of database/sql driver registration. The prototype is a typed nil
// pointer, e.g.
//
//	container.RegisterComponentType("logger", (*logger.Component)(nil))
//
// It panics if called twice with the same name.
func RegisterComponentType(name string, prototype any) {
	typ := reflect.TypeOf(prototype)
	if typ == nil {
		panic("container: RegisterComponentType prototype is nil")
	}
	typesMu.Lock()
	defer typesMu.Unlock()
	if _, dup := componentTypes[name]; dup {
		panic("container: RegisterComponentType called twice for " + name)
	}
	componentTypes[name] = typ
}

// LoadComponents constructs and registers components in the given order.
// Each reference may be a registered type name or a Constructor; a component
// instance is rejected, a reference is expected. Every constructed component
// has the container bound and its Register hook invoked immediately before
// the next reference is processed, so later components can resolve services
// registered by earlier ones.
//
// There is no rollback: if a reference fails validation or registration,
// components loaded before it stay loaded.
func (c *Container) LoadComponents(refs ...any) error {
	for _, ref := range refs {
		component, err := buildComponent(ref)
		if err != nil {
			return err
		}

		component.attach(c)
		if err := component.Register(); err != nil {
			return ErrComponentRegister.
				WithDetail("component", fmt.Sprintf("%T", component)).
				WithCause(err)
		}

		c.mu.Lock()
		c.components = append(c.components, component)
		c.mu.Unlock()
	}
	return nil
}

// Boot invokes the Boot hook of every loaded component, in load order. It
// is not idempotent: a second call re-runs every hook.
func (c *Container) Boot() error {
	for _, component := range c.Components() {
		if err := component.Boot(); err != nil {
			return ErrComponentBoot.
				WithDetail("component", fmt.Sprintf("%T", component)).
				WithCause(err)
		}
	}
	return nil
}

// Components returns the loaded components in load order.
func (c *Container) Components() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

func buildComponent(ref any) (Component, error) {
	switch v := ref.(type) {
	case Component:
		return nil, ErrInvalidComponentReference.WithDetail("type", fmt.Sprintf("%T instance", ref))
	case string:
		return newByName(v)
	case Constructor:
		return newFromConstructor(v)
	case func() Component:
		return newFromConstructor(v)
	default:
		return nil, ErrInvalidComponentReference.WithDetail("type", fmt.Sprintf("%T", ref))
	}
}

func newByName(name string) (Component, error) {
	typesMu.RLock()
	typ, ok := componentTypes[name]
	typesMu.RUnlock()

	if !ok {
		return nil, ErrComponentNotFound.WithDetail("name", name)
	}
	if typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct || !typ.Implements(componentInterface) {
		return nil, ErrInvalidComponentType.WithDetail("type", typ.String())
	}
	return reflect.New(typ.Elem()).Interface().(Component), nil
}

func newFromConstructor(fn Constructor) (Component, error) {
	if fn == nil {
		return nil, ErrInvalidComponentType.WithDetail("type", "nil constructor")
	}
	component := fn()
	if component == nil {
		return nil, ErrInvalidComponentType.WithDetail("type", "constructor returned nil")
	}
	return component, nil
}

package config

import (
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"
)

func init() {
	container.RegisterComponentType(contracts.ConfigService, (*Component)(nil))
}

// Component registers the "config" singleton built from a loader chain.
// When loaded by name it reads bootkit.yaml/bootkit.json from the working
// directory plus BOOTKIT_-prefixed environment variables.
//
// Its Boot hook copies the "variables" config section into the container's
// variable store, making configured values reachable to every component.
type Component struct {
	container.Base
	loader Loader
}

func NewComponent(envPrefix string, paths ...string) container.Constructor {
	loaders := []Loader{
		NewYamlLoader(paths...),
		NewJSONLoader(paths...),
		NewEnvLoader(envPrefix, ".env"),
	}
	return func() container.Component {
		return &Component{loader: NewChainLoader(loaders...)}
	}
}

// NewComponentWithLoader builds the component around a caller-supplied
// loader, for embedding configs or tests.
func NewComponentWithLoader(loader Loader) container.Constructor {
	return func() container.Component {
		return &Component{loader: loader}
	}
}

func (m *Component) Register() error {
	if m.loader == nil {
		m.loader = NewChainLoader(
			NewYamlLoader("bootkit.yaml", "config/bootkit.yaml"),
			NewJSONLoader("bootkit.json", "config/bootkit.json"),
			NewEnvLoader("BOOTKIT_", ".env"),
		)
	}
	return m.App().Add(contracts.ConfigService, func(c *container.Container, _ container.Params) (any, error) {
		values, err := m.loader.Load()
		if err != nil {
			return nil, err
		}
		return NewMapConfig(values), nil
	})
}

func (m *Component) Boot() error {
	cfg, err := container.Resolve[contracts.Config](m.App(), contracts.ConfigService, nil)
	if err != nil {
		return err
	}
	if section, ok := cfg.GetSub("variables"); ok {
		for key, value := range section.All() {
			m.App().SetVariable(key, value)
		}
	}
	return nil
}

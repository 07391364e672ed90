package cache

import (
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"
)

func init() {
	container.RegisterComponentType(contracts.CacheService, (*Component)(nil))
}

// Component registers the "cache" singleton. The driver comes from the
// "cache" config section ("memory" or "redis"); without a config service
// the component falls back to the in-memory store.
type Component struct {
	container.Base
}

func NewComponent() container.Constructor {
	return func() container.Component {
		return &Component{}
	}
}

func (m *Component) Register() error {
	return m.App().Add(contracts.CacheService, func(c *container.Container, _ container.Params) (any, error) {
		cfg, err := container.Resolve[contracts.Config](c, contracts.ConfigService, nil)
		if err != nil {
			return NewMemory(), nil
		}

		section, ok := cfg.GetSub("cache")
		if !ok {
			return NewMemory(), nil
		}

		driver := section.GetString("driver", "memory")
		switch driver {
		case "memory":
			return NewMemory(), nil
		case "redis":
			redisCfg, _ := section.GetSub("redis")
			prefix := section.GetString("prefix", "")
			return NewRedis(clientFromConfig(redisCfg), prefix), nil
		default:
			return nil, ErrUnknownDriver.WithDetail("driver", driver)
		}
	})
}

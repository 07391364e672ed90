package logger

import (
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"
)

func init() {
	container.RegisterComponentType(contracts.LoggerService, (*Component)(nil))
}

// Component registers the "logger" singleton. Settings come from the
// "logger" config section when a config service is present; explicit
// options passed to NewComponent win over config.
type Component struct {
	container.Base
	opts []Option
}

func NewComponent(opts ...Option) container.Constructor {
	return func() container.Component {
		return &Component{opts: opts}
	}
}

func (l *Component) Register() error {
	return l.App().Add(contracts.LoggerService, func(c *container.Container, _ container.Params) (any, error) {
		var opts []Option
		if cfg, err := container.Resolve[contracts.Config](c, contracts.ConfigService, nil); err == nil {
			opts = optionsFromConfig(cfg)
		}
		opts = append(opts, l.opts...)
		return New(opts...)
	})
}

func optionsFromConfig(cfg contracts.Config) []Option {
	section, ok := cfg.GetSub("logger")
	if !ok {
		return nil
	}

	opts := []Option{
		WithLevel(ParseLevel(section.GetString("level", "info"))),
	}
	if section.GetString("format", "text") == "json" {
		opts = append(opts, WithJSON())
	}
	if section.GetBool("color", false) {
		opts = append(opts, WithColor())
	}
	if section.GetBool("source", false) {
		opts = append(opts, WithSource())
	}
	return opts
}

package events

import (
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"
)

func init() {
	container.RegisterComponentType(contracts.EventBusService, (*Component)(nil))
}

// Component registers the "events" singleton. When a logger service is
// available the bus reports listener errors and panics through it instead
// of panicking. The Boot hook resolves the bus once so subscriptions made
// by later boot hooks hit a ready instance.
type Component struct {
	container.Base
	opts []Option
}

func NewComponent(opts ...Option) container.Constructor {
	return func() container.Component {
		return &Component{opts: opts}
	}
}

func (m *Component) Register() error {
	return m.App().Add(contracts.EventBusService, func(c *container.Container, _ container.Params) (any, error) {
		opts := m.opts
		if log, err := container.Resolve[contracts.Logger](c, contracts.LoggerService, nil); err == nil {
			opts = append([]Option{
				WithPanicHandler(NewDefaultPanicHandler(log)),
				WithErrorHandler(NewDefaultErrorHandler(log)),
			}, opts...)
		}
		return New(opts...), nil
	})
}

func (m *Component) Boot() error {
	_, err := m.App().Get(contracts.EventBusService, nil)
	return err
}

// Package bootstrap assembles a container with the standard components.
package bootstrap

import (
	"os"

	"github.com/avandine/bootkit/pkg/cache"
	"github.com/avandine/bootkit/pkg/config"
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/database"
	"github.com/avandine/bootkit/pkg/events"
	"github.com/avandine/bootkit/pkg/logger"
)

type Bootstrap struct {
	appName        string
	appVersion     string
	appEnvironment string
	refs           []any
}

// New starts a builder with the config component already queued. The
// environment comes from APP_ENVIRONMENT and defaults to "development".
func New(appName, appVersion, envPrefix string, configPaths ...string) *Bootstrap {
	appEnvironment := os.Getenv("APP_ENVIRONMENT")
	if appEnvironment == "" {
		appEnvironment = "development"
	}

	return &Bootstrap{
		appName:        appName,
		appVersion:     appVersion,
		appEnvironment: appEnvironment,
		refs:           []any{config.NewComponent(envPrefix, configPaths...)},
	}
}

func (b *Bootstrap) WithLogger(opts ...logger.Option) *Bootstrap {
	b.refs = append(b.refs, logger.NewComponent(opts...))
	return b
}

func (b *Bootstrap) WithDatabase() *Bootstrap {
	b.refs = append(b.refs, database.NewComponent())
	return b
}

func (b *Bootstrap) WithCache() *Bootstrap {
	b.refs = append(b.refs, cache.NewComponent())
	return b
}

func (b *Bootstrap) WithEvents(opts ...events.Option) *Bootstrap {
	b.refs = append(b.refs, events.NewComponent(opts...))
	return b
}

// WithComponent queues any component reference accepted by
// Container.LoadComponents: a registered type name or a constructor.
func (b *Bootstrap) WithComponent(ref any) *Bootstrap {
	b.refs = append(b.refs, ref)
	return b
}

// Build creates the container, seeds the app.* variables, then loads and
// boots the queued components in order.
func (b *Bootstrap) Build() (*container.Container, error) {
	c := container.New()
	c.SetVariable("app.name", b.appName)
	c.SetVariable("app.version", b.appVersion)
	c.SetVariable("app.environment", b.appEnvironment)

	if err := c.LoadComponents(b.refs...); err != nil {
		return nil, err
	}
	if err := c.Boot(); err != nil {
		return nil, err
	}
	return c, nil
}

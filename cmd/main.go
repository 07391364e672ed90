package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/avandine/bootkit/pkg/bootstrap"
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"
)

type UserRegistered struct {
	Username string
}

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	c, err := bootstrap.New("bootkit-demo", "0.1.0", "BOOTKIT", configPath).
		WithLogger().
		WithCache().
		WithEvents().
		Build()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := container.Resolve[contracts.Logger](c, contracts.LoggerService, nil)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("container ready",
		"app", c.Variable("app.name"),
		"environment", c.Variable("app.environment"))

	bus, err := container.Resolve[contracts.Bus](c, contracts.EventBusService, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = bus.Close() }()

	_ = bus.Subscribe((*UserRegistered)(nil), func(_ context.Context, e UserRegistered) error {
		logger.Info("user registered", "username", e.Username)
		return nil
	})

	ctx := context.Background()
	if err := bus.Publish(ctx, UserRegistered{Username: "alice"}); err != nil {
		logger.Error("publish failed", "error", err)
	}

	store, err := container.Resolve[contracts.Cache](c, contracts.CacheService, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.Set(ctx, "greeting", []byte("hello"), time.Minute); err != nil {
		logger.Error("cache set failed", "error", err)
	}
	if value, ok, err := store.Get(ctx, "greeting"); err == nil && ok {
		logger.Info("cache hit", "key", "greeting", "value", string(value))
	}
}

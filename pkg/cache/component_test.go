package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/avandine/bootkit/pkg/config"
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"
)

func addConfig(t *testing.T, c *container.Container, values map[string]any) {
	t.Helper()
	cfg := config.NewMapConfig(values)
	if err := c.Add(contracts.ConfigService, func(c *container.Container, _ container.Params) (any, error) {
		return cfg, nil
	}); err != nil {
		t.Fatalf("Add config failed: %v", err)
	}
}

func TestComponent_DefaultsToMemory(t *testing.T) {
	c := container.New()

	if err := c.LoadComponents(NewComponent()); err != nil {
		t.Fatalf("LoadComponents failed: %v", err)
	}

	store, err := container.Resolve[contracts.Cache](c, contracts.CacheService, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	ctx := context.Background()
	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if value, ok, _ := store.Get(ctx, "k"); !ok || string(value) != "v" {
		t.Errorf("round trip failed: ok=%v value=%q", ok, value)
	}
}

func TestComponent_MemoryDriverFromConfig(t *testing.T) {
	c := container.New()
	addConfig(t, c, map[string]any{
		"cache": map[string]any{"driver": "memory"},
	})

	if err := c.LoadComponents(NewComponent()); err != nil {
		t.Fatalf("LoadComponents failed: %v", err)
	}
	if _, err := container.Resolve[contracts.Cache](c, contracts.CacheService, nil); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
}

func TestComponent_UnknownDriver(t *testing.T) {
	c := container.New()
	addConfig(t, c, map[string]any{
		"cache": map[string]any{"driver": "memcached"},
	})

	if err := c.LoadComponents(NewComponent()); err != nil {
		t.Fatalf("LoadComponents failed: %v", err)
	}

	_, err := c.Get(contracts.CacheService, nil)
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

package logger

import (
	"testing"

	configpkg "github.com/avandine/bootkit/pkg/config"
	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"
)

func TestComponent_RegistersLoggerService(t *testing.T) {
	c := container.New()

	if err := c.LoadComponents(NewComponent()); err != nil {
		t.Fatalf("LoadComponents failed: %v", err)
	}
	if !c.Has(contracts.LoggerService) {
		t.Fatal("logger service not registered")
	}

	log, err := container.Resolve[contracts.Logger](c, contracts.LoggerService, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if log == nil {
		t.Fatal("resolved logger is nil")
	}

	again, err := container.Resolve[contracts.Logger](c, contracts.LoggerService, nil)
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if log != again {
		t.Error("logger must be a singleton")
	}
}

func TestComponent_ReadsLoggerConfigSection(t *testing.T) {
	c := container.New()

	cfg := configpkg.NewMapConfig(map[string]any{
		"logger": map[string]any{
			"level":  "debug",
			"format": "json",
		},
	})
	if err := c.Add(contracts.ConfigService, func(c *container.Container, _ container.Params) (any, error) {
		return cfg, nil
	}); err != nil {
		t.Fatalf("Add config failed: %v", err)
	}

	if err := c.LoadComponents(NewComponent()); err != nil {
		t.Fatalf("LoadComponents failed: %v", err)
	}
	if _, err := container.Resolve[contracts.Logger](c, contracts.LoggerService, nil); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
}

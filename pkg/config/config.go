package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avandine/bootkit/pkg/contracts"
)

type MapConfig struct {
	values map[string]any
}

var _ contracts.Config = (*MapConfig)(nil)

func NewMapConfig(values map[string]any) *MapConfig {
	if values == nil {
		values = map[string]any{}
	}
	return &MapConfig{values: values}
}

func (c *MapConfig) Has(key string) bool {
	_, ok := c.find(key)
	return ok
}

func (c *MapConfig) Get(key string) any {
	value, _ := c.find(key)
	return value
}

func (c *MapConfig) GetString(key string, defaultVal ...string) string {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func (c *MapConfig) GetInt(key string, defaultVal ...int) int {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		if n < int64(math.MinInt) || n > int64(math.MaxInt) {
			return getFirst(defaultVal)
		}
		return int(n)
	case uint64:
		if n > uint64(math.MaxInt) {
			return getFirst(defaultVal)
		}
		return int(n)
	case float64:
		if n < float64(math.MinInt) || n > float64(math.MaxInt) {
			return getFirst(defaultVal)
		}
		return int(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return getFirst(defaultVal)
}

func (c *MapConfig) GetBool(key string, defaultVal ...bool) bool {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	switch b := v.(type) {
	case bool:
		return b
	case int:
		return b != 0
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	return getFirst(defaultVal)
}

func (c *MapConfig) GetStringSlice(key string, separator ...string) []string {
	v, ok := c.find(key)
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		sep := ","
		if len(separator) > 0 {
			sep = separator[0]
		}
		parts := strings.Split(s, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return nil
}

func (c *MapConfig) GetSub(key string) (contracts.Config, bool) {
	v, ok := c.find(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return &MapConfig{values: sub}, true
}

func (c *MapConfig) All() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// find walks dot-notation keys through nested maps.
func (c *MapConfig) find(key string) (any, bool) {
	if v, ok := c.values[key]; ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	var current any = c.values
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func getFirst[T any](vals []T) T {
	if len(vals) > 0 {
		return vals[0]
	}
	var zero T
	return zero
}

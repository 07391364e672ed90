package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type envLoader struct {
	prefix  string
	dotenvs []string
}

// Load reads prefixed environment variables into a nested map. Before
// scanning the environment it sources any configured .env files; values
// already present in the environment win over .env entries. Key mapping:
// APP_DATABASE__DSN with prefix "APP_" becomes database.dsn, and scalar
// values are coerced to bool, int or float when they parse as such.
func (l *envLoader) Load() (map[string]any, error) {
	if len(l.dotenvs) > 0 {
		// godotenv never overrides variables that are already set
		_ = godotenv.Load(l.dotenvs...)
	}

	values := make(map[string]any)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		key, value, _ := strings.Cut(env, "=")
		configKey := strings.ToLower(strings.TrimPrefix(key, l.prefix))
		configKey = strings.ReplaceAll(configKey, "__", ".")

		setNested(values, configKey, coerceScalar(value))
	}

	return values, nil
}

func coerceScalar(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNested(m map[string]any, key string, value any) {
	keys := strings.Split(key, ".")
	last := len(keys) - 1

	current := m
	for i, k := range keys {
		if i == last {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}

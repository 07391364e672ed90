// Package config loads application configuration from YAML, JSON and the
// environment, merges the layers and exposes them behind contracts.Config.
package config

type Loader interface {
	Load() (map[string]any, error)
}

package config

import (
	"encoding/json"
	"os"
)

type jsonLoader struct {
	paths []string
}

func (l *jsonLoader) Load() (map[string]any, error) {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var values map[string]any
		if err = json.Unmarshal(data, &values); err != nil {
			return nil, ErrParseJSON.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}

		return values, nil
	}

	return nil, ErrNoConfigSource.WithDetail("loader", "json")
}

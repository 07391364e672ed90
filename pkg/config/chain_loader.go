package config

type chainLoader struct {
	loaders []Loader
}

// Load merges every loader's result into one map; later loaders win on
// conflicting keys, nested maps merge recursively. A loader error is only
// fatal when no loader produced anything.
func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)
	var lastErr error
	loaded := false

	for _, loader := range c.loaders {
		values, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}
		loaded = true
		mergeMaps(final, values)
	}

	if !loaded {
		return nil, ErrNoConfigSource.WithCause(lastErr)
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, srcMap)
				continue
			}
		}
		dst[k] = v
	}
}

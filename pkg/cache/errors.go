package cache

import "github.com/avandine/bootkit/pkg/errors"

var newCacheCode = errors.WithPrefix("CACHE")

var (
	ErrCacheClosed      = newCacheCode().New("cache is closed")
	ErrCacheUnavailable = newCacheCode().New("cache backend unavailable for key {{.key}}")
	ErrUnknownDriver    = newCacheCode().New("unknown cache driver {{.driver}}")
)

package contracts

type Config interface {
	Has(key string) bool

	Get(key string) any

	GetString(key string, defaultVal ...string) string

	GetInt(key string, defaultVal ...int) int

	GetBool(key string, defaultVal ...bool) bool

	GetStringSlice(key string, separator ...string) []string

	GetSub(key string) (Config, bool)

	All() map[string]any
}

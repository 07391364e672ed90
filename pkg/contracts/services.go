// Package contracts holds the service interfaces shared between the
// bootkit components. The container resolves services as plain values;
// these interfaces are what the standard components register under the
// canonical tags below.
package contracts

// Canonical service tags used by the bundled components.
const (
	ConfigService   = "config"
	LoggerService   = "logger"
	CacheService    = "cache"
	EventBusService = "events"
	DatabaseService = "db"
)

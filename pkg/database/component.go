package database

import (
	"strings"
	"time"

	"github.com/avandine/bootkit/pkg/container"
	"github.com/avandine/bootkit/pkg/contracts"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	container.RegisterComponentType(contracts.DatabaseService, (*Component)(nil))
}

// Component builds the connections declared under the "database" config
// section and registers each one as "db.connections.<name>". The default
// connection is additionally exposed as "db". The Boot hook opens every
// connection; closing is the owner's concern through the Database service.
type Component struct {
	container.Base
	pool *pool
}

func NewComponent() container.Constructor {
	return func() container.Component {
		return &Component{pool: newPool()}
	}
}

func (m *Component) Register() error {
	if m.pool == nil {
		m.pool = newPool()
	}

	cfg, err := container.Resolve[contracts.Config](m.App(), contracts.ConfigService, nil)
	if err != nil {
		return err
	}

	dbCfg, ok := cfg.GetSub("database")
	if !ok {
		return ErrConfigNotFound
	}
	defaultName := dbCfg.GetString("default", "primary")
	connsCfg, ok := dbCfg.GetSub("connections")
	if !ok {
		return ErrConnectionsNotFound
	}

	for name, raw := range connsCfg.All() {
		connCfg, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		db, err := newConnection(name, connCfg)
		if err != nil {
			return err
		}
		if err := m.pool.register(name, db); err != nil {
			return err
		}
		if err := m.addService(contracts.DatabaseService+".connections."+name, db); err != nil {
			return err
		}
		if name == defaultName {
			if err := m.addService(contracts.DatabaseService, db); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Component) addService(tag string, db contracts.Database) error {
	return m.App().Add(tag, func(_ *container.Container, _ container.Params) (any, error) {
		return db, nil
	})
}

func (m *Component) Boot() error {
	return m.pool.connectAll()
}

// Connection returns a connection built by this component, connected or not.
func (m *Component) Connection(name string) (contracts.Database, error) {
	db, ok := m.pool.get(name)
	if !ok {
		return nil, ErrUnknownConnection.WithDetail("name", name)
	}
	return db, nil
}

// CloseAll closes every connection in the pool.
func (m *Component) CloseAll() error {
	return m.pool.closeAll()
}

func newConnection(name string, cfg map[string]any) (contracts.Database, error) {
	driver, ok := cfg["driver"].(string)
	if !ok || driver == "" {
		return nil, ErrDriverNotSpecified.WithDetail("name", name)
	}
	dsn, ok := cfg["dsn"].(string)
	if !ok || dsn == "" {
		return nil, ErrDSNNotSpecified.WithDetail("name", name)
	}
	return New(sqlDriverName(driver), dsn, connectionOptions(cfg)...), nil
}

func sqlDriverName(driver string) string {
	switch strings.ToLower(driver) {
	case "mysql":
		return "mysql"
	case "postgres", "postgresql":
		return "postgres"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return driver
	}
}

func connectionOptions(cfg map[string]any) []Option {
	var options []Option

	if poolCfg, ok := cfg["pool"].(map[string]any); ok {
		maxOpen := intValue(poolCfg, "max_open_connections", 25)
		maxIdle := intValue(poolCfg, "max_idle_connections", 5)
		maxLifetime := durationValue(poolCfg, "conn_max_lifetime", time.Hour)
		maxIdleTime := durationValue(poolCfg, "conn_max_idle_time", 5*time.Minute)

		options = append(options,
			WithConnectionPool(maxOpen, maxIdle, maxLifetime),
			WithConnectionIdleTime(maxIdleTime),
		)
	}
	if timeout, ok := cfg["ping_timeout"].(string); ok {
		if d, err := time.ParseDuration(timeout); err == nil {
			options = append(options, WithPingTimeout(d))
		}
	}
	return options
}

func intValue(cfg map[string]any, key string, defaultValue int) int {
	switch v := cfg[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return defaultValue
}

func durationValue(cfg map[string]any, key string, defaultValue time.Duration) time.Duration {
	switch v := cfg[key].(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v) * time.Second
	}
	return defaultValue
}

// Package database provides a database/sql wrapper with pooled connection
// management and the component that registers connections as services.
package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/avandine/bootkit/pkg/contracts"
)

type dbConfig struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	connMaxIdleTime time.Duration
	pingTimeout     time.Duration
	retryAttempts   int
	retryDelay      time.Duration
}

type Option func(*dbConfig)

func WithConnectionPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(cfg *dbConfig) {
		cfg.maxOpenConns = maxOpen
		cfg.maxIdleConns = maxIdle
		cfg.connMaxLifetime = maxLifetime
	}
}

func WithConnectionIdleTime(idleTime time.Duration) Option {
	return func(cfg *dbConfig) {
		cfg.connMaxIdleTime = idleTime
	}
}

func WithPingTimeout(timeout time.Duration) Option {
	return func(cfg *dbConfig) {
		cfg.pingTimeout = timeout
	}
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(cfg *dbConfig) {
		cfg.retryAttempts = attempts
		cfg.retryDelay = delay
	}
}

type sqlDatabase struct {
	db     *sql.DB
	driver string
	dsn    string
	config dbConfig
}

func New(driver, dsn string, options ...Option) contracts.Database {
	cfg := dbConfig{
		maxOpenConns:    25,
		maxIdleConns:    5,
		connMaxLifetime: time.Hour,
		connMaxIdleTime: time.Minute * 5,
		pingTimeout:     time.Second * 5,
		retryAttempts:   3,
		retryDelay:      time.Second,
	}
	for _, option := range options {
		option(&cfg)
	}

	return &sqlDatabase{
		driver: driver,
		dsn:    dsn,
		config: cfg,
	}
}

func (d *sqlDatabase) Connect() error {
	if d.db != nil {
		return nil
	}

	var db *sql.DB
	var err error

	for attempt := 0; attempt <= d.config.retryAttempts; attempt++ {
		db, err = sql.Open(d.driver, d.dsn)
		if err == nil {
			db.SetMaxOpenConns(d.config.maxOpenConns)
			db.SetMaxIdleConns(d.config.maxIdleConns)
			db.SetConnMaxLifetime(d.config.connMaxLifetime)
			db.SetConnMaxIdleTime(d.config.connMaxIdleTime)

			ctx, cancel := context.WithTimeout(context.Background(), d.config.pingTimeout)
			err = db.PingContext(ctx)
			cancel()

			if err == nil {
				d.db = db
				return nil
			}
			_ = db.Close()
		}

		if attempt < d.config.retryAttempts {
			time.Sleep(d.config.retryDelay)
		}
	}

	return ErrFailedToOpenDatabase.WithDetail("driver", d.driver).WithCause(err)
}

func (d *sqlDatabase) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

func (d *sqlDatabase) Ping(ctx context.Context) error {
	if d.db == nil {
		return ErrDatabaseNotConnected
	}
	return d.db.PingContext(ctx)
}

func (d *sqlDatabase) BeginTx(ctx context.Context) (contracts.Transaction, error) {
	if d.db == nil {
		return nil, ErrDatabaseNotConnected
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, ErrTransactionFailed.
			WithDetail("reason", err.Error()).
			WithCause(err)
	}
	return &sqlTransaction{tx: tx}, nil
}

// DB exposes the underlying pool; nil before Connect.
func (d *sqlDatabase) DB() *sql.DB {
	return d.db
}

type sqlTransaction struct {
	tx *sql.Tx
}

func (t *sqlTransaction) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return ErrTransactionFailed.
			WithDetail("reason", "commit failed").
			WithCause(err)
	}
	return nil
}

func (t *sqlTransaction) Rollback() error {
	if err := t.tx.Rollback(); err != nil {
		return ErrTransactionFailed.
			WithDetail("reason", "rollback failed").
			WithCause(err)
	}
	return nil
}

package database

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewAppliesOptions(t *testing.T) {
	db := New("sqlite3", ":memory:",
		WithConnectionPool(10, 3, time.Minute),
		WithConnectionIdleTime(time.Second*30),
		WithPingTimeout(time.Second*2),
		WithRetry(1, time.Millisecond*10),
	)

	sqlDB := db.(*sqlDatabase)
	if sqlDB.driver != "sqlite3" || sqlDB.dsn != ":memory:" {
		t.Errorf("driver/dsn = %q/%q", sqlDB.driver, sqlDB.dsn)
	}
	if sqlDB.config.maxOpenConns != 10 || sqlDB.config.maxIdleConns != 3 {
		t.Errorf("pool = %d/%d, want 10/3", sqlDB.config.maxOpenConns, sqlDB.config.maxIdleConns)
	}
	if sqlDB.config.connMaxLifetime != time.Minute || sqlDB.config.connMaxIdleTime != time.Second*30 {
		t.Errorf("lifetimes = %v/%v", sqlDB.config.connMaxLifetime, sqlDB.config.connMaxIdleTime)
	}
	if sqlDB.config.pingTimeout != time.Second*2 {
		t.Errorf("pingTimeout = %v, want 2s", sqlDB.config.pingTimeout)
	}
	if sqlDB.config.retryAttempts != 1 || sqlDB.config.retryDelay != time.Millisecond*10 {
		t.Errorf("retry = %d/%v", sqlDB.config.retryAttempts, sqlDB.config.retryDelay)
	}
}

func TestConnectAndPing(t *testing.T) {
	db := New("sqlite3", ":memory:")
	if err := db.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Connect(); err != nil {
		t.Errorf("second Connect() error = %v", err)
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if db.DB() == nil {
		t.Error("DB() returned nil after Connect")
	}
}

func TestConnectInvalidDriver(t *testing.T) {
	db := New("nosuchdriver", ":memory:", WithRetry(0, 0))
	err := db.Connect()
	if !errors.Is(err, ErrFailedToOpenDatabase) {
		t.Errorf("Connect() error = %v, want %v", err, ErrFailedToOpenDatabase)
	}
}

func TestOperationsBeforeConnect(t *testing.T) {
	db := New("sqlite3", ":memory:")

	if err := db.Ping(context.Background()); !errors.Is(err, ErrDatabaseNotConnected) {
		t.Errorf("Ping() error = %v, want %v", err, ErrDatabaseNotConnected)
	}
	if _, err := db.BeginTx(context.Background()); !errors.Is(err, ErrDatabaseNotConnected) {
		t.Errorf("BeginTx() error = %v, want %v", err, ErrDatabaseNotConnected)
	}
	if db.DB() != nil {
		t.Error("DB() should be nil before Connect")
	}
	if err := db.Close(); err != nil {
		t.Errorf("Close() before Connect error = %v", err)
	}
}

func TestTransactionCommitAndRollback(t *testing.T) {
	db := New("sqlite3", ":memory:")
	if err := db.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.DB().Exec("CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}

	tx, err := db.BeginTx(context.Background())
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	if _, err := db.DB().Exec("INSERT INTO items (name) VALUES ('first')"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Errorf("Commit() error = %v", err)
	}

	tx, err = db.BeginTx(context.Background())
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Errorf("Rollback() error = %v", err)
	}
}

func TestPoolRejectsDuplicateName(t *testing.T) {
	p := newPool()
	if err := p.register("primary", New("sqlite3", ":memory:")); err != nil {
		t.Fatalf("register() error = %v", err)
	}
	err := p.register("primary", New("sqlite3", ":memory:"))
	if !errors.Is(err, ErrRegisterConnection) {
		t.Errorf("register() duplicate error = %v, want %v", err, ErrRegisterConnection)
	}

	if _, ok := p.get("primary"); !ok {
		t.Error("get() did not find registered connection")
	}
	if _, ok := p.get("missing"); ok {
		t.Error("get() found an unregistered connection")
	}
}

func TestPoolConnectAndCloseAll(t *testing.T) {
	p := newPool()
	_ = p.register("a", New("sqlite3", ":memory:"))
	_ = p.register("b", New("sqlite3", ":memory:"))

	if err := p.connectAll(); err != nil {
		t.Fatalf("connectAll() error = %v", err)
	}
	if err := p.closeAll(); err != nil {
		t.Errorf("closeAll() error = %v", err)
	}
}

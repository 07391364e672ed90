package database

import "github.com/avandine/bootkit/pkg/errors"

var newDatabaseCode = errors.WithPrefix("DATABASE")

var (
	ErrFailedToOpenDatabase = newDatabaseCode().New("failed to open database")
	ErrDatabaseNotConnected = newDatabaseCode().New("database not connected")
	ErrTransactionFailed    = newDatabaseCode().New("transaction failed: {{.reason}}")
	ErrInvalidID            = newDatabaseCode().New("invalid ID: {{.id}}")
	ErrConfigNotFound       = newDatabaseCode().New("database configuration section not found")
	ErrConnectionsNotFound  = newDatabaseCode().New("no database connections configured")
	ErrDriverNotSpecified   = newDatabaseCode().New("driver not specified for connection {{.name}}")
	ErrDSNNotSpecified      = newDatabaseCode().New("dsn not specified for connection {{.name}}")
	ErrRegisterConnection   = newDatabaseCode().New("cannot register connection {{.name}}: {{.reason}}")
	ErrCloseConnection      = newDatabaseCode().New("failed to close connection {{.name}}")
	ErrUnknownConnection    = newDatabaseCode().New("unknown connection {{.name}}")
)

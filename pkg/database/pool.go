package database

import (
	"sync"

	"github.com/avandine/bootkit/pkg/contracts"
	"github.com/avandine/bootkit/pkg/errors"
)

type pool struct {
	mu          sync.RWMutex
	connections map[string]contracts.Database
}

func newPool() *pool {
	return &pool{
		connections: make(map[string]contracts.Database),
	}
}

func (p *pool) register(name string, db contracts.Database) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.connections[name]; exists {
		return ErrRegisterConnection.
			WithDetail("name", name).
			WithDetail("reason", "connection already exists")
	}
	p.connections[name] = db
	return nil
}

func (p *pool) get(name string) (contracts.Database, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	db, exists := p.connections[name]
	return db, exists
}

func (p *pool) connectAll() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var errs []error
	for _, db := range p.connections {
		if err := db.Connect(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return ErrFailedToOpenDatabase.WithCause(errors.Join(errs...))
	}
	return nil
}

func (p *pool) closeAll() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for name, db := range p.connections {
		if err := db.Close(); err != nil {
			errs = append(errs, ErrCloseConnection.
				WithDetail("name", name).
				WithCause(err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

package storage

import (
	"context"
	"sync"
)

// MemoryGateway keeps values in a map. Useful for tests and for running the
// engine without a database.
type MemoryGateway struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

// NewMemoryGateway creates an empty in-memory gateway
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{values: make(map[string]string)}
}

// Get reads the value stored under key
func (g *MemoryGateway) Get(ctx context.Context, key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	value, ok := g.values[key]
	return value, ok, nil
}

// Set stores value under key
func (g *MemoryGateway) Set(ctx context.Context, key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.setErr != nil {
		return g.setErr
	}
	g.values[key] = value
	return nil
}

// FailWrites makes every subsequent Set return err. Pass nil to restore
// writes.
func (g *MemoryGateway) FailWrites(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setErr = err
}

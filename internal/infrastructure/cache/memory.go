// Package cache implementa el ListCache de listados: Redis para despliegues
// con varias réplicas y un mapa en memoria para desarrollo y tests.
package cache

import (
	"context"
	"sync"
)

// Memory cache de listados en memoria. Seguro para uso concurrente.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory crea el cache en memoria.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get devuelve la entrada y si existe.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.entries[key]
	return payload, ok
}

// Set guarda la entrada, copiando el payload para aislarlo del llamador.
func (m *Memory) Set(_ context.Context, key string, payload []byte) {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.mu.Lock()
	m.entries[key] = cp
	m.mu.Unlock()
}

// Invalidate elimina la entrada si existe.
func (m *Memory) Invalidate(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

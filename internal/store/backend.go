package store

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNotFound is returned by Backend.Load when a namespace has no data.
var ErrNotFound = errors.New("no persisted data")

// Backend persists opaque blobs per namespace.
type Backend interface {
	// Load returns the most recently saved blob for ns, or ErrNotFound.
	Load(ctx context.Context, ns string) ([]byte, error)

	// Save replaces the blob for ns.
	Save(ctx context.Context, ns string, data []byte) error

	Close() error
}

// MemoryBackend keeps blobs in memory. The zero value is not usable; use
// NewMemoryBackend.
type MemoryBackend struct {
	mu    sync.Mutex
	blobs map[string][]byte
	saves map[string]int
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		blobs: make(map[string][]byte),
		saves: make(map[string]int),
	}
}

func (m *MemoryBackend) Load(_ context.Context, ns string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[ns]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(b), nil
}

func (m *MemoryBackend) Save(_ context.Context, ns string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[ns] = slices.Clone(data)
	m.saves[ns]++
	return nil
}

// Saves returns how many times ns has been saved.
func (m *MemoryBackend) Saves(ns string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[ns]
}

func (m *MemoryBackend) Close() error {
	return nil
}

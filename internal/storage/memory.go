package storage

import "sync"

// MemoryBest keeps best values in memory. It backs runs started without a
// database and tests.
type MemoryBest struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryBest returns an empty in-memory store.
func NewMemoryBest() *MemoryBest {
	return &MemoryBest{values: make(map[string]int)}
}

// Best returns the value under key, or 0.
func (m *MemoryBest) Best(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// SetBest stores value under key.
func (m *MemoryBest) SetBest(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

package store

import "sync"

// MemoryBackend is a Backend kept in memory. Useful for tests and headless runs.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) String(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

func (m *MemoryBackend) SetString(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MemoryBackend) RemoveValue(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// Package store persists JSON encoded values in a key-value backend
// with a byte budget, mirroring the quota behaviour of browser storage.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dustin/go-humanize"
)

// ErrQuotaExceeded is returned when a save would exceed the byte budget.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is a string key-value store. fyne.Preferences satisfies it.
type Backend interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Store wraps a backend with JSON encoding and a byte budget.
// A quota of zero or less disables the budget.
type Store struct {
	backend Backend
	quota   int

	mu    sync.Mutex
	sizes map[string]int
}

// New returns a store writing to backend. Keys are accounted against the
// quota once they have been loaded or saved through the store.
func New(backend Backend, quota int) *Store {
	return &Store{
		backend: backend,
		quota:   quota,
		sizes:   make(map[string]int),
	}
}

// Load decodes the value stored under key.
// It returns def when the key is missing or holds malformed JSON.
func Load[T any](s *Store, key string, def T) T {
	raw := s.backend.String(key)
	s.track(key, raw)
	if raw == "" {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("Ignoring malformed stored value", "key", key, "error", err)
		return def
	}
	return v
}

// Save encodes v and stores it under key.
// When the budget would be exceeded the previous value is kept and an error
// wrapping ErrQuotaExceeded is returned.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	size := entrySize(key, string(data))
	if s.quota > 0 {
		total := s.usedLocked() - s.sizes[key] + size
		if total > s.quota {
			return fmt.Errorf("save %s (%s of %s): %w",
				key, humanize.IBytes(uint64(total)), humanize.IBytes(uint64(s.quota)), ErrQuotaExceeded)
		}
	}
	s.backend.SetString(key, string(data))
	s.sizes[key] = size
	return nil
}

// Remove deletes key from the backend.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend.RemoveValue(key)
	delete(s.sizes, key)
}

// Used returns the number of bytes accounted against the quota.
func (s *Store) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usedLocked()
}

// Quota returns the byte budget.
func (s *Store) Quota() int {
	return s.quota
}

func (s *Store) usedLocked() int {
	var n int
	for _, v := range s.sizes {
		n += v
	}
	return n
}

func (s *Store) track(key, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw == "" {
		delete(s.sizes, key)
		return
	}
	s.sizes[key] = entrySize(key, raw)
}

func entrySize(key, value string) int {
	return len(key) + len(value)
}

// IsQuotaExceeded reports whether err was caused by the byte budget.
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

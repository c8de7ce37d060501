// Package store implements the concurrency-safe translation table shared by
// engines, coordinators and the language server. Entries are keyed by the
// deterministic hash of the original string (see pkg/keycodec), so a table
// loaded from disk and a lookup made at runtime always agree on identity.
package store

import (
	"maps"
	"sync"

	"github.com/dmitrymomot/lingo/pkg/keycodec"
)

// Store is a hash-keyed translation table. The zero value is not usable;
// construct with New. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string]string)}
}

// Set stores value under the hash of the original string.
func (s *Store) Set(original, value string) {
	s.SetRaw(keycodec.Hash(original), value)
}

// SetRaw stores value under an already-hashed key. Engines use it while
// parsing files whose runtime sections carry hashed keys on disk.
func (s *Store) SetRaw(hashed, value string) {
	s.mu.Lock()
	s.entries[hashed] = value
	s.mu.Unlock()
}

// TryGet looks up the value stored for the original string. A miss returns
// ("", false), never an error.
func (s *Store) TryGet(original string) (string, bool) {
	s.mu.RLock()
	v, ok := s.entries[keycodec.Hash(original)]
	s.mu.RUnlock()
	return v, ok
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	clear(s.entries)
	s.mu.Unlock()
}

// Reset replaces the whole table with the given hashed-key map in one step,
// so readers never observe a half-populated table. The map is copied and the
// caller keeps ownership of m.
func (s *Store) Reset(m map[string]string) {
	fresh := make(map[string]string, len(m))
	maps.Copy(fresh, m)

	s.mu.Lock()
	s.entries = fresh
	s.mu.Unlock()
}

// IsEmpty reports whether the store holds no entries.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Snapshot returns a copy of the table keyed by hashed keys.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.entries)
}

// internal/store/memory.go
//
// In-memory session store for the HTTP API.
//
// Characteristics:
//   - Stores *Entry values keyed by session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Each Entry carries its own mutex; handlers hold it for the duration of
//     a turn because game.Session is not safe for concurrent use.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/gabble/internal/game"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("store: session not found")

// Entry is a live session plus the lock that serializes access to it.
type Entry struct {
	sync.Mutex
	ID        string
	Session   *game.Session
	CreatedAt time.Time
}

// Store defines the interface for live game sessions.
type Store interface {
	// Save adds or replaces the entry for s.ID().
	Save(ctx context.Context, s *game.Session) (*Entry, error)

	// Get retrieves an entry by ID.
	// Returns ErrNotFound if the session is not present.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete removes an entry; deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len reports the number of live sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries map
	entries map[string]*Entry // keyed by Session.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

// Save adds or replaces the session in the map.
func (m *memory) Save(ctx context.Context, s *game.Session) (*Entry, error) {
	if s == nil {
		return nil, errors.New("store: nil session")
	}
	e := &Entry{ID: s.ID(), Session: s, CreatedAt: time.Now().UTC()}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return e, nil
}

// Get looks up an entry by ID.
func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

// Delete removes an entry by ID.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// Len reports how many sessions are stored.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

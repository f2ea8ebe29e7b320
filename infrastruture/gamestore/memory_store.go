// Package gamestore persists emulated games.
package gamestore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/beka-birhanu/pony-escape/game"
)

// MemoryStore keeps games in process memory as encoded records, so every
// Load and Update works on its own copy.
type MemoryStore struct {
	games map[string][]byte
	sync.Mutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string][]byte)}
}

// Save inserts or replaces a game.
func (m *MemoryStore) Save(_ context.Context, id string, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}

	m.Lock()
	defer m.Unlock()
	m.games[id] = data
	return nil
}

// Load retrieves a copy of a game by ID.
func (m *MemoryStore) Load(_ context.Context, id string) (*game.Game, error) {
	m.Lock()
	defer m.Unlock()
	return m.decode(id)
}

// Update applies fn to a copy of a stored game while holding the store lock and
// stores the copy only when fn succeeds.
func (m *MemoryStore) Update(_ context.Context, id string, fn func(*game.Game) error) error {
	m.Lock()
	defer m.Unlock()

	g, err := m.decode(id)
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	m.games[id] = data
	return nil
}

// decode must be called with the lock held.
func (m *MemoryStore) decode(id string) (*game.Game, error) {
	data, ok := m.games[id]
	if !ok {
		return nil, game.ErrNotFound
	}
	var g game.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

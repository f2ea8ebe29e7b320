package i

import (
	"context"

	"github.com/beka-birhanu/pony-escape/game"
)

// GameStore defines persistence for emulated games.
type GameStore interface {
	// Save inserts or replaces a game.
	Save(ctx context.Context, id string, g *game.Game) error

	// Load retrieves a game by ID.
	// Returns game.ErrNotFound if no game is stored under the ID.
	Load(ctx context.Context, id string) (*game.Game, error)

	// Update loads a game, applies fn and saves the result while holding the game's lock.
	// The game is not saved if fn returns an error.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error
}

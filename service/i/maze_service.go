package i

import (
	"context"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
)

// MazeService is the remote service that owns the ground-truth maze state.
type MazeService interface {
	// Create starts a new maze and returns its ID.
	Create(ctx context.Context, req domain.CreateRequest) (string, error)

	// Fetch returns the current layout and positions of a maze.
	Fetch(ctx context.Context, mazeID string) (*domain.Snapshot, error)

	// Move submits a single pony move. It must only be called while the maze is active.
	Move(ctx context.Context, mazeID string, d maze.Direction) (*domain.MoveResult, error)

	// Render returns a human-readable depiction of the maze.
	Render(ctx context.Context, mazeID string) (string, error)
}

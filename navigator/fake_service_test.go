package navigator

import (
	"context"
	"errors"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
)

// fakeService is a scripted in-memory maze service.
type fakeService struct {
	grid                *maze.Grid
	agent, hunter, exit int
	state               domain.GameState
	hunterStep          func(f *fakeService)

	created       []domain.CreateRequest
	moves         []maze.Direction
	renders       int
	inactiveMoves int
	fetchErr      error
	moveErr       error
}

func (f *fakeService) Create(_ context.Context, req domain.CreateRequest) (string, error) {
	f.created = append(f.created, req)
	f.state = domain.GameState{State: domain.StateActive, Result: "Successfully created"}
	return "maze-1", nil
}

func (f *fakeService) Fetch(_ context.Context, mazeID string) (*domain.Snapshot, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &domain.Snapshot{
		MazeID:    mazeID,
		Grid:      f.grid,
		Agent:     f.agent,
		Hunter:    f.hunter,
		Exit:      f.exit,
		GameState: f.state,
	}, nil
}

func (f *fakeService) Move(_ context.Context, _ string, d maze.Direction) (*domain.MoveResult, error) {
	if f.moveErr != nil {
		return nil, f.moveErr
	}
	if !f.state.Active() {
		f.inactiveMoves++
		return nil, errors.New("game is not active")
	}
	f.moves = append(f.moves, d)

	if next, ok := f.grid.Neighbour(f.agent, d); ok {
		f.agent = next
	}
	switch {
	case f.agent == f.exit:
		f.state = domain.GameState{State: domain.StateWon, Result: "You won. Game ended"}
		return &domain.MoveResult{GameState: f.state, HiddenURL: "/hidden.jpg"}, nil
	case f.hunterStep != nil:
		f.hunterStep(f)
	}
	if f.agent == f.hunter {
		f.state = domain.GameState{State: domain.StateOver, Result: "You lost. Killed by monster"}
	} else {
		f.state.Result = "Move accepted"
	}
	return &domain.MoveResult{GameState: f.state}, nil
}

func (f *fakeService) Render(context.Context, string) (string, error) {
	f.renders++
	return f.grid.Render(map[int]byte{f.agent: 'P', f.hunter: 'D', f.exit: 'E'}), nil
}

/*
Package game emulates the pony maze service: a pony walks a generated maze toward
an end-point while a domokun chases it.

After every accepted pony move the domokun takes one step. With probability
(difficulty+1)/11 it steps along its shortest path to the pony, otherwise it
wanders to a random open neighbour.
*/
package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
	"github.com/beka-birhanu/pony-escape/pathfinding"
)

// Game-related errors.
var (
	ErrNotFound          = errors.New("maze not found")
	ErrNotActive         = errors.New("game is not active")
	ErrNotBigEnough      = errors.New("maze needs at least three cells")
	ErrInvalidDifficulty = errors.New("difficulty must be between 0 and 10")
)

// Game results reported through GameState.Result.
const (
	ResultCreated  = "Successfully created"
	ResultAccepted = "Move accepted"
	ResultBlocked  = "Can't walk in there"
	ResultWon      = "You won. Game ended"
	ResultLost     = "You lost. Killed by monster"

	HiddenURL = "/eW91X3NhdmVkX2l0.jpg"

	maxDifficulty = 10
)

// Game is a single emulated maze.
type Game struct {
	grid       *maze.Grid
	player     string
	difficulty int
	pony       int
	domokun    int
	endPoint   int
	state      domain.GameState
}

// New places the pony, the domokun and the end-point on distinct random cells of grid.
func New(grid *maze.Grid, player string, difficulty int, rnd *rand.Rand) (*Game, error) {
	if grid.Size() < 3 {
		return nil, ErrNotBigEnough
	}
	if difficulty < 0 || difficulty > maxDifficulty {
		return nil, ErrInvalidDifficulty
	}

	cells := rnd.Perm(grid.Size())
	return &Game{
		grid:       grid,
		player:     player,
		difficulty: difficulty,
		pony:       cells[0],
		domokun:    cells[1],
		endPoint:   cells[2],
		state:      domain.GameState{State: domain.StateActive, Result: ResultCreated},
	}, nil
}

// Move walks the pony one step and lets the domokun answer.
// A walled move leaves every position unchanged.
func (g *Game) Move(d maze.Direction, rnd *rand.Rand) (*domain.MoveResult, error) {
	if !g.state.Active() {
		return nil, ErrNotActive
	}

	next, ok := g.grid.Neighbour(g.pony, d)
	if !ok {
		g.state.Result = ResultBlocked
		return &domain.MoveResult{GameState: g.state}, nil
	}
	g.pony = next

	if g.pony == g.endPoint {
		g.state = domain.GameState{State: domain.StateWon, Result: ResultWon}
		return &domain.MoveResult{GameState: g.state, HiddenURL: HiddenURL}, nil
	}
	if g.pony != g.domokun {
		g.domokun = g.domokunStep(rnd)
	}
	if g.pony == g.domokun {
		g.state = domain.GameState{State: domain.StateOver, Result: ResultLost}
		return &domain.MoveResult{GameState: g.state}, nil
	}

	g.state.Result = ResultAccepted
	return &domain.MoveResult{GameState: g.state}, nil
}

// domokunStep picks the domokun's next cell.
func (g *Game) domokunStep(rnd *rand.Rand) int {
	if rnd.Intn(maxDifficulty+1) <= g.difficulty {
		if path, err := pathfinding.ShortestPath(g.grid, g.domokun, g.pony); err == nil && len(path) > 1 {
			return path[1]
		}
	}

	moves := g.grid.AvailableMoves(g.domokun)
	if len(moves) == 0 {
		return g.domokun
	}
	next, _ := g.grid.Neighbour(g.domokun, moves[rnd.Intn(len(moves))])
	return next
}

// Snapshot returns the current view of the game.
func (g *Game) Snapshot(id string) *domain.Snapshot {
	return &domain.Snapshot{
		MazeID:     id,
		Grid:       g.grid,
		Agent:      g.pony,
		Hunter:     g.domokun,
		Exit:       g.endPoint,
		Difficulty: g.difficulty,
		GameState:  g.state,
	}
}

// State returns the lifecycle state of the game.
func (g *Game) State() domain.GameState {
	return g.state
}

// Player returns the name the game was created for.
func (g *Game) Player() string {
	return g.player
}

// Render draws the maze with P for the pony, D for the domokun and E for the end-point.
func (g *Game) Render() string {
	return g.grid.Render(map[int]byte{
		g.endPoint: 'E',
		g.domokun:  'D',
		g.pony:     'P',
	})
}

// record is the persisted form of a Game.
type record struct {
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Cells      []maze.Cell      `json:"cells"`
	Player     string           `json:"player"`
	Difficulty int              `json:"difficulty"`
	Pony       int              `json:"pony"`
	Domokun    int              `json:"domokun"`
	EndPoint   int              `json:"end_point"`
	State      domain.GameState `json:"game_state"`
}

// MarshalJSON implements json.Marshaler.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Width:      g.grid.Width(),
		Height:     g.grid.Height(),
		Cells:      g.grid.Cells(),
		Player:     g.player,
		Difficulty: g.difficulty,
		Pony:       g.pony,
		Domokun:    g.domokun,
		EndPoint:   g.endPoint,
		State:      g.state,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Game) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	grid, err := maze.NewGrid(r.Width, r.Height, r.Cells)
	if err != nil {
		return fmt.Errorf("decoding game: %w", err)
	}
	for _, pos := range []int{r.Pony, r.Domokun, r.EndPoint} {
		if !grid.InBound(pos) {
			return fmt.Errorf("decoding game: %w: %d", maze.ErrOutOfBounds, pos)
		}
	}

	*g = Game{
		grid:       grid,
		player:     r.Player,
		difficulty: r.Difficulty,
		pony:       r.Pony,
		domokun:    r.Domokun,
		endPoint:   r.EndPoint,
		state:      r.State,
	}
	return nil
}

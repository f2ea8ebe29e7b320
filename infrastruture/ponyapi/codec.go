package ponyapi

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
)

const (
	wallNorth = "north"
	wallWest  = "west"
)

// ErrMalformedResponse is returned when a maze service payload cannot be decoded into domain types.
var ErrMalformedResponse = errors.New("malformed maze response")

// DecodeMaze converts a maze response into a snapshot.
func DecodeMaze(r *MazeResponse) (*domain.Snapshot, error) {
	if len(r.Size) != 2 {
		return nil, fmt.Errorf("%w: size %v", ErrMalformedResponse, r.Size)
	}
	width, height := r.Size[0], r.Size[1]

	if len(r.Data) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrMalformedResponse, len(r.Data), width, height)
	}
	cells := make([]maze.Cell, len(r.Data))
	for k, walls := range r.Data {
		for _, w := range walls {
			switch w {
			case wallNorth:
				cells[k].NorthWall = true
			case wallWest:
				cells[k].WestWall = true
			default:
				return nil, fmt.Errorf("%w: wall %q at cell %d", ErrMalformedResponse, w, k)
			}
		}
	}

	grid, err := maze.NewGrid(width, height, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	positions := make([]int, 0, 3)
	for _, p := range []struct {
		name  string
		value []int
	}{{"pony", r.Pony}, {"domokun", r.Domokun}, {"end-point", r.EndPoint}} {
		if len(p.value) != 1 || !grid.InBound(p.value[0]) {
			return nil, fmt.Errorf("%w: %s %v", ErrMalformedResponse, p.name, p.value)
		}
		positions = append(positions, p.value[0])
	}

	return &domain.Snapshot{
		MazeID:     r.MazeID,
		Grid:       grid,
		Agent:      positions[0],
		Hunter:     positions[1],
		Exit:       positions[2],
		Difficulty: r.Difficulty,
		GameState:  decodeGameState(r.GameState.State, r.GameState.StateResult),
	}, nil
}

// EncodeMaze converts a snapshot into a maze response.
func EncodeMaze(s *domain.Snapshot) *MazeResponse {
	g := s.Grid
	data := make([][]string, g.Size())
	for pos := range data {
		walls := []string{}
		cell := g.Cell(pos)
		if cell.NorthWall {
			walls = append(walls, wallNorth)
		}
		if cell.WestWall {
			walls = append(walls, wallWest)
		}
		data[pos] = walls
	}

	return &MazeResponse{
		MazeID:     s.MazeID,
		Pony:       []int{s.Agent},
		Domokun:    []int{s.Hunter},
		EndPoint:   []int{s.Exit},
		Size:       []int{g.Width(), g.Height()},
		Difficulty: s.Difficulty,
		Data:       data,
		GameState:  GameStateDTO{State: string(s.GameState.State), StateResult: s.GameState.Result},
	}
}

// DecodeMove converts a move response into a move result.
func DecodeMove(r *MoveResponse) *domain.MoveResult {
	return &domain.MoveResult{
		GameState: decodeGameState(r.State, r.StateResult),
		HiddenURL: r.HiddenURL,
	}
}

// EncodeMove converts a move result into a move response.
func EncodeMove(m *domain.MoveResult) *MoveResponse {
	return &MoveResponse{
		State:       string(m.State),
		StateResult: m.Result,
		HiddenURL:   m.HiddenURL,
	}
}

func decodeGameState(state, result string) domain.GameState {
	return domain.GameState{State: domain.ParseState(state), Result: result}
}

// Package domain holds the service-neutral values exchanged between the
// navigator and a maze service.
package domain

import (
	"strings"

	"github.com/beka-birhanu/pony-escape/maze"
)

// State is the lifecycle state reported by the maze service.
type State string

const (
	StateActive State = "active"
	StateWon    State = "won"
	StateOver   State = "over"
)

// ParseState normalizes a service state label.
func ParseState(s string) State {
	return State(strings.ToLower(strings.TrimSpace(s)))
}

// GameState is the state of a maze together with the service's explanation.
type GameState struct {
	State  State  `json:"state"`
	Result string `json:"result"`
}

// Active reports whether moves may still be submitted.
func (s GameState) Active() bool {
	return s.State == StateActive
}

// CreateRequest carries the parameters of a new maze.
type CreateRequest struct {
	Width      int
	Height     int
	PlayerName string
	Difficulty int
}

// Snapshot is the authoritative view of a maze at one point in time.
type Snapshot struct {
	MazeID     string
	Grid       *maze.Grid
	Agent      int // Agent is the pony position.
	Hunter     int // Hunter is the domokun position.
	Exit       int
	Difficulty int
	GameState  GameState
}

// MoveResult is the service response to a submitted move.
type MoveResult struct {
	GameState
	HiddenURL string
}

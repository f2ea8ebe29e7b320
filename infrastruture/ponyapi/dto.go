// Package ponyapi speaks the pony challenge maze service wire format.
package ponyapi

// CreateRequest represents a request to create a new maze.
type CreateRequest struct {
	Width      int    `json:"maze-width" binding:"required"`
	Height     int    `json:"maze-height" binding:"required"`
	PlayerName string `json:"maze-player-name" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"min=0"`
}

// CreateResponse carries the ID of a created maze.
type CreateResponse struct {
	MazeID string `json:"maze_id"`
}

// GameStateDTO is the lifecycle state of a maze.
type GameStateDTO struct {
	State       string `json:"state"`
	StateResult string `json:"state-result"`
}

// MazeResponse is the full state of a maze.
type MazeResponse struct {
	MazeID     string       `json:"maze_id"`
	Pony       []int        `json:"pony"`
	Domokun    []int        `json:"domokun"`
	EndPoint   []int        `json:"end-point"`
	Size       []int        `json:"size"`
	Difficulty int          `json:"difficulty"`
	Data       [][]string   `json:"data"`
	GameState  GameStateDTO `json:"game-state"`
}

// MoveRequest submits a pony move.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// MoveResponse is the state of a maze after a move.
type MoveResponse struct {
	State       string `json:"state"`
	StateResult string `json:"state-result"`
	HiddenURL   string `json:"hidden-url,omitempty"`
}

// ErrorResponse is returned with non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

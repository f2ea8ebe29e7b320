// Package navigator drives a pony from its start to the exit of a maze service
// maze, replanning after every move and stepping aside when the domokun blocks
// the planned route.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/service/i"
	"go.uber.org/zap"
)

const defaultMaxMoves = 10000

// Navigator errors.
var (
	ErrNilService = errors.New("maze service is nil")
	ErrMoveLimit  = errors.New("move limit reached")
)

// Params describes the maze to create for a run.
type Params struct {
	Width      int
	Height     int
	Difficulty int
	PlayerName string
}

// Config holds the collaborators of a Navigator.
type Config struct {
	Service  i.MazeService
	Logger   *zap.Logger
	Rand     *rand.Rand
	Display  io.Writer // When set, the rendered maze is written here after every move
	MaxMoves int
}

// Navigator runs a single maze from creation to a terminal state.
type Navigator struct {
	service  i.MazeService
	logger   *zap.Logger
	rnd      *rand.Rand
	display  io.Writer
	maxMoves int
}

// New creates a Navigator. Missing logger, random source and move limit get defaults.
func New(c Config) (*Navigator, error) {
	if c.Service == nil {
		return nil, ErrNilService
	}

	n := &Navigator{
		service:  c.Service,
		logger:   c.Logger,
		rnd:      c.Rand,
		display:  c.Display,
		maxMoves: c.MaxMoves,
	}
	if n.logger == nil {
		n.logger = zap.NewNop()
	}
	if n.rnd == nil {
		n.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n.maxMoves <= 0 {
		n.maxMoves = defaultMaxMoves
	}
	return n, nil
}

// Run creates a maze and plays it until the service reports a terminal state.
// Errors abort the run; the returned outcome then has kind OutcomeAborted.
func (n *Navigator) Run(ctx context.Context, p Params) (domain.Outcome, error) {
	mazeID, err := n.service.Create(ctx, domain.CreateRequest{
		Width:      p.Width,
		Height:     p.Height,
		PlayerName: p.PlayerName,
		Difficulty: p.Difficulty,
	})
	if err != nil {
		return domain.Outcome{Kind: domain.OutcomeAborted}, fmt.Errorf("creating maze: %w", err)
	}
	n.logger.Info("maze created", zap.String("maze_id", mazeID), zap.Int("width", p.Width), zap.Int("height", p.Height), zap.Int("difficulty", p.Difficulty))

	return n.Play(ctx, mazeID)
}

// Play drives an existing maze until it ends.
func (n *Navigator) Play(ctx context.Context, mazeID string) (domain.Outcome, error) {
	outcome := domain.Outcome{Kind: domain.OutcomeAborted, MazeID: mazeID}

	for {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		snapshot, err := n.service.Fetch(ctx, mazeID)
		if err != nil {
			return outcome, fmt.Errorf("fetching maze %s: %w", mazeID, err)
		}
		if !snapshot.GameState.Active() {
			return n.finish(outcome, snapshot.GameState, ""), nil
		}

		if outcome.Moves >= n.maxMoves {
			return outcome, fmt.Errorf("%w: %d", ErrMoveLimit, n.maxMoves)
		}

		decision, err := Decide(snapshot, n.rnd)
		if err != nil {
			return outcome, fmt.Errorf("planning maze %s: %w", mazeID, err)
		}
		n.logger.Debug("path planned", zap.Int("length", len(decision.Path)), zap.Int("agent", snapshot.Agent), zap.Int("hunter", snapshot.Hunter))
		if decision.Deviated {
			n.logger.Info("hunter ahead, deviating", zap.Stringer("planned", decision.Planned), zap.Stringer("direction", decision.Direction))
		}

		result, err := n.service.Move(ctx, mazeID, decision.Direction)
		if err != nil {
			return outcome, fmt.Errorf("moving %s in maze %s: %w", decision.Direction, mazeID, err)
		}
		outcome.Moves++
		n.logger.Info("move submitted", zap.Stringer("direction", decision.Direction), zap.String("state", string(result.State)), zap.String("result", result.Result))

		if err := n.show(ctx, mazeID); err != nil {
			return outcome, err
		}

		if !result.Active() {
			return n.finish(outcome, result.GameState, result.HiddenURL), nil
		}
	}
}

func (n *Navigator) finish(o domain.Outcome, s domain.GameState, hiddenURL string) domain.Outcome {
	o.Kind = domain.OutcomeFromState(s.State)
	o.StateResult = s.Result
	o.HiddenURL = hiddenURL
	n.logger.Info("maze finished", zap.Stringer("outcome", o.Kind), zap.Int("moves", o.Moves), zap.String("result", s.Result))
	return o
}

// show writes the service depiction of the maze when display is enabled.
func (n *Navigator) show(ctx context.Context, mazeID string) error {
	if n.display == nil {
		return nil
	}
	text, err := n.service.Render(ctx, mazeID)
	if err != nil {
		return fmt.Errorf("rendering maze %s: %w", mazeID, err)
	}
	_, err = io.WriteString(n.display, text+"\n")
	return err
}

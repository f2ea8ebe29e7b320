// Package mazeapi serves an emulated pony challenge maze service.
package mazeapi

import (
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/beka-birhanu/pony-escape/config"
	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/game"
	"github.com/beka-birhanu/pony-escape/infrastruture/ponyapi"
	"github.com/beka-birhanu/pony-escape/maze"
	"github.com/beka-birhanu/pony-escape/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var ErrNilStore = errors.New("game store is nil")

// Config holds the dependencies of a Controller.
type Config struct {
	Store      i.GameStore
	Limits     config.Limits
	Logger     *zap.Logger
	Registerer prometheus.Registerer // Registerer for emulator metrics, nil keeps them unregistered
	Rand       *rand.Rand
}

// Controller handles the maze routes.
type Controller struct {
	store   i.GameStore
	limits  config.Limits
	logger  *zap.Logger
	metrics *metrics

	rnd   *rand.Rand
	rndMu sync.Mutex
}

// NewController initializes a Controller.
func NewController(c Config) (*Controller, error) {
	if c.Store == nil {
		return nil, ErrNilStore
	}
	ctrl := &Controller{
		store:   c.Store,
		limits:  c.Limits,
		logger:  c.Logger,
		metrics: newMetrics(c.Registerer),
		rnd:     c.Rand,
	}
	if ctrl.logger == nil {
		ctrl.logger = zap.NewNop()
	}
	if ctrl.rnd == nil {
		ctrl.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return ctrl, nil
}

// Register registers the maze routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.POST("", c.create)
		mazes.GET("/:ID", c.fetch)
		mazes.POST("/:ID", c.move)
		mazes.GET("/:ID/print", c.print)
	}
}

// withRand serializes access to the shared random source.
func (c *Controller) withRand(fn func(*rand.Rand)) {
	c.rndMu.Lock()
	defer c.rndMu.Unlock()
	fn(c.rnd)
}

// create handles maze creation requests.
func (c *Controller) create(ctx *gin.Context) {
	var request ponyapi.CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ponyapi.ErrorResponse{Error: err.Error()})
		return
	}
	if err := c.limits.Validate(request.Width, request.Height, request.Difficulty, request.PlayerName); err != nil {
		ctx.JSON(http.StatusBadRequest, ponyapi.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		g   *game.Game
		err error
	)
	c.withRand(func(rnd *rand.Rand) {
		var grid *maze.Grid
		if grid, err = maze.Generate(request.Width, request.Height, rnd); err == nil {
			g, err = game.New(grid, request.PlayerName, request.Difficulty, rnd)
		}
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ponyapi.ErrorResponse{Error: err.Error()})
		return
	}

	id := uuid.NewString()
	if err := c.store.Save(ctx, id, g); err != nil {
		c.logger.Error("saving maze", zap.String("maze_id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, ponyapi.ErrorResponse{Error: "error while creating maze"})
		return
	}

	c.metrics.created.Inc()
	c.logger.Info("maze created", zap.String("maze_id", id), zap.String("player", request.PlayerName), zap.Int("width", request.Width), zap.Int("height", request.Height))
	ctx.JSON(http.StatusOK, ponyapi.CreateResponse{MazeID: id})
}

// fetch returns the current state of a maze.
func (c *Controller) fetch(ctx *gin.Context) {
	id := ctx.Params.ByName("ID")
	g, err := c.store.Load(ctx, id)
	if err != nil {
		c.abort(ctx, id, err)
		return
	}
	ctx.JSON(http.StatusOK, ponyapi.EncodeMaze(g.Snapshot(id)))
}

// move applies a pony move and the domokun's answer.
func (c *Controller) move(ctx *gin.Context) {
	id := ctx.Params.ByName("ID")

	var request ponyapi.MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ponyapi.ErrorResponse{Error: err.Error()})
		return
	}
	direction, err := maze.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ponyapi.ErrorResponse{Error: err.Error()})
		return
	}

	var result *domain.MoveResult
	err = c.store.Update(ctx, id, func(g *game.Game) error {
		var moveErr error
		c.withRand(func(rnd *rand.Rand) {
			result, moveErr = g.Move(direction, rnd)
		})
		return moveErr
	})
	if err != nil {
		c.abort(ctx, id, err)
		return
	}

	c.metrics.moves.WithLabelValues(string(direction)).Inc()
	if !result.Active() {
		c.metrics.finished.WithLabelValues(string(result.State)).Inc()
		c.logger.Info("maze finished", zap.String("maze_id", id), zap.String("state", string(result.State)))
	}
	ctx.JSON(http.StatusOK, ponyapi.EncodeMove(result))
}

// print returns the ASCII depiction of a maze.
func (c *Controller) print(ctx *gin.Context) {
	id := ctx.Params.ByName("ID")
	g, err := c.store.Load(ctx, id)
	if err != nil {
		c.abort(ctx, id, err)
		return
	}
	ctx.String(http.StatusOK, g.Render())
}

func (c *Controller) abort(ctx *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		ctx.JSON(http.StatusNotFound, ponyapi.ErrorResponse{Error: "maze not found"})
	case errors.Is(err, game.ErrNotActive):
		ctx.JSON(http.StatusBadRequest, ponyapi.ErrorResponse{Error: err.Error()})
	default:
		c.logger.Error("maze request failed", zap.String("maze_id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, ponyapi.ErrorResponse{Error: "unexpected error"})
	}
}

package cli

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/beka-birhanu/pony-escape/config"
	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/infrastruture/ponyapi"
	"github.com/beka-birhanu/pony-escape/navigator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// solveOptions is the immutable run configuration built from flags.
type solveOptions struct {
	width      int
	height     int
	difficulty int
	player     string
	display    bool
	seed       int64
	apiURL     string
}

func newSolveCmd(a *app) *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Create a maze on the maze service and walk the pony to the exit",
		Long: `Creates a maze, then repeatedly plans the shortest path to the exit, steps
aside when the domokun blocks the next move and replans after every move until
the service reports the game has ended.

Players: ` + strings.Join(config.Players, ", "),
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.Limits.Validate(opts.width, opts.height, opts.difficulty, opts.player)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), a, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", config.DefaultWidth, "maze width")
	flags.IntVar(&opts.height, "height", config.DefaultHeight, "maze height")
	flags.IntVarP(&opts.difficulty, "difficulty", "d", config.DefaultDifficulty, "domokun difficulty")
	flags.StringVarP(&opts.player, "player", "p", config.DefaultPlayer, "player name")
	flags.BoolVar(&opts.display, "display", false, "print the maze after every move")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for deviation choices, 0 picks one from the clock")
	flags.StringVar(&opts.apiURL, "api-url", "", "maze service url, overrides MAZE_API_URL")
	return cmd
}

func runSolve(ctx context.Context, a *app, opts solveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiURL := a.cfg.APIURL
	if opts.apiURL != "" {
		apiURL = opts.apiURL
	}

	clientLogger, err := a.newLogger("MAZE-SERVICE", config.ColorMagenta)
	if err != nil {
		return err
	}
	client, err := ponyapi.NewClient(apiURL, &http.Client{}, clientLogger, a.cfg.HTTPTimeout)
	if err != nil {
		return err
	}

	navLogger, err := a.newLogger("NAVIGATOR", config.ColorCyan)
	if err != nil {
		return err
	}
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	navConfig := navigator.Config{
		Service:  client,
		Logger:   navLogger,
		Rand:     rand.New(rand.NewSource(seed)),
		MaxMoves: a.cfg.MaxMoves,
	}
	if opts.display {
		navConfig.Display = os.Stdout
	}

	nav, err := navigator.New(navConfig)
	if err != nil {
		return err
	}

	a.logger.Info("starting run", zap.String("api_url", apiURL), zap.String("player", opts.player), zap.Int64("seed", seed))
	outcome, err := nav.Run(ctx, navigator.Params{
		Width:      opts.width,
		Height:     opts.height,
		Difficulty: opts.difficulty,
		PlayerName: opts.player,
	})
	if err != nil {
		return fmt.Errorf("run aborted after %d moves: %w", outcome.Moves, err)
	}

	fmt.Println(outcome)
	if outcome.Kind != domain.OutcomeSolved {
		return fmt.Errorf("maze %s not solved: %s", outcome.MazeID, outcome.StateResult)
	}
	return nil
}

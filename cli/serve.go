package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/pony-escape/api"
	api_i "github.com/beka-birhanu/pony-escape/api/i"
	"github.com/beka-birhanu/pony-escape/api/mazeapi"
	"github.com/beka-birhanu/pony-escape/config"
	"github.com/beka-birhanu/pony-escape/infrastruture/gamestore"
	"github.com/beka-birhanu/pony-escape/service/i"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a local emulation of the pony challenge maze service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.EmulatorAddr
			}
			return runServe(cmd.Context(), a, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides EMULATOR_ADDR")
	return cmd
}

func runServe(ctx context.Context, a *app, addr string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store i.GameStore
	if a.cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
		store = gamestore.NewRedisStore(client, a.cfg.RedisTTL)
		a.logger.Info("Connected to Redis", zap.String("addr", a.cfg.RedisAddr))
	} else {
		store = gamestore.NewMemoryStore()
		a.logger.Info("Keeping mazes in memory")
	}

	emulatorLogger, err := a.newLogger("EMULATOR", config.ColorBlue)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	controller, err := mazeapi.NewController(mazeapi.Config{
		Store:      store,
		Limits:     a.cfg.Limits,
		Logger:     emulatorLogger,
		Registerer: registry,
	})
	if err != nil {
		return fmt.Errorf("creating maze controller: %w", err)
	}

	router := api.NewRouter(api.Config{
		Addr:        addr,
		BaseURL:     "/pony-challenge",
		Controllers: []api_i.Controller{controller},
		Gatherer:    registry,
		Mode:        a.cfg.GinMode,
	})
	a.logger.Info("Serving maze emulator", zap.String("addr", addr))
	return router.Run(ctx)
}

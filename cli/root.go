// Package cli implements the pony command line: solving a maze against a maze
// service and serving a local emulation of that service.
package cli

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/pony-escape/config"
	"github.com/beka-birhanu/pony-escape/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries what every command needs once flags are parsed.
type app struct {
	verbose bool
	cfg     config.Config
	logger  *zap.Logger
}

// newLogger creates a named component logger at the level selected by --verbose.
func (a *app) newLogger(name, color string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if a.verbose {
		level = zapcore.DebugLevel
	}
	return logger.New(name, color, os.Stdout, level)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "pony",
		Short:         "Guide a pony out of a maze while a domokun hunts it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			a.cfg = cfg

			a.logger, err = a.newLogger("APP", config.ColorGreen)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(a), newServeCmd(a))
	return root
}

// Execute runs the command line and reports any error on stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s[ERROR]%s %v\n", config.ColorRed, config.ColorReset, err)
	}
	return err
}

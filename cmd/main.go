// Package main provides the CLI entrypoint of the domain appraisal service.
// It wires the subcommands (appraise, trend, serve), loads configuration and
// initializes logging.
package main

import (
	"appraiser/internal/config"
	"appraiser/pkg/logger"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands. cfg is populated by the root
// command before any subcommand runs.
type app struct {
	configPath string
	envPath    string

	cfg *config.Config
}

func (a *app) load(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath, a.envPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	a.cfg = cfg

	logger.Setup(cfg.Environment)

	return nil
}

// main sets up the root Cobra command and registers subcommands before
// executing the CLI.
func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "appraiser",
		Short:             "Appraises domain names from search, registration, link, speed and sales metrics",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().StringVar(&a.envPath, "env", ".env", "Env File Path holding API keys")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		appraiseCommand(a),
		trendCommand(a),
		serveCommand(a),
	)

	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

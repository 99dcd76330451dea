package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/testscrub/pkg/config"
	"github.com/walteh/testscrub/pkg/log"
	"github.com/walteh/testscrub/pkg/operation"
	"github.com/walteh/testscrub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// runRoot loads the config, wires up logging, and runs the scrub
func runRoot(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	logger := setupLogging(cfg)
	ctx = logger.WithContext(ctx)

	logger.Debug().Stringer("config", cfg).Msg("starting scrub")

	return runScrub(ctx, cmd.OutOrStdout(), ".")
}

// loadConfig loads the config file named by the --config flag
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	// A missing default config file just means default settings
	if _, err := os.Stat(configFile); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// runScrub builds the operator and runs it against root
func runScrub(ctx context.Context, console io.Writer, root string) error {
	logger := log.New(console, *zerolog.Ctx(ctx))

	op, err := operation.New(operation.Options{
		Root:     root,
		Scrubber: text.NewRegexScrubber(),
		Rules:    text.CleanupChainRules(),
		Logger:   logger,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	return op.Scrub(ctx)
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".testscrub.hcl", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog from the loaded config
func setupLogging(cfg *config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(cfg.Level())

	if cfg.NoColor {
		color.NoColor = true
	}

	var out io.Writer = os.Stderr
	if cfg.LogFormat == config.FormatConsole {
		out = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.NoColor = cfg.NoColor
		})
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	return logger
}

package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"shade/internal/app"
	"shade/internal/app/cli"
	"shade/internal/config"
	"shade/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp(os.Args[1:])
}

// runApp parses arguments, loads configuration and runs the container until the command finishes
func runApp(args []string) {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	createApp(cfg, opts).Run()
}

// loadConfig reads the config file, commands that never touch the theme fall back to defaults
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		if !needsConfig(opts.Type) {
			return config.DefaultConfig(), nil
		}

		return nil, err
	}

	opts.ApplyServerFlags(cfg)

	return cfg, nil
}

func needsConfig(t cli.CommandType) bool {
	switch t {
	case cli.CommandInit, cli.CommandVersion, cli.CommandHelp:
		return false
	default:
		return true
	}
}

// appOptions returns the container options for cfg and opts
func appOptions(cfg *config.Config, opts *cli.Options) fx.Option {
	return fx.Options(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts),
		app.Module,
	)
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(appOptions(cfg, opts))
}

// createFxLogger returns an FX logger, container events are only shown at debug level
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}

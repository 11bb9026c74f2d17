package app

import (
	"context"

	"go.uber.org/fx"

	"shade/internal/app/cli"
	"shade/internal/config/logger"
)

// App runs the parsed command inside the fx container
type App struct {
	cli        cli.CLI
	shutdowner fx.Shutdowner
	log        logger.Logger
	done       chan struct{}
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, shutdowner fx.Shutdowner, log logger.Logger) *App {
	return &App{
		cli:        cli,
		shutdowner: shutdowner,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Run executes the command and stops the container with its exit code
func (a *App) Run() {
	code := a.execute()
	close(a.done)

	if err := a.shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
		a.log.Debug().Err(err).Msg("Shutdown already in progress")
	}
}

func (a *App) execute() int {
	code, err := a.cli.Execute()
	if err != nil {
		a.log.Debug().Err(err).Int("exit_code", code).Msg("Command failed")
	}

	return code
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

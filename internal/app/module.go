package app

import (
	"go.uber.org/fx"

	"shade/internal/app/cli"
	"shade/internal/app/server"
	"shade/internal/app/theme"
	"shade/internal/app/watcher"
	"shade/internal/config/logger"
)

// Module wires the theme store, http service, watcher and CLI
var Module = fx.Options(
	logger.Module,
	theme.Module,
	server.Module,
	watcher.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)

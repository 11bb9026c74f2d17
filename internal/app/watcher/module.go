package watcher

import "go.uber.org/fx"

// Module provides the config watcher
var Module = fx.Options(
	fx.Provide(NewWatcher),
)

package server

import "go.uber.org/fx"

// Module provides the http theme service
var Module = fx.Options(
	fx.Provide(NewServer),
)

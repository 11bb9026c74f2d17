package cli

import "go.uber.org/fx"

// Module provides the command runner
var Module = fx.Options(
	fx.Provide(NewCLI),
)

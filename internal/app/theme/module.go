package theme

import (
	"go.uber.org/fx"
)

// Module provides the theme store
var Module = fx.Options(
	fx.Provide(NewStore),
)

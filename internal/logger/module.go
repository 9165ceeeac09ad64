package logger

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module provides the service logger and installs it as the slog default,
// so packages logging through slog.Default share the same handler.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(slog.SetDefault),
)

package auth

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/cars/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type authParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger `optional:"true"`
}

func newPasswordHasher(p authParams) PasswordHasher {
	return NewBcryptHasher(p.Config.PasswordCost)
}

func newTokenStrategy(p authParams) Strategy {
	if p.Config.UsesDefaultSecret() && p.Logger != nil {
		p.Logger.Warn("tokens are signed with the built-in default secret, set JWT_SECRET or JWT_SECRET_FILE")
	}
	return NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
}

package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/cars/internal/app"
	"github.com/polkiloo/cars/internal/config"
	"github.com/polkiloo/cars/internal/logger"
	"github.com/polkiloo/cars/internal/pkg/auth"
	"github.com/polkiloo/cars/internal/server/http/handlers"
	"github.com/polkiloo/cars/internal/server/http/router"
	"github.com/polkiloo/cars/internal/storage"
	"github.com/polkiloo/cars/internal/usecase"
)

// Module composes the application graph. opts are appended last so callers can fx.Replace parts.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(
			func(b storage.Backend) app.HealthChecker { return b },
			func(f *app.UserFacade) handlers.Facade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

package handlers

import (
	"context"

	"github.com/polkiloo/cars/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// UserFacade encapsulates user management exposed via HTTP.
type UserFacade interface {
	CreateUser(ctx context.Context, login, password string) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, login, password string) error
	DeleteUser(ctx context.Context, id int64) error
	Users(ctx context.Context) ([]model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	UserByLogin(ctx context.Context, login string) (*model.User, error)
	SearchUsers(ctx context.Context, key string) ([]model.User, error)
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	AuthFacade
	UserFacade
	HealthFacade
}

package app

import (
	"context"

	"github.com/polkiloo/cars/internal/domain/model"
	"github.com/polkiloo/cars/internal/usecase"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type UserFacade struct {
	auth   *usecase.AuthUseCase
	users  *usecase.UserUseCase
	health HealthChecker
}

func NewUserFacade(auth *usecase.AuthUseCase, users *usecase.UserUseCase, health HealthChecker) *UserFacade {
	return &UserFacade{auth: auth, users: users, health: health}
}

func (f *UserFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *UserFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *UserFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *UserFacade) CreateUser(ctx context.Context, login, password string) (*model.User, error) {
	return f.users.Create(ctx, login, password)
}

func (f *UserFacade) UpdateUser(ctx context.Context, id int64, login, password string) error {
	return f.users.Update(ctx, id, login, password)
}

func (f *UserFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

func (f *UserFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *UserFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *UserFacade) UserByLogin(ctx context.Context, login string) (*model.User, error) {
	return f.users.FindByLogin(ctx, login)
}

func (f *UserFacade) SearchUsers(ctx context.Context, key string) ([]model.User, error) {
	return f.users.Search(ctx, key)
}

// Health pings storage.
func (f *UserFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

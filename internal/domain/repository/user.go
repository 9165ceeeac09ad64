package repository

import (
	"context"

	"github.com/polkiloo/cars/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// Finders report absence through the boolean result and never return
// ErrNotFound. Update and Delete return ErrNotFound when no row matched.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id int64) error
	FindAllOrderByID(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, bool, error)
	FindByLogin(ctx context.Context, login string) (*model.User, bool, error)
	FindByLikeLogin(ctx context.Context, key string) ([]model.User, error)
}

package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/cars/internal/domain/errors"
	"github.com/polkiloo/cars/internal/domain/model"
	"github.com/polkiloo/cars/internal/domain/repository"
	pkgAuth "github.com/polkiloo/cars/internal/pkg/auth"
)

// UserUseCase manages user accounts. Passwords are hashed before they reach storage.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// Create stores a new user and returns it with the assigned id.
func (u *UserUseCase) Create(ctx context.Context, login, password string) (*model.User, error) {
	user, err := u.prepare(login, password)
	if err != nil {
		return nil, err
	}
	return u.users.Create(ctx, user)
}

// Update overwrites login and password of user id.
// ErrNotFound is returned when no such user exists.
func (u *UserUseCase) Update(ctx context.Context, id int64, login, password string) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	user, err := u.prepare(login, password)
	if err != nil {
		return err
	}
	user.ID = id
	return u.users.Update(ctx, user)
}

// Delete removes user id, ErrNotFound when there is nothing to remove.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	return u.users.Delete(ctx, id)
}

// List returns all users ordered by id.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.FindAllOrderByID(ctx)
}

// Get fetches user by identifier.
func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	user, found, err := u.users.FindByID(ctx, id)
	return orNotFound(user, found, err)
}

// FindByLogin fetches user by exact login.
func (u *UserUseCase) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	user, found, err := u.users.FindByLogin(ctx, strings.TrimSpace(login))
	return orNotFound(user, found, err)
}

// Search returns users whose login contains key.
func (u *UserUseCase) Search(ctx context.Context, key string) ([]model.User, error) {
	return u.users.FindByLikeLogin(ctx, key)
}

func (u *UserUseCase) prepare(login, password string) (model.User, error) {
	login, err := credentials(login, password, domainErrors.ErrInvalidUser)
	if err != nil {
		return model.User{}, err
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return model.User{}, err
	}
	return model.User{Login: login, Password: hash}, nil
}

// credentials trims login and rejects empty values with invalid.
func credentials(login, password string, invalid error) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", invalid
	}
	return login, nil
}

func orNotFound(user *model.User, found bool, err error) (*model.User, error) {
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/cars/internal/domain/errors"
	"github.com/polkiloo/cars/internal/domain/model"
	"github.com/polkiloo/cars/internal/domain/repository"
	pkgAuth "github.com/polkiloo/cars/internal/pkg/auth"
)

// AuthUseCase handles registration, login and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a user and returns it with a freshly issued token.
// A taken login surfaces as ErrAlreadyExists from the repository.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.User, string, error) {
	login, err := credentials(login, password, domainErrors.ErrInvalidCredentials)
	if err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{Login: login, Password: hash})
	if err != nil {
		return nil, "", err
	}
	return u.withToken(usr)
}

// Authenticate validates credentials and returns auth token.
// Unknown login and wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login, err := credentials(login, password, domainErrors.ErrInvalidCredentials)
	if err != nil {
		return nil, "", err
	}

	usr, found, err := u.users.FindByLogin(ctx, login)
	if err != nil {
		return nil, "", err
	}
	if !found || u.hasher.Compare(usr.Password, password) != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	return u.withToken(usr)
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

func (u *AuthUseCase) withToken(usr *model.User) (*model.User, string, error) {
	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

package test

import (
	"context"
	"errors"

	"github.com/polkiloo/cars/internal/domain/model"
	pkgAuth "github.com/polkiloo/cars/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserFacadeStub simulates user management operations.
type UserFacadeStub struct {
	CreateFn  func(context.Context, string, string) (*model.User, error)
	UpdateFn  func(context.Context, int64, string, string) error
	DeleteFn  func(context.Context, int64) error
	UsersFn   func(context.Context) ([]model.User, error)
	UserFn    func(context.Context, int64) (*model.User, error)
	ByLoginFn func(context.Context, string) (*model.User, error)
	SearchFn  func(context.Context, string) ([]model.User, error)
	HealthFn  func(context.Context) error
}

// CreateUser returns created user with a fixed id.
func (s UserFacadeStub) CreateUser(ctx context.Context, login, password string) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, login, password)
	}
	return &model.User{ID: 1, Login: login, Password: "hash:" + password}, nil
}

// UpdateUser delegates to override or succeeds.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, login, password string) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, login, password)
	}
	return nil
}

// DeleteUser delegates to override or succeeds.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Users returns predefined users ordered by id.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Login: "john"}, {ID: 2, Login: "mary"}}, nil
}

// User returns user with requested id.
func (s UserFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Login: "john"}, nil
}

// UserByLogin returns user with requested login.
func (s UserFacadeStub) UserByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.ByLoginFn != nil {
		return s.ByLoginFn(ctx, login)
	}
	return &model.User{ID: 1, Login: login}, nil
}

// SearchUsers returns users matched by substring.
func (s UserFacadeStub) SearchUsers(ctx context.Context, key string) ([]model.User, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, key)
	}
	return []model.User{{ID: 1, Login: "john"}}, nil
}

// Health reports storage health.
func (s UserFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// FacadeStub aggregates facade dependencies for HTTP layer tests.
type FacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}

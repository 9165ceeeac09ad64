package test

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/cars/internal/domain/errors"
	"github.com/polkiloo/cars/internal/domain/model"
	"github.com/polkiloo/cars/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByID map[int64]model.User
	Next int64
	Err  error

	mu sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized storage.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByID: make(map[int64]model.User), Next: 1}
}

// Create registers user unless the login is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]model.User)
	}
	if _, taken := s.byLogin(user.Login); taken {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = s.Next
	s.Next++
	s.ByID[user.ID] = user
	return &user, nil
}

// Update overwrites stored user or reports ErrNotFound.
func (s *UserRepositoryStub) Update(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	if other, taken := s.byLogin(user.Login); taken && other.ID != user.ID {
		return domainErrors.ErrAlreadyExists
	}
	s.ByID[user.ID] = user
	return nil
}

// Delete removes stored user or reports ErrNotFound.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// FindAllOrderByID returns users sorted by id.
func (s *UserRepositoryStub) FindAllOrderByID(ctx context.Context) ([]model.User, error) {
	return s.filter(func(model.User) bool { return true })
}

// FindByID fetches user by identifier.
func (s *UserRepositoryStub) FindByID(ctx context.Context, id int64) (*model.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, false, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return &user, true, nil
	}
	return nil, false, nil
}

// FindByLogin fetches user by exact login.
func (s *UserRepositoryStub) FindByLogin(ctx context.Context, login string) (*model.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, false, s.Err
	}
	if user, ok := s.byLogin(login); ok {
		return &user, true, nil
	}
	return nil, false, nil
}

// FindByLikeLogin returns users whose login contains key.
func (s *UserRepositoryStub) FindByLikeLogin(ctx context.Context, key string) ([]model.User, error) {
	return s.filter(func(u model.User) bool { return strings.Contains(u.Login, key) })
}

func (s *UserRepositoryStub) filter(keep func(model.User) bool) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		if keep(u) {
			result = append(result, u)
		}
	}
	slices.SortFunc(result, func(a, b model.User) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

func (s *UserRepositoryStub) byLogin(login string) (model.User, bool) {
	var (
		match model.User
		found bool
	)
	for _, u := range s.ByID {
		if u.Login == login && (!found || u.ID < match.ID) {
			match, found = u, true
		}
	}
	return match, found
}

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/cars/internal/domain/errors"
	"github.com/polkiloo/cars/internal/domain/model"
)

const uniqueViolation = "23505"

type userRepository struct {
	storage *Storage
}

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO auto_user (login, password) VALUES ($1, $2) RETURNING id`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, user.Login, user.Password).Scan(&user.ID)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user model.User) error {
	const query = `UPDATE auto_user SET login = $1, password = $2 WHERE id = $3`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, user.Login, user.Password, user.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainErrors.ErrNotFound):
		return err
	case isUniqueViolation(err):
		return domainErrors.ErrAlreadyExists
	default:
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM auto_user WHERE id = $1`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return err
}

func (r *userRepository) FindAllOrderByID(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, login, password FROM auto_user ORDER BY id`
	users, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, bool, error) {
	const query = `SELECT id, login, password FROM auto_user WHERE id = $1`
	u, found, err := r.one(ctx, query, id)
	if err != nil {
		return nil, false, fmt.Errorf("find user %d: %w", id, err)
	}
	return u, found, nil
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*model.User, bool, error) {
	const query = `SELECT id, login, password FROM auto_user WHERE login = $1 ORDER BY id LIMIT 1`
	u, found, err := r.one(ctx, query, login)
	if err != nil {
		return nil, false, fmt.Errorf("find user by login: %w", err)
	}
	return u, found, nil
}

// FindByLikeLogin matches key literally; strpos keeps % and _ from acting as wildcards.
func (r *userRepository) FindByLikeLogin(ctx context.Context, key string) ([]model.User, error) {
	if key == "" {
		return r.FindAllOrderByID(ctx)
	}
	const query = `SELECT id, login, password FROM auto_user WHERE strpos(login, $1) > 0 ORDER BY id`
	users, err := r.list(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (r *userRepository) one(ctx context.Context, query string, args ...any) (*model.User, bool, error) {
	var u model.User
	found := true
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Login, &u.Password)
		if errors.Is(err, pgx.ErrNoRows) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &u, true, nil
}

func (r *userRepository) list(ctx context.Context, query string, args ...any) ([]model.User, error) {
	result := make([]model.User, 0)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u model.User
			if err := rows.Scan(&u.ID, &u.Login, &u.Password); err != nil {
				return err
			}
			result = append(result, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

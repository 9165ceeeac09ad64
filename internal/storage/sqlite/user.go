package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/cars/internal/domain/errors"
	"github.com/polkiloo/cars/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO auto_user (login, password) VALUES (?, ?)`
	err := r.storage.WithinTransaction(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, user.Login, user.Password)
		if err != nil {
			return err
		}
		user.ID, err = res.LastInsertId()
		return err
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
	const query = `UPDATE auto_user SET login = ?, password = ? WHERE id = ?`
	err := r.storage.WithinTransaction(ctx, func(tx *sql.Tx) error {
		return execAffecting(ctx, tx, query, user.Login, user.Password, user.ID)
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
	const query = `DELETE FROM auto_user WHERE id = ?`
	err := r.storage.WithinTransaction(ctx, func(tx *sql.Tx) error {
		return execAffecting(ctx, tx, query, id)
	})
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return err
}

func (r *userRepository) FindAllOrderByID(ctx context.Context) ([]model.User, error) {
	users, err := r.list(ctx, `SELECT id, login, password FROM auto_user ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, bool, error) {
	u, found, err := r.one(ctx, `SELECT id, login, password FROM auto_user WHERE id = ?`, id)
	if err != nil {
		return nil, false, fmt.Errorf("find user %d: %w", id, err)
	}
	return u, found, nil
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*model.User, bool, error) {
	u, found, err := r.one(ctx, `SELECT id, login, password FROM auto_user WHERE login = ? ORDER BY id LIMIT 1`, login)
	if err != nil {
		return nil, false, fmt.Errorf("find user by login: %w", err)
	}
	return u, found, nil
}

// FindByLikeLogin uses instr, which is case-sensitive and has no wildcards,
// unlike sqlite's LIKE.
func (r *userRepository) FindByLikeLogin(ctx context.Context, key string) ([]model.User, error) {
	if key == "" {
		return r.FindAllOrderByID(ctx)
	}
	users, err := r.list(ctx, `SELECT id, login, password FROM auto_user WHERE instr(login, ?) > 0 ORDER BY id`, key)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func execAffecting(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) one(ctx context.Context, query string, args ...any) (*model.User, bool, error) {
	var u model.User
	found := true
	err := r.storage.WithinTransaction(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Login, &u.Password)
		if errors.Is(err, sql.ErrNoRows) {
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
	err := r.storage.WithinTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
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

package store

import (
	"bloggo/domain"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	u := &domain.User{
		Username:  domain.Truncate(username, domain.MaxUsernameLen),
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}

	err := s.WithTx(ctx, "create user", func(tx *sqlx.Tx) error {
		var count int
		err := tx.GetContext(ctx, &count, tx.Rebind("SELECT COUNT(*) FROM users WHERE username = ?"), u.Username)
		if err != nil {
			return errors.Wrap(err, "count users")
		}
		if count != 0 {
			return domain.ErrUsernameTaken
		}

		err = tx.QueryRowxContext(ctx,
			tx.Rebind("INSERT INTO users (username, password, created_at) VALUES (?, ?, ?) RETURNING id"),
			u.Username, u.Password, u.CreatedAt,
		).Scan(&u.ID)
		if uniqueViolation(err) {
			// lost a race with a concurrent registration
			return domain.ErrUsernameTaken
		}
		return errors.Wrap(err, "insert user")
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.db.GetContext(ctx, &u, s.db.Rebind("SELECT id, username, password, created_at FROM users WHERE username = ?"), username)
	if err != nil {
		return nil, notFound(err, "get user by username")
	}
	return &u, nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := s.db.GetContext(ctx, &u, s.db.Rebind("SELECT id, username, password, created_at FROM users WHERE id = ?"), id)
	if err != nil {
		return nil, notFound(err, "get user by id")
	}
	return &u, nil
}

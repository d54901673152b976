package store

import (
	"bloggo/domain"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const selectPosts = `SELECT p.id, p.title, p.body, p.created_at, p.user_id, u.username AS author
FROM posts p
INNER JOIN users u ON u.id = p.user_id`

// ListPosts returns every post with its author, newest first.
func (s *Store) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts := []domain.Post{}
	err := s.db.SelectContext(ctx, &posts, selectPosts+" ORDER BY p.created_at DESC, p.id DESC")
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	return posts, nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := s.db.GetContext(ctx, &p, s.db.Rebind(selectPosts+" WHERE p.id = ?"), id)
	if err != nil {
		return nil, notFound(err, "get post")
	}
	return &p, nil
}

func (s *Store) CreatePost(ctx context.Context, userID int64, title, body string) (*domain.Post, error) {
	p := &domain.Post{
		Title:     domain.Truncate(title, domain.MaxTitleLen),
		Body:      body,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	err := s.db.QueryRowxContext(ctx,
		s.db.Rebind("INSERT INTO posts (title, body, created_at, user_id) VALUES (?, ?, ?, ?) RETURNING id"),
		p.Title, p.Body, p.CreatedAt, p.UserID,
	).Scan(&p.ID)
	if err != nil {
		return nil, errors.Wrap(err, "insert post")
	}
	return p, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int64, title, body string) error {
	res, err := s.db.ExecContext(ctx,
		s.db.Rebind("UPDATE posts SET title = ?, body = ? WHERE id = ?"),
		domain.Truncate(title, domain.MaxTitleLen), body, id,
	)
	if err != nil {
		return errors.Wrap(err, "update post")
	}
	return expectOneRow(res, "update post")
}

// DeletePost removes the post and all of its comments in one transaction.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	return s.WithTx(ctx, "delete post", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM comments WHERE post_id = ?"), id); err != nil {
			return errors.Wrap(err, "delete post comments")
		}
		res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM posts WHERE id = ?"), id)
		if err != nil {
			return errors.Wrap(err, "delete post")
		}
		return expectOneRow(res, "delete post")
	})
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func expectOneRow(res rowsAffecter, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, what)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

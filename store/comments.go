package store

import (
	"bloggo/domain"
	"context"
	"time"

	"github.com/pkg/errors"
)

const selectComments = `SELECT c.id, c.body, c.created_at, c.post_id, c.user_id, u.username AS author
FROM comments c
INNER JOIN users u ON u.id = c.user_id`

// CommentsForPost returns the comments of a post, oldest first.
func (s *Store) CommentsForPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	err := s.db.SelectContext(ctx, &comments, s.db.Rebind(selectComments+" WHERE c.post_id = ? ORDER BY c.created_at, c.id"), postID)
	if err != nil {
		return nil, errors.Wrap(err, "list comments")
	}
	return comments, nil
}

func (s *Store) GetComment(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := s.db.GetContext(ctx, &c, s.db.Rebind(selectComments+" WHERE c.id = ?"), id)
	if err != nil {
		return nil, notFound(err, "get comment")
	}
	return &c, nil
}

func (s *Store) CreateComment(ctx context.Context, postID, userID int64, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		Body:      domain.Truncate(body, domain.MaxCommentLen),
		CreatedAt: time.Now().UTC(),
		PostID:    postID,
		UserID:    userID,
	}
	err := s.db.QueryRowxContext(ctx,
		s.db.Rebind("INSERT INTO comments (body, created_at, post_id, user_id) VALUES (?, ?, ?, ?) RETURNING id"),
		c.Body, c.CreatedAt, c.PostID, c.UserID,
	).Scan(&c.ID)
	if err != nil {
		return nil, errors.Wrap(err, "insert comment")
	}
	return c, nil
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM comments WHERE id = ?"), id)
	if err != nil {
		return errors.Wrap(err, "delete comment")
	}
	return expectOneRow(res, "delete comment")
}

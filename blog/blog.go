// Package blog implements the post and comment operations and the ownership
// check that guards them. Every operation receives the acting user explicitly.
package blog

import (
	"bloggo/domain"
	"context"
)

type Store interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, userID int64, title, body string) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, title, body string) error
	DeletePost(ctx context.Context, id int64) error

	CommentsForPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	GetComment(ctx context.Context, id int64) (*domain.Comment, error)
	CreateComment(ctx context.Context, postID, userID int64, body string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) error

	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// PostDetail is a post together with its comments.
type PostDetail struct {
	domain.Post
	Comments []domain.Comment `json:"comments"`
}

// GetPost loads a post. With checkAuthor set, viewer must be its owner.
func (s *Service) GetPost(ctx context.Context, id int64, viewer *domain.User, checkAuthor bool) (*domain.Post, error) {
	post, err := s.store.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if checkAuthor && !post.OwnedBy(viewer) {
		return nil, domain.ErrForbidden
	}
	return post, nil
}

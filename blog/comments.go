package blog

import (
	"bloggo/domain"
	"context"
)

func (s *Service) AddComment(ctx context.Context, postID int64, viewer *domain.User, form domain.CommentForm) (*domain.Comment, error) {
	if viewer == nil {
		return nil, domain.ErrForbidden
	}
	if _, err := s.GetPost(ctx, postID, viewer, false); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.store.CreateComment(ctx, postID, viewer.ID, form.Body)
}

// DeleteComment removes a comment of the given post. A comment that belongs
// to another post is reported as not found.
func (s *Service) DeleteComment(ctx context.Context, postID, commentID int64, viewer *domain.User) error {
	if viewer == nil {
		return domain.ErrForbidden
	}
	comment, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return domain.ErrNotFound
	}
	return s.store.DeleteComment(ctx, commentID)
}

package blog

import (
	"bloggo/domain"
	"context"
)

func (s *Service) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.store.ListPosts(ctx)
}

func (s *Service) CreatePost(ctx context.Context, viewer *domain.User, form domain.PostForm) (*domain.Post, error) {
	if viewer == nil {
		return nil, domain.ErrForbidden
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.store.CreatePost(ctx, viewer.ID, form.Title, form.Body)
}

// UpdatePost overwrites title and body of a post owned by viewer. The loaded
// post is returned even on validation failure so the form can be shown again.
func (s *Service) UpdatePost(ctx context.Context, id int64, viewer *domain.User, form domain.PostForm) (*domain.Post, error) {
	post, err := s.GetPost(ctx, id, viewer, true)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return post, err
	}
	if err := s.store.UpdatePost(ctx, id, form.Title, form.Body); err != nil {
		return post, err
	}
	post.Title = form.Title
	post.Body = form.Body
	return post, nil
}

// DeletePost removes a post owned by viewer along with its comments.
func (s *Service) DeletePost(ctx context.Context, id int64, viewer *domain.User) error {
	if _, err := s.GetPost(ctx, id, viewer, true); err != nil {
		return err
	}
	return s.store.DeletePost(ctx, id)
}

func (s *Service) ViewPost(ctx context.Context, id int64) (*PostDetail, error) {
	post, err := s.GetPost(ctx, id, nil, false)
	if err != nil {
		return nil, err
	}
	comments, err := s.store.CommentsForPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: *post, Comments: comments}, nil
}

// Details returns every post with its comments, newest post first.
func (s *Service) Details(ctx context.Context) ([]PostDetail, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]PostDetail, 0, len(posts))
	for _, p := range posts {
		comments, err := s.store.CommentsForPost(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, PostDetail{Post: p, Comments: comments})
	}
	return details, nil
}

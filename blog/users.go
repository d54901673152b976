package blog

import (
	"bloggo/auth"
	"bloggo/domain"
	"context"
	"errors"
	"fmt"
)

func (s *Service) Register(ctx context.Context, form domain.CredentialsForm) (*domain.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.store.CreateUser(ctx, form.Username, hash)
	if errors.Is(err, domain.ErrUsernameTaken) {
		return nil, &domain.ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("User %s is already registered.", form.Username),
		}
	}
	return user, err
}

// Authenticate checks the submitted credentials against the stored hash.
func (s *Service) Authenticate(ctx context.Context, form domain.CredentialsForm) (*domain.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	user, err := s.store.UserByUsername(ctx, form.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.ValidationError{Field: "username", Message: "Incorrect username."}
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, form.Password) {
		return nil, &domain.ValidationError{Field: "password", Message: "Incorrect password."}
	}
	return user, nil
}

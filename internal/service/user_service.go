package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/socialdev/internal/auth"
	"github.com/spec-kit/socialdev/internal/domain"
	"github.com/spec-kit/socialdev/internal/repository"
	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

// UserService exposes read-only user queries.
type UserService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, posts repository.PostRepository) *UserService {
	return &UserService{users: users, posts: posts}
}

// List returns every user, newest first, without password hashes.
func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id string) (domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.PublicUser{}, translate(err, fmt.Sprintf("Usuario con ID %s no encontrado", id))
	}
	return user.Public(), nil
}

// Profile returns the caller's public view with their post count.
func (s *UserService) Profile(ctx context.Context, caller auth.Identity) (domain.UserProfile, error) {
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return domain.UserProfile{}, translate(err, "Usuario no encontrado")
	}
	count, err := s.posts.CountByUser(ctx, user.ID)
	if err != nil {
		return domain.UserProfile{}, apperrors.NewInternalError(err)
	}
	return domain.UserProfile{PublicUser: user.Public(), PostsCount: count}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spec-kit/socialdev/internal/auth"
	"github.com/spec-kit/socialdev/internal/domain"
	"github.com/spec-kit/socialdev/internal/events"
	"github.com/spec-kit/socialdev/internal/repository"
	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

// PostDeletedMessage is returned after a successful delete.
const PostDeletedMessage = "Publicación eliminada exitosamente"

type postAction string

const (
	actionEdit   postAction = "editar"
	actionDelete postAction = "eliminar"
)

// PostService coordinates post workflows.
type PostService struct {
	posts      repository.PostRepository
	dispatcher events.Dispatcher
}

// PostDependencies bundles requirements for the post service.
type PostDependencies struct {
	PostRepo   repository.PostRepository
	Dispatcher events.Dispatcher
}

// NewPostService constructs the service.
func NewPostService(deps PostDependencies) *PostService {
	return &PostService{posts: deps.PostRepo, dispatcher: deps.Dispatcher}
}

// Create publishes a new post owned by the caller.
func (s *PostService) Create(ctx context.Context, caller auth.Identity, content string) (*domain.Post, error) {
	if err := checkContent(content); err != nil {
		return nil, err
	}
	post := &domain.Post{Content: content, UserID: caller.ID}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, translate(err, "")
	}

	created, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventPostCreated,
		ActorID: caller.ID,
		Payload: events.PostPayload{PostID: created.ID, ContentPreview: stringPreview(created.Content)},
	})
	return created, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return posts, nil
}

// ListByUser returns the posts of one user, newest first. An unknown user
// yields an empty list.
func (s *PostService) ListByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return posts, nil
}

// Get returns a single post.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, postNotFound(id))
	}
	return post, nil
}

// Update replaces the content of a post owned by the caller.
func (s *PostService) Update(ctx context.Context, caller auth.Identity, id, content string) (*domain.Post, error) {
	post, err := s.authorizeOwner(ctx, caller, id, actionEdit)
	if err != nil {
		return nil, err
	}
	// Handlers validate the body first; this covers callers outside HTTP.
	if err := checkContent(content); err != nil {
		return nil, err
	}

	post.Content = content
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, translate(err, postNotFound(id))
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventPostUpdated,
		ActorID: caller.ID,
		Payload: events.PostPayload{PostID: post.ID, ContentPreview: stringPreview(post.Content)},
	})
	return post, nil
}

// Delete removes a post owned by the caller.
func (s *PostService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if _, err := s.authorizeOwner(ctx, caller, id, actionDelete); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return translate(err, postNotFound(id))
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventPostDeleted,
		ActorID: caller.ID,
		Payload: events.PostPayload{PostID: id},
	})
	return nil
}

// authorizeOwner loads the post and checks the caller owns it. Existence is
// checked first so a missing post is always a 404.
func (s *PostService) authorizeOwner(ctx context.Context, caller auth.Identity, id string, action postAction) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, postNotFound(id))
	}
	if !post.OwnedBy(caller.ID) {
		return nil, apperrors.NewForbidden(fmt.Sprintf("No tienes permiso para %s esta publicación", action))
	}
	return post, nil
}

func checkContent(content string) error {
	n := utf8.RuneCountInString(content)
	switch {
	case n < domain.PostContentMinLength:
		return apperrors.NewValidationError("Validation failed",
			"El contenido es requerido", "El contenido debe tener al menos 1 carácter")
	case n > domain.PostContentMaxLength:
		return apperrors.NewValidationError("Validation failed", "El contenido no puede exceder 500 caracteres")
	case strings.ContainsRune(content, 0):
		return apperrors.NewValidationError("Validation failed", "El contenido no puede contener caracteres nulos")
	}
	return nil
}

func postNotFound(id string) string {
	return fmt.Sprintf("Publicación con ID %s no encontrada", id)
}

// translate maps repository failures onto domain errors. notFound is the
// message used for a missing record; an empty message treats it as internal.
func translate(err error, notFound string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound) && notFound != "":
		return apperrors.NewNotFound(notFound)
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.NewConflict("Resource already exists", nil)
	default:
		return apperrors.NewInternalError(err)
	}
}

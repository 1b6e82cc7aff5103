package dto

import (
	"time"

	"github.com/spec-kit/socialdev/internal/domain"
)

// PostContentRequest is the body of create and update.
type PostContentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500,nonul"`
}

// PostResponse is the wire form of a post.
type PostResponse struct {
	ID        string             `json:"id"`
	Content   string             `json:"content"`
	UserID    string             `json:"userId"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	User      *domain.PostAuthor `json:"user"`
}

// MessageResponse carries a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewPostResponse converts a domain post.
func NewPostResponse(p *domain.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Content:   p.Content,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		User:      p.Author,
	}
}

// NewPostResponses converts a list, never returning nil.
func NewPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResponse(&posts[i]))
	}
	return out
}

package domain

import "time"

// Content length bounds, counted in characters.
const (
	PostContentMinLength = 1
	PostContentMaxLength = 500
)

// Post is a short text published by a user. UserID never changes after creation.
type Post struct {
	ID        string
	Content   string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Author    *PostAuthor
}

// PostAuthor is the author projection embedded in post responses.
type PostAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OwnedBy reports whether userID owns the post.
func (p *Post) OwnedBy(userID string) bool {
	return p.UserID == userID
}

package domain

import "time"

// User is an account able to log in and publish posts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the outward view of a User with the password hash stripped.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the projection safe to serialize.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Author returns the compact projection embedded in posts.
func (u *User) Author() PostAuthor {
	return PostAuthor{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserProfile is a PublicUser enriched with activity counters.
type UserProfile struct {
	PublicUser
	PostsCount int `json:"postsCount"`
}

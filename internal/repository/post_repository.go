package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/socialdev/internal/domain"
)

// PostRepository encapsulates post persistence. Reads always embed the author.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Post, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Count(ctx context.Context) (int, error)
}

type postRepository struct {
	db DB
}

// NewPostRepository instantiates repository.
func NewPostRepository(db DB) PostRepository {
	return &postRepository{db: db}
}

const postSelect = `
        SELECT p.id, p.content, p.user_id, p.created_at, p.updated_at, u.id, u.name, u.email
        FROM posts p JOIN users u ON u.id = p.user_id`

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	if !validID(post.UserID) {
		return ErrNotFound
	}
	const query = `
        INSERT INTO posts (id, content, user_id)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at`

	id := uuid.NewString()
	if err := r.db.QueryRow(ctx, query, id, post.Content, post.UserID).
		Scan(&post.CreatedAt, &post.UpdatedAt); err != nil {
		return mapError(err)
	}
	post.ID = id
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	if !validID(post.ID) {
		return ErrNotFound
	}
	const query = `
        UPDATE posts SET content=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING updated_at`

	return mapError(r.db.QueryRow(ctx, query, post.Content, post.ID).Scan(&post.UpdatedAt))
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return scanPost(r.db.QueryRow(ctx, postSelect+` WHERE p.id=$1`, id))
}

func (r *postRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, postSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepository) ListByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	if !validID(userID) {
		return []domain.Post{}, nil
	}
	rows, err := r.db.Query(ctx, postSelect+` WHERE p.user_id=$1 ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	if !validID(userID) {
		return 0, nil
	}
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE user_id=$1`, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		post   domain.Post
		author domain.PostAuthor
	)
	if err := row.Scan(
		&post.ID,
		&post.Content,
		&post.UserID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.ID,
		&author.Name,
		&author.Email,
	); err != nil {
		return nil, mapError(err)
	}
	post.Author = &author
	return &post, nil
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	result := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *post)
	}
	return result, rows.Err()
}

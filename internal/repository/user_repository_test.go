package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/socialdev/internal/domain"
)

const aliceID = "6f1c2b8e-8d0a-4a54-9a3e-0c3f6f2b7c11"

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func userRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(aliceID, "Alice", "alice@socialdev.com", "$2a$10$hash", now, now)
}

func TestUserCreate_AssignsIDAndTimestamps(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users \(id, name, email, password_hash\)`).
		WithArgs(pgxmock.AnyArg(), "Alice", "alice@socialdev.com", "$2a$10$hash").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	user := &domain.User{Name: "Alice", Email: "alice@socialdev.com", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.True(t, validID(user.ID))
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.UpdatedAt)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "Alice", "alice@socialdev.com", "h").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &domain.User{Name: "Alice", Email: "alice@socialdev.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserGetByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM users WHERE email=\$1`).
		WithArgs("alice@socialdev.com").
		WillReturnRows(userRow(now))

	user, err := repo.GetByEmail(context.Background(), "alice@socialdev.com")
	require.NoError(t, err)
	assert.Equal(t, aliceID, user.ID)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users WHERE email=\$1`).
		WithArgs("ghost@socialdev.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@socialdev.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserGetByID_NonUUIDSkipsQuery(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserGetByID_DBError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users WHERE id=\$1`).
		WithArgs(aliceID).
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByID(context.Background(), aliceID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUserList_NewestFirstQuery(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM users ORDER BY created_at DESC`).
		WillReturnRows(userRow(now))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestUserCount(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(10))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestUserDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`DELETE FROM users WHERE id=\$1`).
		WithArgs(aliceID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), aliceID), ErrNotFound)
}

package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/socialdev/internal/domain"
	"github.com/spec-kit/socialdev/internal/repository"
	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

type stubResolver struct {
	users map[string]*domain.User
	err   error
}

func (s stubResolver) GetByID(_ context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func newGate(t *testing.T) (*AuthMiddleware, *TokenManager) {
	t.Helper()
	tm := NewTokenManager("secret", time.Hour)
	users := stubResolver{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Name: "Alice", Email: "a@x.com", PasswordHash: "hash"},
	}}
	return NewAuthMiddleware(tm, users), tm
}

func TestAuthenticate(t *testing.T) {
	gate, tm := newGate(t)
	valid, _, err := tm.GenerateToken("user-1", "a@x.com")
	require.NoError(t, err)
	ghost, _, err := tm.GenerateToken("user-9", "g@x.com")
	require.NoError(t, err)
	foreign, _, err := NewTokenManager("other", time.Hour).GenerateToken("user-1", "a@x.com")
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"missing", "", "Unauthorized"},
		{"wrong scheme", "Basic " + valid, "Unauthorized"},
		{"no token", "Bearer ", "Unauthorized"},
		{"garbage", "Bearer nope", "Unauthorized"},
		{"foreign secret", "Bearer " + foreign, "Unauthorized"},
		{"unknown user", "Bearer " + ghost, "Usuario no encontrado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gate.Authenticate(context.Background(), tc.header)
			de := apperrors.ToDomainError(err)
			require.NotNil(t, de)
			assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
			assert.Equal(t, tc.message, de.Message)
		})
	}

	identity, err := gate.Authenticate(context.Background(), "Bearer "+valid)
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: "user-1", Email: "a@x.com", Name: "Alice"}, identity)
}

func TestAuthenticate_StoreFailureIsInternal(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.GenerateToken("user-1", "a@x.com")
	require.NoError(t, err)

	gate := NewAuthMiddleware(tm, stubResolver{err: errors.New("pool closed")})
	_, err = gate.Authenticate(context.Background(), "Bearer "+token)
	assert.True(t, apperrors.IsStatus(err, http.StatusInternalServerError))
}

func TestHandle_AttachesIdentity(t *testing.T) {
	gate, tm := newGate(t)
	token, _, err := tm.GenerateToken("user-1", "a@x.com")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	app.Get("/me", gate.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusTeapot)
		}
		return c.SendString(identity.Email)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "a@x.com", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

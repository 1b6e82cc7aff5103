package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

func TestUserService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.addUser(t, "Alice", "alice@x.com", "secret1")
	bob := f.addUser(t, "Bob", "bob@x.com", "secret1")
	svc := f.userService()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, bob.ID, users[0].ID)
	assert.Equal(t, alice.ID, users[1].ID)

	got, err := svc.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", got.Email)

	_, err = svc.Get(ctx, "missing")
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "Usuario con ID missing no encontrado", de.Message)
}

func TestUserService_ProfileCountsPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.addUser(t, "Alice", "alice@x.com", "secret1")
	bob := f.addUser(t, "Bob", "bob@x.com", "secret1")
	posts := f.postService()

	for _, content := range []string{"a", "b"} {
		_, err := posts.Create(ctx, alice, content)
		require.NoError(t, err)
	}
	_, err := posts.Create(ctx, bob, "c")
	require.NoError(t, err)

	profile, err := f.userService().Profile(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	assert.Equal(t, 2, profile.PostsCount)
}

func TestUserService_ProfileOfVanishedUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.addUser(t, "Alice", "alice@x.com", "secret1")
	require.NoError(t, f.store.Users().Delete(ctx, alice.ID))

	_, err := f.userService().Profile(ctx, alice)
	assert.True(t, apperrors.IsStatus(err, http.StatusNotFound))
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/socialdev/internal/auth"
	"github.com/spec-kit/socialdev/internal/domain"
	"github.com/spec-kit/socialdev/internal/events"
	"github.com/spec-kit/socialdev/internal/repository"
)

const testSecret = "test-secret"

type fixture struct {
	store      *repository.MemoryStore
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	published  []events.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:      repository.NewMemoryStore(),
		tokens:     auth.NewTokenManager(testSecret, time.Hour),
		dispatcher: events.NewInMemoryDispatcher(),
	}
	for _, eventType := range events.AllEventTypes {
		f.dispatcher.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			f.published = append(f.published, e)
			return nil
		})
	}
	return f
}

func (f *fixture) addUser(t *testing.T, name, email, password string) auth.Identity {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{Name: name, Email: email, PasswordHash: hash}
	require.NoError(t, f.store.Users().Create(context.Background(), user))
	return auth.IdentityOf(user)
}

func (f *fixture) authService() *AuthService {
	return NewAuthService(AuthDependencies{
		UserRepo:     f.store.Users(),
		TokenManager: f.tokens,
		BcryptCost:   bcrypt.MinCost,
		Dispatcher:   f.dispatcher,
	})
}

func (f *fixture) postService() *PostService {
	return NewPostService(PostDependencies{PostRepo: f.store.Posts(), Dispatcher: f.dispatcher})
}

func (f *fixture) userService() *UserService {
	return NewUserService(f.store.Users(), f.store.Posts())
}

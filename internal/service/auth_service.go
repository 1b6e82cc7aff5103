package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spec-kit/socialdev/internal/auth"
	"github.com/spec-kit/socialdev/internal/events"
	"github.com/spec-kit/socialdev/internal/repository"
	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

const invalidCredentialsMessage = "Credenciales inválidas"

// LoginResult is returned on a successful login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        auth.Identity
}

// AuthService coordinates the login flow.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	dispatcher events.Dispatcher

	dummyOnce sync.Once
	dummyHash string
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	TokenManager *auth.TokenManager
	BcryptCost   int
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   deps.TokenManager,
		bcryptCost: deps.BcryptCost,
		dispatcher: deps.Dispatcher,
	}
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewInternalError(err)
		}
		// Keep the unknown-email path as slow as a wrong password.
		_, _ = auth.VerifyPassword(s.placeholderHash(), password)
		return nil, apperrors.NewUnauthorized(invalidCredentialsMessage)
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if !ok {
		return nil, apperrors.NewUnauthorized(invalidCredentialsMessage)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventUserLoggedIn,
		ActorID: user.ID,
		Payload: events.LoginPayload{Email: user.Email},
	})

	return &LoginResult{AccessToken: token, ExpiresAt: exp, User: auth.IdentityOf(user)}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("socialdev-placeholder", s.bcryptCost)
	})
	return s.dummyHash
}

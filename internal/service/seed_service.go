package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/socialdev/internal/auth"
	"github.com/spec-kit/socialdev/internal/domain"
	"github.com/spec-kit/socialdev/internal/repository"
)

// SeedPassword is the password shared by every seeded account.
const SeedPassword = "password123"

var seedNames = []string{
	"Uno", "Dos", "Tres", "Cuatro", "Cinco",
	"Seis", "Siete", "Ocho", "Nueve", "Diez",
}

var seedContents = []string{
	"¡Hola a todos! Este es mi primer post en SocialDev 🚀",
	"Me encanta esta nueva plataforma de desarrolladores",
	"Acabo de terminar mi proyecto en React, ¡estoy muy emocionado!",
	"TypeScript es increíble, cambia la forma de desarrollar",
	"Aprendiendo NestJS y me está gustando mucho la estructura",
	"Docker hace que el deployment sea mucho más fácil",
	"Prisma ORM es muy intuitivo, lo recomiendo 100%",
	"Compartiendo mi experiencia con microservicios",
	"Zustand vs Redux, ¿cuál prefieren ustedes?",
	"Tailwind CSS me ha ahorrado muchísimo tiempo en estilos",
}

// SeedResult summarizes a seeding run.
type SeedResult struct {
	UsersCreated int
	UsersSkipped int
	PostsCreated int
	TotalUsers   int
	TotalPosts   int
}

// SeedService populates an empty store with demo accounts and posts.
type SeedService struct {
	users      repository.UserRepository
	posts      repository.PostRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewSeedService constructs the seeder.
func NewSeedService(users repository.UserRepository, posts repository.PostRepository, bcryptCost int, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{users: users, posts: posts, bcryptCost: bcryptCost, logger: logger}
}

// Run creates user1..user10 with one post each. Accounts whose email already
// exists are left untouched.
func (s *SeedService) Run(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	hash, err := auth.HashPassword(SeedPassword, s.bcryptCost)
	if err != nil {
		return res, fmt.Errorf("hash seed password: %w", err)
	}

	for i, name := range seedNames {
		email := fmt.Sprintf("user%d@socialdev.com", i+1)

		_, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil:
			res.UsersSkipped++
			s.logger.Info("seed user exists", zap.String("email", email))
			continue
		case !errors.Is(err, repository.ErrNotFound):
			return res, fmt.Errorf("lookup %s: %w", email, err)
		}

		user := &domain.User{Name: "Usuario " + name, Email: email, PasswordHash: hash}
		if err := s.users.Create(ctx, user); err != nil {
			return res, fmt.Errorf("create %s: %w", email, err)
		}
		res.UsersCreated++

		post := &domain.Post{Content: seedContents[i], UserID: user.ID}
		if err := s.posts.Create(ctx, post); err != nil {
			return res, fmt.Errorf("create post for %s: %w", email, err)
		}
		res.PostsCreated++
		s.logger.Info("seed user created", zap.String("email", email), zap.String("user_id", user.ID))
	}

	if res.TotalUsers, err = s.users.Count(ctx); err != nil {
		return res, fmt.Errorf("count users: %w", err)
	}
	if res.TotalPosts, err = s.posts.Count(ctx); err != nil {
		return res, fmt.Errorf("count posts: %w", err)
	}
	return res, nil
}

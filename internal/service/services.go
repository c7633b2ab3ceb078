package service

import (
	"time"

	"github.com/myflix/myflix-api/internal/auth"
	"github.com/myflix/myflix-api/internal/config"
	"github.com/myflix/myflix-api/internal/repository"
)

type Services struct {
	Auth  *AuthService
	User  *UserService
	Movie *MovieService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.JWTExpirationHours)*time.Hour,
	)

	return &Services{
		Auth:  NewAuthService(repos.User, hasher, tokens),
		User:  NewUserService(repos.User, repos.Movie, hasher),
		Movie: NewMovieService(repos.Movie),
	}
}

package service

import (
	"context"
	"errors"

	"github.com/myflix/myflix-api/internal/auth"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type LoginResult struct {
	User  *domain.User
	Token string
}

// Login verifies the credentials and issues a bearer token. An unknown
// user name and a wrong password both yield domain.ErrInvalidCredentials
// so the caller cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a hash comparison so a lookup miss is not
			// distinguishable from a wrong password by timing.
			s.hasher.DummyCompare(password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UserName)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

// Authenticate verifies a bearer token and re-resolves its subject
// against the live store. The token only asserts an identity claim; a
// user deleted after issuance no longer authenticates.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	subject, err := s.tokens.Parse(tokenString)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.GetByUserName(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

package service

import (
	"context"
	"time"

	"github.com/myflix/myflix-api/internal/auth"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const birthdayLayout = "2006-01-02"

type UserService struct {
	userRepo  repository.UserRepository
	movieRepo repository.MovieRepository
	hasher    *auth.PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, movieRepo repository.MovieRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		userRepo:  userRepo,
		movieRepo: movieRepo,
		hasher:    hasher,
	}
}

type SignupInput struct {
	UserName string `json:"userName" validate:"required,min=5,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateInput struct {
	UserName string `json:"userName" validate:"required,min=5,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

func (s *UserService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserName:       input.UserName,
		Email:          input.Email,
		PasswordHash:   hash,
		Birthday:       parseBirthday(input.Birthday),
		FavoriteMovies: []primitive.ObjectID{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userName string) (*domain.User, error) {
	return s.userRepo.GetByUserName(ctx, userName)
}

// Update replaces the user's profile. An empty password keeps the stored
// hash; a non-empty one is re-hashed.
func (s *UserService) Update(ctx context.Context, userName string, input UpdateInput) (*domain.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	user.UserName = input.UserName
	user.Email = input.Email
	user.Birthday = parseBirthday(input.Birthday)

	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userName string) error {
	return s.userRepo.Delete(ctx, userName)
}

// AddFavorite marks a movie on the user's list. The movie must exist in
// the catalog; adding one already on the list is a no-op.
func (s *UserService) AddFavorite(ctx context.Context, userName, movieID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	if _, err := s.movieRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.userRepo.AddFavorite(ctx, userName, id)
}

func (s *UserService) RemoveFavorite(ctx context.Context, userName, movieID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	return s.userRepo.RemoveFavorite(ctx, userName, id)
}

func parseBirthday(value string) *time.Time {
	if value == "" {
		return nil
	}
	// Format is checked by validation before this point.
	t, err := time.Parse(birthdayLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

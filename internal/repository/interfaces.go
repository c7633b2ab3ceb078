package repository

import (
	"context"

	"github.com/myflix/myflix-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	// Create inserts the user, failing with domain.ErrUserExists if the
	// user name is already taken. Uniqueness is enforced atomically by
	// the store, not by a separate existence check.
	Create(ctx context.Context, user *domain.User) error
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userName string) error
	// AddFavorite appends movieID to the user's favorites unless already
	// present, and returns the updated user.
	AddFavorite(ctx context.Context, userName string, movieID primitive.ObjectID) (*domain.User, error)
	RemoveFavorite(ctx context.Context, userName string, movieID primitive.ObjectID) (*domain.User, error)
}

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetAll(ctx context.Context) ([]*domain.Movie, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	GetByGenreName(ctx context.Context, name string) (*domain.Movie, error)
	GetByDirectorName(ctx context.Context, name string) (*domain.Movie, error)
}

type Repositories struct {
	User  UserRepository
	Movie MovieRepository
}

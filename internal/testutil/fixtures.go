package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	userName string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		userName: fmt.Sprintf("testuser%s", suffix),
		email:    fmt.Sprintf("testuser%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUserName sets the user name
func (b *UserBuilder) WithUserName(name string) *UserBuilder {
	b.userName = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the store and returns it with the raw password
func (b *UserBuilder) Build(t *testing.T, repo repository.UserRepository) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		UserName:     b.userName,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
	}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// MovieBuilder creates test movies with a builder pattern
type MovieBuilder struct {
	movie domain.Movie
}

// NewMovieBuilder creates a new MovieBuilder with default values
func NewMovieBuilder() *MovieBuilder {
	suffix := uuid.New().String()[:8]
	return &MovieBuilder{
		movie: domain.Movie{
			Title:       fmt.Sprintf("Test Movie %s", suffix),
			Description: "A movie inserted by the test fixtures",
			Genre:       domain.Genre{Name: "Drama", Description: "Serious narratives"},
			Director:    domain.Director{Name: "Jane Doe", Biography: "Prolific test director"},
			Actors:      []string{"Actor One", "Actor Two"},
		},
	}
}

// WithTitle sets the title
func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.movie.Title = title
	return b
}

// WithGenre sets the genre
func (b *MovieBuilder) WithGenre(genre domain.Genre) *MovieBuilder {
	b.movie.Genre = genre
	return b
}

// WithDirector sets the director
func (b *MovieBuilder) WithDirector(director domain.Director) *MovieBuilder {
	b.movie.Director = director
	return b
}

// WithFeatured sets the featured flag
func (b *MovieBuilder) WithFeatured(featured bool) *MovieBuilder {
	b.movie.Featured = featured
	return b
}

// Build creates the movie in the store
func (b *MovieBuilder) Build(t *testing.T, repo repository.MovieRepository) *domain.Movie {
	t.Helper()

	movie := b.movie
	if err := repo.Create(context.Background(), &movie); err != nil {
		t.Fatalf("failed to create movie: %v", err)
	}
	return &movie
}

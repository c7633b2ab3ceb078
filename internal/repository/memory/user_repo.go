// Package memory provides in-memory repository implementations with the
// same contracts as the mongodb package. They back the test harness so
// the suite runs without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:  NewUserRepository(),
		Movie: NewMovieRepository(),
	}
}

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by userName
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserName]; exists {
		return domain.ErrUserExists
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []primitive.ObjectID{}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	r.users[user.UserName] = copyUser(user)
	return nil
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userName]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var current *domain.User
	for _, u := range r.users {
		if u.ID == user.ID {
			current = u
			break
		}
	}
	if current == nil {
		return domain.ErrUserNotFound
	}

	if user.UserName != current.UserName {
		if _, taken := r.users[user.UserName]; taken {
			return domain.ErrUserExists
		}
		delete(r.users, current.UserName)
	}

	user.UpdatedAt = time.Now()
	user.FavoriteMovies = current.FavoriteMovies
	r.users[user.UserName] = copyUser(user)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userName]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, userName)
	return nil
}

func (r *UserRepository) AddFavorite(ctx context.Context, userName string, movieID primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userName]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	if !user.HasFavorite(movieID) {
		user.FavoriteMovies = append(user.FavoriteMovies, movieID)
		user.UpdatedAt = time.Now()
	}
	return copyUser(user), nil
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, userName string, movieID primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userName]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	for i, id := range user.FavoriteMovies {
		if id == movieID {
			user.FavoriteMovies = append(user.FavoriteMovies[:i], user.FavoriteMovies[i+1:]...)
			user.UpdatedAt = time.Now()
			break
		}
	}
	return copyUser(user), nil
}

func copyUser(user *domain.User) *domain.User {
	clone := *user
	clone.FavoriteMovies = append([]primitive.ObjectID{}, user.FavoriteMovies...)
	return &clone
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/myflix/myflix-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieRepository struct {
	mu     sync.RWMutex
	movies map[primitive.ObjectID]*domain.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{movies: make(map[primitive.ObjectID]*domain.Movie)}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}
	if movie.Actors == nil {
		movie.Actors = []string{}
	}

	clone := *movie
	r.movies[movie.ID] = &clone
	return nil
}

func (r *MovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		clone := *m
		movies = append(movies, &clone)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })
	return movies, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	clone := *movie
	return &clone, nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.find(func(m *domain.Movie) bool { return m.Title == title }, domain.ErrMovieNotFound)
}

func (r *MovieRepository) GetByGenreName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.find(func(m *domain.Movie) bool { return m.Genre.Name == name }, domain.ErrGenreNotFound)
}

func (r *MovieRepository) GetByDirectorName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.find(func(m *domain.Movie) bool { return m.Director.Name == name }, domain.ErrDirectorNotFound)
}

func (r *MovieRepository) find(match func(*domain.Movie) bool, notFound error) (*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.movies {
		if match(m) {
			clone := *m
			return &clone, nil
		}
	}
	return nil, notFound
}

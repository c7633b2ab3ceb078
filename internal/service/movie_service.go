package service

import (
	"context"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/repository"
)

type MovieService struct {
	movieRepo repository.MovieRepository
}

func NewMovieService(movieRepo repository.MovieRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo}
}

func (s *MovieService) GetAllMovies(ctx context.Context) ([]*domain.Movie, error) {
	return s.movieRepo.GetAll(ctx)
}

func (s *MovieService) GetMovieByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return s.movieRepo.GetByTitle(ctx, title)
}

// GetGenre returns the genre details from any movie carrying it.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	movie, err := s.movieRepo.GetByGenreName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirector returns the director details from any movie they directed.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	movie, err := s.movieRepo.GetByDirectorName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}

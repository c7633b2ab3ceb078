package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/myflix/myflix-api/internal/service"
)

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

func (h *MovieHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieService.GetAllMovies(r.Context())
	if err != nil {
		respondServiceError(w, "movies.GetAll", err)
		return
	}

	respondJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	movie, err := h.movieService.GetMovieByTitle(r.Context(), title)
	if err != nil {
		respondServiceError(w, "movies.GetByTitle", err)
		return
	}

	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "genreName")

	genre, err := h.movieService.GetGenre(r.Context(), name)
	if err != nil {
		respondServiceError(w, "movies.GetGenre", err)
		return
	}

	respondJSON(w, http.StatusOK, genre)
}

func (h *MovieHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "directorName")

	director, err := h.movieService.GetDirector(r.Context(), name)
	if err != nil {
		respondServiceError(w, "movies.GetDirector", err)
		return
	}

	respondJSON(w, http.StatusOK, director)
}

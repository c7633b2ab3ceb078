package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/service"
	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

type validationResponse struct {
	Errors []service.FieldError `json:"errors"`
}

// respondServiceError maps service and store errors to HTTP responses.
// Unexpected errors are logged with their cause and surface as an opaque
// 500 body.
func respondServiceError(w http.ResponseWriter, component string, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		respondJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: vErr.Fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrUserExists):
		respondMessage(w, http.StatusBadRequest, "user name already exists")
	case errors.Is(err, domain.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrMovieNotFound):
		respondMessage(w, http.StatusNotFound, "movie not found")
	case errors.Is(err, domain.ErrGenreNotFound):
		respondMessage(w, http.StatusNotFound, "genre not found")
	case errors.Is(err, domain.ErrDirectorNotFound):
		respondMessage(w, http.StatusNotFound, "director not found")
	case errors.Is(err, domain.ErrInvalidToken):
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
	default:
		logrus.WithError(err).Errorf("[%s] internal error", component)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/myflix/myflix-api/internal/api/middleware"
	"github.com/myflix/myflix-api/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type SignupRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Birthday string `json:"birthday"`
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Signup(r.Context(), service.SignupInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		respondServiceError(w, "users.Signup", err)
		return
	}

	respondJSON(w, http.StatusCreated, user.Public())
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if !requireOwner(w, r, userName) {
		return
	}

	user, err := h.userService.Get(r.Context(), userName)
	if err != nil {
		respondServiceError(w, "users.Get", err)
		return
	}

	respondJSON(w, http.StatusOK, user.Public())
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if !requireOwner(w, r, userName) {
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Update(r.Context(), userName, service.UpdateInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		respondServiceError(w, "users.Update", err)
		return
	}

	respondJSON(w, http.StatusOK, user.Public())
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if !requireOwner(w, r, userName) {
		return
	}

	if err := h.userService.Delete(r.Context(), userName); err != nil {
		respondServiceError(w, "users.Delete", err)
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("user %s was deleted", userName))
}

func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if !requireOwner(w, r, userName) {
		return
	}

	user, err := h.userService.AddFavorite(r.Context(), userName, chi.URLParam(r, "movieID"))
	if err != nil {
		respondServiceError(w, "users.AddFavorite", err)
		return
	}

	respondJSON(w, http.StatusOK, user.Public().FavoriteMovies)
}

func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if !requireOwner(w, r, userName) {
		return
	}

	user, err := h.userService.RemoveFavorite(r.Context(), userName, chi.URLParam(r, "movieID"))
	if err != nil {
		respondServiceError(w, "users.RemoveFavorite", err)
		return
	}

	respondJSON(w, http.StatusOK, user.Public().FavoriteMovies)
}

// requireOwner rejects requests whose token subject is not the user
// named in the path. The token proves identity, not authority over
// other accounts.
func requireOwner(w http.ResponseWriter, r *http.Request, userName string) bool {
	current, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return false
	}
	if current.UserName != userName {
		respondMessage(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

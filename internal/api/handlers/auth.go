package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/service"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *domain.PublicUser `json:"user"`
	Token string             `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		loginRejected(w)
		return
	}

	if req.UserName == "" || req.Password == "" {
		loginRejected(w)
		return
	}

	result, err := h.authService.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			loginRejected(w)
			return
		}
		logrus.WithError(err).Error("[auth.Login] internal error")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		User:  result.User.Public(),
		Token: result.Token,
	})
}

// loginRejected writes the single generic login failure. Every failure
// cause gets the same status and body.
func loginRejected(w http.ResponseWriter) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "Something is not right",
		"user":    nil,
	})
}

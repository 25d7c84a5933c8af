package auth

import (
	"encoding/json"
	"net/http"

	"github.com/ayush/pet-qa-forum/internal/apperr"
	"github.com/ayush/pet-qa-forum/internal/httpx"
	"github.com/ayush/pet-qa-forum/internal/models"
)

// Handler holds auth-related HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register creates a new user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperr.Validation("", "Invalid request body"))
		return
	}

	user, err := h.svc.Register(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"message":  "User registered",
		"username": user.Username,
	})
}

// Login authenticates a user and returns a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperr.Validation("", "Invalid request body"))
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: user.Username,
	})
}

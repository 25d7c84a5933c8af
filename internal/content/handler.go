package content

import (
	"encoding/json"
	"net/http"

	"github.com/ayush/pet-qa-forum/internal/apperr"
	"github.com/ayush/pet-qa-forum/internal/httpx"
	"github.com/ayush/pet-qa-forum/internal/middleware"
	"github.com/ayush/pet-qa-forum/internal/models"
)

// Handler holds the content HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) SeedCategories(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.SeedCategories(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, msg)
}

func (h *Handler) SeedDemoData(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.SeedDemoData(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, msg)
}

func (h *Handler) WipeDemoData(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.WipeDemoData(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, msg)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cats)
}

func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	qs, err := h.svc.ListQuestions(r.Context(), r.URL.Query().Get("categoryId"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, qs)
}

func (h *Handler) Answers(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListAnswers(r.Context(), r.URL.Query().Get("questionId"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, as)
}

// CreateQuestion requires a verified identity in the request context.
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httpx.WriteError(w, apperr.Auth("Missing bearer token"))
		return
	}

	var req models.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperr.Validation("", "Invalid request body"))
		return
	}

	q, err := h.svc.CreateQuestion(r.Context(), identity.UserID, req)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	q.Author = identity.Username
	httpx.WriteJSON(w, http.StatusCreated, q)
}

// CreateAnswer requires a verified identity in the request context.
func (h *Handler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httpx.WriteError(w, apperr.Auth("Missing bearer token"))
		return
	}

	var req models.CreateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperr.Validation("", "Invalid request body"))
		return
	}

	a, err := h.svc.CreateAnswer(r.Context(), identity.UserID, req)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	a.Author = identity.Username
	httpx.WriteJSON(w, http.StatusCreated, a)
}

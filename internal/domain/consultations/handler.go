package consultations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vitashifa/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/consultations", func(cr chi.Router) {
		cr.Post("/chat", chatHandler(svc))
		cr.Get("/recent", recentHandler(svc))
		cr.Get("/{consultationID}", getConsultationHandler(svc))
	})
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
	Language       string `json:"language,omitempty"`
}

type chatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}

type messageResponse struct {
	Sender  string    `json:"sender"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

type consultationResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Language  string            `json:"language"`
	Messages  []messageResponse `json:"messages,omitempty"`
	StartedAt time.Time         `json:"started_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func chatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Chat(r.Context(), claims.UserID, req.ConversationID, req.Message, req.Language)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "conversation not found", http.StatusNotFound)
			case errors.Is(err, ErrNotConfigured):
				http.Error(w, "chat model not configured", http.StatusServiceUnavailable)
			default:
				http.Error(w, "failed to get a response from the assistant", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, chatResponse{
			Reply:          res.Reply,
			ConversationID: res.ConsultationID,
		})
	}
}

func recentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListRecent(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]consultationResponse, 0, len(items))
		for _, c := range items {
			// Summaries only; the transcript is fetched per id.
			out = append(out, toConsultationResponse(c, false))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "consultationID"))
		if err != nil {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toConsultationResponse(c, true))
	}
}

func toConsultationResponse(c Consultation, withMessages bool) consultationResponse {
	resp := consultationResponse{
		ID:        c.ID,
		Title:     c.Title,
		Language:  c.Language,
		StartedAt: c.StartedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if withMessages {
		resp.Messages = make([]messageResponse, 0, len(c.Messages))
		for _, m := range c.Messages {
			resp.Messages = append(resp.Messages, messageResponse{
				Sender:  string(m.Sender),
				Content: m.Content,
				SentAt:  m.SentAt,
			})
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package wellness

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
	r.Route("/wellness-plans", func(wr chi.Router) {
		wr.Post("/generate", generatePlanHandler(svc))
		wr.Post("/", savePlanHandler(svc))
		wr.Get("/", listPlansHandler(svc))
	})
}

type generateRequest struct {
	FormData Questionnaire `json:"formData"`
	Language string        `json:"language,omitempty"`
}

type savePlanRequest struct {
	Questionnaire Questionnaire `json:"questionnaire"`
	Plan          Plan          `json:"plan"`
}

type savedPlanResponse struct {
	ID            string        `json:"id"`
	Questionnaire Questionnaire `json:"questionnaire"`
	Plan          Plan          `json:"plan"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func generatePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		plan, err := svc.Generate(r.Context(), req.FormData, req.Language)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "questionnaire is empty", http.StatusBadRequest)
			case errors.Is(err, ErrNotConfigured):
				http.Error(w, "chat model not configured", http.StatusServiceUnavailable)
			default:
				http.Error(w, "failed to generate plan", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}

func savePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req savePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		saved, err := svc.Save(r.Context(), claims.UserID, req.Questionnaire, req.Plan)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toSavedPlanResponse(saved))
	}
}

func listPlansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]savedPlanResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toSavedPlanResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toSavedPlanResponse(p SavedPlan) savedPlanResponse {
	return savedPlanResponse{
		ID:            p.ID,
		Questionnaire: p.Questionnaire,
		Plan:          p.Plan,
		CreatedAt:     p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package diagnosis

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vitashifa/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/diagnosis", func(dr chi.Router) {
		dr.Post("/", analyzeHandler(svc))
		dr.Get("/recent", recentHandler(svc))
	})
}

type analyzeRequest struct {
	Image    string `json:"image"` // base64-encoded
	MIMEType string `json:"mime_type"`
	Question string `json:"question,omitempty"`
	Language string `json:"language,omitempty"`
}

type resultResponse struct {
	Confidence      int      `json:"confidence"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Urgency         string   `json:"urgency"`
	Disclaimer      string   `json:"disclaimer"`
}

type analysisResponse struct {
	ID        string         `json:"id"`
	Question  string         `json:"question,omitempty"`
	Result    resultResponse `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Cap the body before decoding; the image itself is capped again
		// after base64 decode.
		r.Body = http.MaxBytesReader(w, r.Body, (maxImageSize*4)/3+4096)

		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			http.Error(w, "image must be base64-encoded", http.StatusBadRequest)
			return
		}

		a, err := svc.Analyze(r.Context(), claims.UserID, AnalyzeInput{
			MIMEType: strings.TrimSpace(req.MIMEType),
			Image:    image,
			Question: req.Question,
			Language: req.Language,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid image", http.StatusBadRequest)
			case errors.Is(err, ErrNotConfigured):
				http.Error(w, "vision model not configured", http.StatusServiceUnavailable)
			default:
				http.Error(w, "failed to analyze image", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnalysisResponse(a))
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

		out := make([]analysisResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnalysisResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toAnalysisResponse(a Analysis) analysisResponse {
	return analysisResponse{
		ID:       a.ID,
		Question: a.Question,
		Result: resultResponse{
			Confidence:      a.Result.Confidence,
			Findings:        a.Result.Findings,
			Recommendations: a.Result.Recommendations,
			Urgency:         string(a.Result.Urgency),
			Disclaimer:      a.Result.Disclaimer,
		},
		CreatedAt: a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vitashifa/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "2006-01-02T15:04:05"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Post("/", createReminderHandler(svc))
		rr.Get("/", listRemindersHandler(svc))
		rr.Get("/upcoming", upcomingHandler(svc))

		rr.Get("/{reminderID}", getReminderHandler(svc))
		rr.Put("/{reminderID}", updateReminderHandler(svc))
		rr.Delete("/{reminderID}", deleteReminderHandler(svc))

		rr.Post("/{reminderID}/doses", recordDoseHandler(svc))
		rr.Get("/{reminderID}/adherence", adherenceHandler(svc))
	})
}

type reminderRequest struct {
	Name      string   `json:"name"`
	Dose      string   `json:"dose"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	StartDate string   `json:"start_date"`         // YYYY-MM-DD
	EndDate   string   `json:"end_date,omitempty"` // YYYY-MM-DD, optional
	Notes     string   `json:"notes"`
}

type adherenceLogResponse struct {
	At     string `json:"at"` // YYYY-MM-DDTHH:MM:SS
	Status string `json:"status"`
}

type reminderResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	Name      string                 `json:"name"`
	Dose      string                 `json:"dose"`
	Frequency string                 `json:"frequency"`
	Times     []string               `json:"times"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date,omitempty"`
	Notes     string                 `json:"notes"`
	Adherence []adherenceLogResponse `json:"adherence"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type recordDoseRequest struct {
	Date   string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Time   string `json:"time"`           // HH:MM, one of the reminder's times
	Status string `json:"status"`         // taken | skipped
}

type upcomingDoseResponse struct {
	ReminderID string    `json:"reminder_id"`
	Name       string    `json:"name"`
	Dose       string    `json:"dose"`
	Time       string    `json:"time"`
	At         time.Time `json:"at"`
	Overdue    bool      `json:"overdue"`
}

type chartDayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type adherenceReportResponse struct {
	Percent int                `json:"percent"`
	Week    []chartDayResponse `json:"week"`
}

func createReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req reminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toReminderResponse(created))
	}
}

func listRemindersHandler(svc *Service) http.HandlerFunc {
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

		out := make([]reminderResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toReminderResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rem, err := svc.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "reminderID"))
		if err != nil {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(rem))
	}
}

func updateReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req reminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "reminderID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "reminder not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(updated))
	}
}

func deleteReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "reminderID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func recordDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req recordDoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var day time.Time // zero means today (service clock)
		if strings.TrimSpace(req.Date) != "" {
			parsed, err := time.Parse(dateLayout, req.Date)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = parsed
		}

		updated, err := svc.RecordDose(r.Context(), claims.UserID, chi.URLParam(r, "reminderID"),
			day, strings.TrimSpace(req.Time), DoseStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "reminder not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(updated))
	}
}

func upcomingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		doses, err := svc.Upcoming(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]upcomingDoseResponse, 0, len(doses))
		for _, d := range doses {
			out = append(out, upcomingDoseResponse{
				ReminderID: d.ReminderID,
				Name:       d.Name,
				Dose:       d.Dose,
				Time:       d.Time,
				At:         d.At,
				Overdue:    d.Overdue,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func adherenceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		report, err := svc.Adherence(r.Context(), claims.UserID, chi.URLParam(r, "reminderID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		week := make([]chartDayResponse, 0, len(report.Week))
		for _, d := range report.Week {
			week = append(week, chartDayResponse{
				Date:   d.Date.Format(dateLayout),
				Status: string(d.Status),
			})
		}
		writeJSON(w, http.StatusOK, adherenceReportResponse{
			Percent: report.Percent,
			Week:    week,
		})
	}
}

func toCreateInput(req reminderRequest) (CreateInput, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return CreateInput{}, errors.New("start_date must be YYYY-MM-DD")
	}

	var end *time.Time
	if strings.TrimSpace(req.EndDate) != "" {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(req.EndDate))
		if err != nil {
			return CreateInput{}, errors.New("end_date must be YYYY-MM-DD")
		}
		end = &parsed
	}

	return CreateInput{
		Name:      req.Name,
		Dose:      req.Dose,
		Frequency: Frequency(req.Frequency),
		Times:     req.Times,
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
	}, nil
}

func toReminderResponse(r MedicationReminder) reminderResponse {
	logs := make([]adherenceLogResponse, 0, len(r.Adherence))
	for _, l := range r.Adherence {
		logs = append(logs, adherenceLogResponse{
			At:     l.At.Format(slotLayout),
			Status: string(l.Status),
		})
	}

	resp := reminderResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Dose:      r.Dose,
		Frequency: string(r.Frequency),
		Times:     r.Times,
		StartDate: r.StartDate.Format(dateLayout),
		Notes:     r.Notes,
		Adherence: logs,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.EndDate != nil {
		resp.EndDate = r.EndDate.Format(dateLayout)
	}
	return resp
}

// writeJSON is duplicated per handler package on purpose; see the other
// domain handlers before extracting a shared helper.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

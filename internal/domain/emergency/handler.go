package emergency

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Emergency lookup is intentionally unauthenticated: it must work for
// someone who can't sign in.
func RegisterRoutes(r chi.Router) {
	r.Get("/emergency-contacts", listContactsHandler())
	r.Get("/emergency-contacts/countries", listCountriesHandler())
}

type contactResponse struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

type contactsResponse struct {
	Country  string            `json:"country,omitempty"`
	Fallback bool              `json:"fallback"`
	Contacts []contactResponse `json:"contacts"`
}

func listContactsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := r.URL.Query().Get("country")

		contacts, known := Lookup(country)
		out := contactsResponse{
			Fallback: !known,
			Contacts: make([]contactResponse, 0, len(contacts)),
		}
		if known {
			out.Country = strings.ToUpper(strings.TrimSpace(country))
		}
		for _, c := range contacts {
			out.Contacts = append(out.Contacts, contactResponse{
				Name:        c.Name,
				Number:      c.Number,
				Description: c.Description,
				Kind:        string(c.Kind),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listCountriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"countries": Countries()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

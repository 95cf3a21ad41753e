package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"vitashifa/internal/adapters/storage/cached"
	mem "vitashifa/internal/adapters/storage/memory"
	pg "vitashifa/internal/adapters/storage/postgres"
	"vitashifa/internal/domain/consultations"
	"vitashifa/internal/domain/diagnosis"
	"vitashifa/internal/domain/emergency"
	"vitashifa/internal/domain/reminders"
	"vitashifa/internal/domain/settings"
	"vitashifa/internal/domain/wellness"
	"vitashifa/internal/middleware"
	"vitashifa/internal/ports/ai"
	"vitashifa/internal/ports/auth"
	"vitashifa/internal/ports/cache"
)

type Options struct {
	AuthVerifier auth.Verifier // nil enables the X-Debug-User-ID dev mode

	// DB selects Postgres repositories. Nil falls back to in-memory.
	DB *sql.DB

	// Cache wraps the reminders repository with a read-through layer.
	// Nil disables caching.
	Cache cache.Cache

	// Chat and Vision may be nil; the affected endpoints then answer 503.
	Chat   ai.ChatModel
	Vision ai.VisionModel
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		remindersRepo     reminders.Repository
		consultationsRepo consultations.Repository
		diagnosisRepo     diagnosis.Repository
		wellnessRepo      wellness.Repository
		settingsRepo      settings.Repository
	)

	if opts.DB != nil {
		remindersRepo = pg.NewRemindersRepo(opts.DB)
		consultationsRepo = pg.NewConsultationsRepo(opts.DB)
		diagnosisRepo = pg.NewDiagnosisRepo(opts.DB)
		wellnessRepo = pg.NewWellnessRepo(opts.DB)
		settingsRepo = pg.NewSettingsRepo(opts.DB)
	} else {
		remindersRepo = mem.NewRemindersRepo()
		consultationsRepo = mem.NewConsultationsRepo()
		diagnosisRepo = mem.NewDiagnosisRepo()
		wellnessRepo = mem.NewWellnessRepo()
		settingsRepo = mem.NewSettingsRepo()
	}

	if opts.Cache != nil {
		remindersRepo = cached.NewRemindersRepo(remindersRepo, opts.Cache)
	}

	remindersSvc := reminders.NewService(remindersRepo)
	consultationsSvc := consultations.NewService(consultationsRepo, opts.Chat)
	diagnosisSvc := diagnosis.NewService(diagnosisRepo, opts.Vision)
	wellnessSvc := wellness.NewService(wellnessRepo, opts.Chat)
	settingsSvc := settings.NewService(settingsRepo)

	reminders.RegisterRoutes(r, remindersSvc)
	consultations.RegisterRoutes(r, consultationsSvc)
	diagnosis.RegisterRoutes(r, diagnosisSvc)
	wellness.RegisterRoutes(r, wellnessSvc)
	settings.RegisterRoutes(r, settingsSvc)
	emergency.RegisterRoutes(r)

	return r
}

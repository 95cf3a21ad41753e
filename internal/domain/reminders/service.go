package reminders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("reminder not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Dose      string
	Frequency Frequency
	Times     []string
	StartDate time.Time
	EndDate   *time.Time
	Notes     string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (MedicationReminder, error) {
	if strings.TrimSpace(userID) == "" {
		return MedicationReminder{}, ErrInvalidInput
	}
	times, err := validateSchedule(in.Name, in.Dose, in.Frequency, in.Times, in.StartDate, in.EndDate)
	if err != nil {
		return MedicationReminder{}, err
	}

	now := s.now()
	r := MedicationReminder{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		Dose:      strings.TrimSpace(in.Dose),
		Frequency: in.Frequency,
		Times:     times,
		StartDate: dateOnly(in.StartDate),
		EndDate:   normalizeEnd(in.EndDate),
		Notes:     strings.TrimSpace(in.Notes),
		Adherence: []AdherenceLog{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return MedicationReminder{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id string) (MedicationReminder, error) {
	r, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return MedicationReminder{}, ErrNotFound
	}
	// Foreign reminders are indistinguishable from missing ones.
	if r.UserID != userID {
		return MedicationReminder{}, ErrNotFound
	}
	return r, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]MedicationReminder, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update is a full-field edit; the adherence history and creation time
// are preserved.
func (s *Service) Update(ctx context.Context, userID, id string, in CreateInput) (MedicationReminder, error) {
	current, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return MedicationReminder{}, err
	}

	times, err := validateSchedule(in.Name, in.Dose, in.Frequency, in.Times, in.StartDate, in.EndDate)
	if err != nil {
		return MedicationReminder{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Dose = strings.TrimSpace(in.Dose)
	current.Frequency = in.Frequency
	current.Times = times
	current.StartDate = dateOnly(in.StartDate)
	current.EndDate = normalizeEnd(in.EndDate)
	current.Notes = strings.TrimSpace(in.Notes)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return MedicationReminder{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// RecordDose logs the outcome of one scheduled slot. Recording a slot
// that already has a log replaces the previous entry.
func (s *Service) RecordDose(ctx context.Context, userID, id string, day time.Time, timeOfDay string, status DoseStatus) (MedicationReminder, error) {
	if status != DoseTaken && status != DoseSkipped {
		return MedicationReminder{}, ErrInvalidInput
	}

	if day.IsZero() {
		day = s.now()
	}

	r, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return MedicationReminder{}, err
	}

	scheduled := false
	for _, t := range r.Times {
		if t == timeOfDay {
			scheduled = true
			break
		}
	}
	if !scheduled {
		return MedicationReminder{}, ErrInvalidInput
	}

	at, ok := combine(day, timeOfDay)
	if !ok {
		return MedicationReminder{}, ErrInvalidInput
	}

	// Filter-then-append: drop any prior log for this slot.
	kept := make([]AdherenceLog, 0, len(r.Adherence)+1)
	for _, l := range r.Adherence {
		if sameDate(l.At, day) && l.At.Format("15:04") == timeOfDay {
			continue
		}
		kept = append(kept, l)
	}
	kept = append(kept, AdherenceLog{At: at, Status: status})

	r.Adherence = kept
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		return MedicationReminder{}, err
	}
	return r, nil
}

// Upcoming resolves today's unhandled doses for the user.
func (s *Service) Upcoming(ctx context.Context, userID string) ([]UpcomingDose, error) {
	rs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return UpcomingDoses(rs, s.now()), nil
}

// AdherenceReport is the trailing-week summary for one reminder.
type AdherenceReport struct {
	Percent int
	Week    []ChartDay
}

func (s *Service) Adherence(ctx context.Context, userID, id string) (AdherenceReport, error) {
	r, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return AdherenceReport{}, err
	}
	now := s.now()
	return AdherenceReport{
		Percent: AdherencePercent(r, now),
		Week:    WeeklyChart(r, now),
	}, nil
}

func validateSchedule(name, dose string, freq Frequency, times []string, start time.Time, end *time.Time) ([]string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(dose) == "" {
		return nil, ErrInvalidInput
	}
	if !ValidFrequency(freq) {
		return nil, ErrInvalidInput
	}
	if len(times) == 0 {
		return nil, ErrInvalidInput
	}
	if start.IsZero() {
		return nil, ErrInvalidInput
	}
	if end != nil && dateOnly(*end).Before(dateOnly(start)) {
		return nil, ErrInvalidInput
	}

	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if _, err := time.Parse("15:04", t); err != nil {
			return nil, ErrInvalidInput
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

func normalizeEnd(end *time.Time) *time.Time {
	if end == nil {
		return nil
	}
	d := dateOnly(*end)
	return &d
}

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vitashifa/internal/domain/reminders"
)

type remindersRepo struct {
	mu   sync.RWMutex
	byID map[string]reminders.MedicationReminder
}

func NewRemindersRepo() reminders.Repository {
	return &remindersRepo{
		byID: make(map[string]reminders.MedicationReminder),
	}
}

func (r *remindersRepo) Create(ctx context.Context, rem reminders.MedicationReminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rem.ID == "" {
		return errors.New("reminder id required")
	}
	if _, exists := r.byID[rem.ID]; exists {
		return errors.New("reminder already exists")
	}

	r.byID[rem.ID] = rem
	return nil
}

func (r *remindersRepo) GetByID(ctx context.Context, id string) (reminders.MedicationReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rem, ok := r.byID[id]
	if !ok {
		return reminders.MedicationReminder{}, ErrNotFound
	}
	return rem, nil
}

func (r *remindersRepo) ListByUser(ctx context.Context, userID string) ([]reminders.MedicationReminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reminders.MedicationReminder, 0)
	for _, rem := range r.byID {
		if rem.UserID == userID {
			out = append(out, rem)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *remindersRepo) Update(ctx context.Context, rem reminders.MedicationReminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rem.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rem.ID] = rem
	return nil
}

func (r *remindersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

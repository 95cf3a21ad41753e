package cached

import (
	"context"
	"encoding/json"

	"vitashifa/internal/domain/reminders"
	"vitashifa/internal/ports/cache"
)

// RemindersRepo is a read-through decorator over a reminders repository.
// The upcoming-doses and adherence views list all of a user's reminders
// on every call, so the cache keys per user, not per reminder. Any write
// drops the owner's entry.
type RemindersRepo struct {
	inner reminders.Repository
	cache cache.Cache
}

func NewRemindersRepo(inner reminders.Repository, c cache.Cache) *RemindersRepo {
	return &RemindersRepo{inner: inner, cache: c}
}

func userKey(userID string) string {
	return "reminders:" + userID
}

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.MedicationReminder) error {
	if err := r.inner.Create(ctx, rem); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, userKey(rem.UserID))
	return nil
}

func (r *RemindersRepo) GetByID(ctx context.Context, id string) (reminders.MedicationReminder, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *RemindersRepo) ListByUser(ctx context.Context, userID string) ([]reminders.MedicationReminder, error) {
	key := userKey(userID)

	if raw, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		var rs []reminders.MedicationReminder
		if err := json.Unmarshal(raw, &rs); err == nil {
			return rs, nil
		}
		// Unreadable entry, fall through to the source.
		_ = r.cache.Delete(ctx, key)
	}

	rs, err := r.inner.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rs); err == nil {
		_ = r.cache.Set(ctx, key, raw)
	}
	return rs, nil
}

func (r *RemindersRepo) Update(ctx context.Context, rem reminders.MedicationReminder) error {
	if err := r.inner.Update(ctx, rem); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, userKey(rem.UserID))
	return nil
}

func (r *RemindersRepo) Delete(ctx context.Context, id string) error {
	rem, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, userKey(rem.UserID))
	return nil
}

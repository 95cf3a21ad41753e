package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vitashifa/internal/domain/wellness"
)

type wellnessRepo struct {
	mu   sync.RWMutex
	byID map[string]wellness.SavedPlan
}

func NewWellnessRepo() wellness.Repository {
	return &wellnessRepo{
		byID: make(map[string]wellness.SavedPlan),
	}
}

func (r *wellnessRepo) Create(ctx context.Context, p wellness.SavedPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("plan id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("plan already exists")
	}

	r.byID[p.ID] = p
	return nil
}

func (r *wellnessRepo) ListByUser(ctx context.Context, userID string) ([]wellness.SavedPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]wellness.SavedPlan, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vitashifa/internal/domain/diagnosis"
)

type diagnosisRepo struct {
	mu   sync.RWMutex
	byID map[string]diagnosis.Analysis
}

func NewDiagnosisRepo() diagnosis.Repository {
	return &diagnosisRepo{
		byID: make(map[string]diagnosis.Analysis),
	}
}

func (r *diagnosisRepo) Create(ctx context.Context, a diagnosis.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("analysis id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("analysis already exists")
	}

	r.byID[a.ID] = a
	return nil
}

func (r *diagnosisRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]diagnosis.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	out := make([]diagnosis.Analysis, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vitashifa/internal/domain/consultations"
)

type consultationsRepo struct {
	mu   sync.RWMutex
	byID map[string]consultations.Consultation
}

func NewConsultationsRepo() consultations.Repository {
	return &consultationsRepo{
		byID: make(map[string]consultations.Consultation),
	}
}

func (r *consultationsRepo) Create(ctx context.Context, c consultations.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("consultation id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("consultation already exists")
	}

	r.byID[c.ID] = c
	return nil
}

func (r *consultationsRepo) GetByID(ctx context.Context, id string) (consultations.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return consultations.Consultation{}, ErrNotFound
	}
	return c, nil
}

func (r *consultationsRepo) Update(ctx context.Context, c consultations.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *consultationsRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]consultations.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 5
	}

	out := make([]consultations.Consultation, 0)
	for _, c := range r.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

package memory

import (
	"context"
	"sync"

	"vitashifa/internal/domain/settings"
)

type settingsRepo struct {
	mu     sync.RWMutex
	byUser map[string]settings.Settings
}

func NewSettingsRepo() settings.Repository {
	return &settingsRepo{
		byUser: make(map[string]settings.Settings),
	}
}

func (r *settingsRepo) Get(ctx context.Context, userID string) (settings.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byUser[userID]
	return s, ok, nil
}

func (r *settingsRepo) Put(ctx context.Context, userID string, s settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[userID] = s
	return nil
}

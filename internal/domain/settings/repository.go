package settings

import "context"

type Repository interface {
	// Get returns the stored document; ok=false when none exists.
	Get(ctx context.Context, userID string) (Settings, bool, error)
	Put(ctx context.Context, userID string, s Settings) error
}

package diagnosis

import "context"

type Repository interface {
	Create(ctx context.Context, a Analysis) error
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Analysis, error)
}

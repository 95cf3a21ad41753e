package wellness

import "context"

type Repository interface {
	Create(ctx context.Context, p SavedPlan) error
	ListByUser(ctx context.Context, userID string) ([]SavedPlan, error)
}

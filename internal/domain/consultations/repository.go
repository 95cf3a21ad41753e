package consultations

import "context"

type Repository interface {
	Create(ctx context.Context, c Consultation) error
	GetByID(ctx context.Context, id string) (Consultation, error)
	Update(ctx context.Context, c Consultation) error

	// ListRecentByUser returns up to limit consultations, most recently
	// updated first.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Consultation, error)
}

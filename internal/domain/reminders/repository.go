package reminders

import "context"

type Repository interface {
	Create(ctx context.Context, r MedicationReminder) error
	GetByID(ctx context.Context, id string) (MedicationReminder, error)
	ListByUser(ctx context.Context, userID string) ([]MedicationReminder, error)
	Update(ctx context.Context, r MedicationReminder) error
	Delete(ctx context.Context, id string) error
}

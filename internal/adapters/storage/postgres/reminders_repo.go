package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"vitashifa/internal/domain/reminders"
)

type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.MedicationReminder) error {
	times, err := json.Marshal(rem.Times)
	if err != nil {
		return err
	}
	adherence, err := json.Marshal(rem.Adherence)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO medication_reminders (
			id, user_id,
			name, dose, frequency, times,
			start_date, end_date, notes, adherence,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		rem.ID,
		rem.UserID,
		rem.Name,
		rem.Dose,
		string(rem.Frequency),
		times,
		rem.StartDate,
		toNullDate(rem.EndDate),
		rem.Notes,
		adherence,
		rem.CreatedAt,
		rem.UpdatedAt,
	)
	return err
}

func (r *RemindersRepo) Update(ctx context.Context, rem reminders.MedicationReminder) error {
	times, err := json.Marshal(rem.Times)
	if err != nil {
		return err
	}
	adherence, err := json.Marshal(rem.Adherence)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE medication_reminders
		SET
			name = $2,
			dose = $3,
			frequency = $4,
			times = $5,
			start_date = $6,
			end_date = $7,
			notes = $8,
			adherence = $9,
			updated_at = $10
		WHERE id = $1
	`,
		rem.ID,
		rem.Name,
		rem.Dose,
		string(rem.Frequency),
		times,
		rem.StartDate,
		toNullDate(rem.EndDate),
		rem.Notes,
		adherence,
		rem.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) GetByID(ctx context.Context, id string) (reminders.MedicationReminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reminders.MedicationReminder{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id,
			name, dose, frequency, times,
			start_date, end_date, notes, adherence,
			created_at, updated_at
		FROM medication_reminders
		WHERE id = $1
	`, id)

	rem, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return reminders.MedicationReminder{}, ErrNotFound
	}
	return rem, err
}

func (r *RemindersRepo) ListByUser(ctx context.Context, userID string) ([]reminders.MedicationReminder, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id,
			name, dose, frequency, times,
			start_date, end_date, notes, adherence,
			created_at, updated_at
		FROM medication_reminders
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.MedicationReminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}

	return out, rows.Err()
}

func (r *RemindersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM medication_reminders WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (reminders.MedicationReminder, error) {
	var rem reminders.MedicationReminder
	var freq string
	var times, adherence []byte
	var end sql.NullTime

	if err := row.Scan(
		&rem.ID,
		&rem.UserID,
		&rem.Name,
		&rem.Dose,
		&freq,
		&times,
		&rem.StartDate,
		&end,
		&rem.Notes,
		&adherence,
		&rem.CreatedAt,
		&rem.UpdatedAt,
	); err != nil {
		return reminders.MedicationReminder{}, err
	}

	rem.Frequency = reminders.Frequency(freq)
	if err := json.Unmarshal(times, &rem.Times); err != nil {
		return reminders.MedicationReminder{}, err
	}
	if err := json.Unmarshal(adherence, &rem.Adherence); err != nil {
		return reminders.MedicationReminder{}, err
	}
	if end.Valid {
		t := end.Time
		rem.EndDate = &t
	}

	return rem, nil
}

// end_date is DATE, passed as NullTime to keep the mapping simple.
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

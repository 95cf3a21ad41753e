package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"vitashifa/internal/domain/consultations"
)

type ConsultationsRepo struct {
	db *sql.DB
}

func NewConsultationsRepo(db *sql.DB) *ConsultationsRepo {
	return &ConsultationsRepo{db: db}
}

func (r *ConsultationsRepo) Create(ctx context.Context, c consultations.Consultation) error {
	messages, err := json.Marshal(c.Messages)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO consultations (
			id, user_id, title, language, messages,
			started_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.UserID,
		c.Title,
		c.Language,
		messages,
		c.StartedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *ConsultationsRepo) Update(ctx context.Context, c consultations.Consultation) error {
	messages, err := json.Marshal(c.Messages)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE consultations
		SET
			title = $2,
			language = $3,
			messages = $4,
			updated_at = $5
		WHERE id = $1
	`,
		c.ID,
		c.Title,
		c.Language,
		messages,
		c.UpdatedAt,
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

func (r *ConsultationsRepo) GetByID(ctx context.Context, id string) (consultations.Consultation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return consultations.Consultation{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, language, messages, started_at, updated_at
		FROM consultations
		WHERE id = $1
	`, id)

	c, err := scanConsultation(row)
	if err == sql.ErrNoRows {
		return consultations.Consultation{}, ErrNotFound
	}
	return c, err
}

func (r *ConsultationsRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]consultations.Consultation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, language, messages, started_at, updated_at
		FROM consultations
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consultations.Consultation, 0)
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func scanConsultation(row rowScanner) (consultations.Consultation, error) {
	var c consultations.Consultation
	var messages []byte

	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Language,
		&messages,
		&c.StartedAt,
		&c.UpdatedAt,
	); err != nil {
		return consultations.Consultation{}, err
	}

	if err := json.Unmarshal(messages, &c.Messages); err != nil {
		return consultations.Consultation{}, err
	}

	return c, nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"vitashifa/internal/domain/diagnosis"
)

type DiagnosisRepo struct {
	db *sql.DB
}

func NewDiagnosisRepo(db *sql.DB) *DiagnosisRepo {
	return &DiagnosisRepo{db: db}
}

func (r *DiagnosisRepo) Create(ctx context.Context, a diagnosis.Analysis) error {
	result, err := json.Marshal(a.Result)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO diagnosis_analyses (
			id, user_id, question, result, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		a.ID,
		a.UserID,
		a.Question,
		result,
		a.CreatedAt,
	)
	return err
}

func (r *DiagnosisRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]diagnosis.Analysis, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, question, result, created_at
		FROM diagnosis_analyses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]diagnosis.Analysis, 0)
	for rows.Next() {
		var a diagnosis.Analysis
		var result []byte
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Question,
			&result,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(result, &a.Result); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

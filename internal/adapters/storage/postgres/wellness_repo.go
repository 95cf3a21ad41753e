package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"vitashifa/internal/domain/wellness"
)

type WellnessRepo struct {
	db *sql.DB
}

func NewWellnessRepo(db *sql.DB) *WellnessRepo {
	return &WellnessRepo{db: db}
}

func (r *WellnessRepo) Create(ctx context.Context, p wellness.SavedPlan) error {
	questionnaire, err := json.Marshal(p.Questionnaire)
	if err != nil {
		return err
	}
	plan, err := json.Marshal(p.Plan)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO wellness_plans (
			id, user_id, questionnaire, plan, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		p.ID,
		p.UserID,
		questionnaire,
		plan,
		p.CreatedAt,
	)
	return err
}

func (r *WellnessRepo) ListByUser(ctx context.Context, userID string) ([]wellness.SavedPlan, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, questionnaire, plan, created_at
		FROM wellness_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]wellness.SavedPlan, 0)
	for rows.Next() {
		var p wellness.SavedPlan
		var questionnaire, plan []byte
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&questionnaire,
			&plan,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questionnaire, &p.Questionnaire); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(plan, &p.Plan); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

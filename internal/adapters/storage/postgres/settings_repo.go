package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"vitashifa/internal/domain/settings"
)

// SettingsRepo stores the whole settings document as one JSONB row per user.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, userID string) (settings.Settings, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return settings.Settings{}, false, nil
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT document
		FROM user_settings
		WHERE user_id = $1
	`, userID)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return settings.Settings{}, false, nil
		}
		return settings.Settings{}, false, err
	}

	var s settings.Settings
	if err := json.Unmarshal(doc, &s); err != nil {
		return settings.Settings{}, false, err
	}
	return s, true, nil
}

func (r *SettingsRepo) Put(ctx context.Context, userID string, s settings.Settings) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_settings (user_id, document)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document
	`, userID, doc)
	return err
}

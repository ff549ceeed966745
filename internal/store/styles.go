package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kindred-wellness/prism/internal/analysis"
)

// UpsertStyle overwrites the user's cached last-known style. Last write wins;
// no ordering guarantee beyond "most recent completed analysis".
func (s *Store) UpsertStyle(ctx context.Context, userID uuid.UUID, profile analysis.StyleProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal style profile: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO user_styles (user_id, profile, sample_size, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE
		SET profile = EXCLUDED.profile,
		    sample_size = EXCLUDED.sample_size,
		    updated_at = now()`,
		userID, payload, profile.SampleSize,
	)
	if err != nil {
		return fmt.Errorf("upsert user_style: %w", err)
	}
	return nil
}

// GetStyle returns the cached style for a user, with found=false when no
// analysis has completed yet.
func (s *Store) GetStyle(ctx context.Context, userID uuid.UUID) (analysis.StyleProfile, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile FROM user_styles WHERE user_id = $1`, userID,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return analysis.StyleProfile{}, false, nil
	}
	if err != nil {
		return analysis.StyleProfile{}, false, fmt.Errorf("select user_style: %w", err)
	}

	var profile analysis.StyleProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return analysis.StyleProfile{}, false, fmt.Errorf("unmarshal style profile: %w", err)
	}
	return profile, true, nil
}

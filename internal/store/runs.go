package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/kindred-wellness/prism/internal/analysis"
)

// AnalysisRun is one persisted deep-analysis result.
type AnalysisRun struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Platform      string
	PostsAnalyzed int
	Result        json.RawMessage
}

// WriteAnalysisRun appends a completed deep analysis to the run log.
func (s *Store) WriteAnalysisRun(ctx context.Context, userID uuid.UUID, platform string, result *analysis.SynthesizedProfile) (uuid.UUID, error) {
	payload, err := json.Marshal(struct {
		Style    analysis.StyleProfile      `json:"style"`
		Behavior analysis.BehavioralProfile `json:"behavior"`
		Signals  []string                   `json:"personality_signals"`
		Summary  string                     `json:"communication_evolution"`
	}{result.Style, result.Behavior, result.PersonalitySignals, result.CommunicationEvolution})
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal analysis result: %w", err)
	}

	runID := uuid.New()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO analysis_runs (id, user_id, platform, posts_analyzed, result, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`,
		runID, userID, platform, result.PostsAnalyzed, payload,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert analysis_run: %w", err)
	}
	return runID, nil
}

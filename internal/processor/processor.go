// Package processor wires the event-driven analysis pipeline: chat messages
// refresh the per-user style cache, fetched social posts run deep analysis.
package processor

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kindred-wellness/prism/internal/analysis"
	"github.com/kindred-wellness/prism/internal/bus"
	"github.com/kindred-wellness/prism/internal/mirror"
)

// ChatMessageEvent carries the recent conversation window for one user,
// oldest message first.
type ChatMessageEvent struct {
	UserID          string   `json:"user_id"`
	ConversationRef string   `json:"conversation_ref"`
	Messages        []string `json:"messages"`
}

// PostsFetchedEvent carries a batch of social posts retrieved by the platform
// gateway.
type PostsFetchedEvent struct {
	UserID   string                `json:"user_id"`
	Platform string                `json:"platform"`
	Posts    []analysis.TextRecord `json:"posts"`
}

// Publisher is the outbound half of the event bus.
type Publisher interface {
	Publish(subject string, data any) error
}

// RunWriter persists completed deep-analysis results.
type RunWriter interface {
	WriteAnalysisRun(ctx context.Context, userID uuid.UUID, platform string, result *analysis.SynthesizedProfile) (uuid.UUID, error)
}

type Processor struct {
	analyzer *analysis.Analyzer
	mirror   *mirror.Mirror
	runs     RunWriter
	pub      Publisher
	logger   *slog.Logger
}

func New(analyzer *analysis.Analyzer, m *mirror.Mirror, runs RunWriter, pub Publisher, logger *slog.Logger) *Processor {
	return &Processor{
		analyzer: analyzer,
		mirror:   m,
		runs:     runs,
		pub:      pub,
		logger:   logger,
	}
}

// HandleChatMessage is the NATS handler for prism.chat.message.stored.
func (p *Processor) HandleChatMessage(subject string, data []byte) {
	ctx := context.Background()

	var evt ChatMessageEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse chat message event", "error", err)
		return
	}

	userID, err := uuid.Parse(evt.UserID)
	if err != nil {
		p.logger.Error("invalid user uuid", "user_id", evt.UserID, "error", err)
		return
	}

	profile, err := p.mirror.Refresh(ctx, userID, evt.Messages)
	if mirror.IsInsufficient(err) {
		p.logger.Debug("not enough messages for style yet",
			"user", evt.UserID,
			"messages", len(evt.Messages),
		)
		return
	}
	if err != nil {
		p.logger.Error("style refresh failed", "user", evt.UserID, "error", err)
		return
	}

	p.publishProfileUpdated(bus.ProfileUpdated{
		UserID:       evt.UserID,
		Source:       "chat",
		SampleSize:   profile.SampleSize,
		Vernacular:   profile.Vernacular,
		Formality:    profile.Formality,
		VocabVersion: p.analyzer.VocabVersion(),
	})

	p.logger.Info("chat style updated",
		"user", evt.UserID,
		"conversation_ref", evt.ConversationRef,
		"sample_size", profile.SampleSize,
	)
}

// HandlePostsFetched is the NATS handler for prism.social.posts.fetched.
// Every part of the behavioral profile is computed for the pipeline path; the
// HTTP API is where callers pick individual parts.
func (p *Processor) HandlePostsFetched(subject string, data []byte) {
	ctx := context.Background()

	var evt PostsFetchedEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse posts fetched event", "error", err)
		return
	}

	userID, err := uuid.Parse(evt.UserID)
	if err != nil {
		p.logger.Error("invalid user uuid", "user_id", evt.UserID, "error", err)
		return
	}

	result, err := p.analyzer.AnalyzeDeep(evt.Posts, analysis.DeepOptions{
		IncludePatterns:   true,
		IncludeEngagement: true,
		IncludeNetwork:    true,
		IncludeEmotional:  true,
	})
	if err != nil {
		p.logger.Error("deep analysis failed",
			"user", evt.UserID,
			"platform", evt.Platform,
			"posts", len(evt.Posts),
			"error", err,
		)
		return
	}

	if p.runs != nil {
		if _, err := p.runs.WriteAnalysisRun(ctx, userID, evt.Platform, result); err != nil {
			p.logger.Error("failed to persist analysis run", "user", evt.UserID, "error", err)
			return
		}
	}

	p.publishProfileUpdated(bus.ProfileUpdated{
		UserID:        evt.UserID,
		Source:        "social",
		Platform:      evt.Platform,
		SampleSize:    result.Style.SampleSize,
		Vernacular:    result.Style.Vernacular,
		Formality:     result.Style.Formality,
		VocabVersion:  p.analyzer.VocabVersion(),
		PostsAnalyzed: result.PostsAnalyzed,
	})

	p.logger.Info("deep analysis complete",
		"user", evt.UserID,
		"platform", evt.Platform,
		"posts", result.PostsAnalyzed,
		"signals", len(result.PersonalitySignals),
	)
}

func (p *Processor) publishProfileUpdated(evt bus.ProfileUpdated) {
	if p.pub == nil {
		return
	}
	if err := p.pub.Publish(bus.SubjectProfileUpdated, evt); err != nil {
		p.logger.Error("failed to publish profile update", "user", evt.UserID, "error", err)
	}
}

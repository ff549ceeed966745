// Package mirror turns a user's conversation style into a system-prompt
// fragment so the coaching assistant answers in a register the user
// recognizes as their own.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kindred-wellness/prism/internal/analysis"
)

// Cache is the per-user last-known-style store. Writes are last-write-wins;
// concurrent analyses for the same user may race and that is acceptable.
type Cache interface {
	GetStyle(ctx context.Context, userID uuid.UUID) (analysis.StyleProfile, bool, error)
	UpsertStyle(ctx context.Context, userID uuid.UUID, profile analysis.StyleProfile) error
}

type Mirror struct {
	analyzer *analysis.Analyzer
	cache    Cache
	logger   *slog.Logger
}

func New(analyzer *analysis.Analyzer, cache Cache, logger *slog.Logger) *Mirror {
	return &Mirror{analyzer: analyzer, cache: cache, logger: logger}
}

// Refresh re-analyzes the conversation window and overwrites the user's
// cached style. Below the three-message floor it returns
// analysis.ErrInsufficientSample and leaves the cache untouched.
func (m *Mirror) Refresh(ctx context.Context, userID uuid.UUID, messages []string) (analysis.StyleProfile, error) {
	records := make([]analysis.TextRecord, 0, len(messages))
	for _, msg := range messages {
		if t := strings.TrimSpace(msg); t != "" {
			records = append(records, analysis.TextRecord{Text: t})
		}
	}

	profile, err := m.analyzer.AnalyzeConversation(records)
	if err != nil {
		return analysis.StyleProfile{}, err
	}

	if m.cache != nil {
		if err := m.cache.UpsertStyle(ctx, userID, profile); err != nil {
			return analysis.StyleProfile{}, fmt.Errorf("cache style: %w", err)
		}
	}

	m.logger.Debug("style refreshed",
		"user", userID.String(),
		"sample_size", profile.SampleSize,
		"vernacular", profile.Vernacular,
	)
	return profile, nil
}

// Fragment renders the cached style into the prompt fragment. Returns empty
// when no style has been cached yet.
func (m *Mirror) Fragment(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.cache == nil {
		return "", nil
	}
	profile, found, err := m.cache.GetStyle(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load cached style: %w", err)
	}
	if !found {
		return "", nil
	}
	return RenderInstructions(profile), nil
}

// IsInsufficient reports whether err is the below-floor signal.
func IsInsufficient(err error) bool {
	return errors.Is(err, analysis.ErrInsufficientSample)
}

// RenderInstructions builds the bullet instruction block consumed by the LLM
// system prompt. Bullets are appended in fixed order: vocabulary, sentence
// style, formality, emoji, vernacular, punctuation, emotional openness.
func RenderInstructions(p analysis.StyleProfile) string {
	var b strings.Builder
	b.WriteString("Match the user's communication style:\n")

	switch p.VocabularyLevel {
	case analysis.VocabSimple:
		bullet(&b, "Use simple, everyday vocabulary.")
	case analysis.VocabSophisticated:
		bullet(&b, "Use rich, varied vocabulary.")
	}

	switch p.SentenceStyle {
	case analysis.SentenceBrief:
		bullet(&b, "Keep responses short and to the point.")
	case analysis.SentenceDetailed:
		bullet(&b, "Write fuller, more detailed responses.")
	}

	switch p.Formality {
	case analysis.FormalityCasual:
		bullet(&b, "Keep the tone casual and relaxed.")
	case analysis.FormalityFormal:
		bullet(&b, "Keep the tone polished and professional.")
	}

	switch p.EmojiStyle {
	case analysis.EmojiFrequent:
		bullet(&b, "Use emojis freely.")
	case analysis.EmojiOccasional:
		bullet(&b, "Use an occasional emoji where it fits.")
	case analysis.EmojiNone:
		bullet(&b, "Do not use emojis.")
	}

	if p.Vernacular != analysis.VernacularStandard {
		bullet(&b, "Mirror their "+strings.ReplaceAll(p.Vernacular, "_", " ")+" expressions where natural.")
	}

	if p.Punctuation.Exclamatory {
		bullet(&b, "Exclamation points fit their energy.")
	}
	if p.Punctuation.Trailing {
		bullet(&b, "Trailing ellipses suit their rhythm.")
	}
	if p.Punctuation.Inquisitive {
		bullet(&b, "They ask a lot of questions; reflective questions land well.")
	}

	switch p.EmotionalOpenness {
	case analysis.OpennessExpressive:
		bullet(&b, "Be warm and emotionally open.")
	case analysis.OpennessReserved:
		bullet(&b, "Keep emotional language restrained.")
	}

	return strings.TrimRight(b.String(), "\n")
}

func bullet(b *strings.Builder, s string) {
	b.WriteString("- ")
	b.WriteString(s)
	b.WriteString("\n")
}

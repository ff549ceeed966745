// Package chat assembles the coaching assistant's system prompt and relays
// conversations to the LLM. The style-mirroring fragment is appended to the
// base prompt whenever a cached profile exists for the user.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kindred-wellness/prism/internal/anthropic"
	"github.com/kindred-wellness/prism/internal/mirror"
)

const basePrompt = `You are a supportive wellness coach. You help people reflect on their day, build healthy habits, and work through stress. Be encouraging without being saccharine, and keep advice concrete.`

type Assistant struct {
	llm    *anthropic.Client
	mirror *mirror.Mirror
	logger *slog.Logger
}

func New(llm *anthropic.Client, m *mirror.Mirror, logger *slog.Logger) *Assistant {
	return &Assistant{llm: llm, mirror: m, logger: logger}
}

// SystemPrompt builds the full system prompt for a user: the base coaching
// prompt plus the mirror fragment when one is available.
func (a *Assistant) SystemPrompt(ctx context.Context, userID uuid.UUID) (string, error) {
	fragment, err := a.mirror.Fragment(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("build mirror fragment: %w", err)
	}
	if fragment == "" {
		return basePrompt, nil
	}
	return basePrompt + "\n\n" + fragment, nil
}

// Reply sends the conversation to the LLM under the user's assembled system
// prompt and returns the assistant's answer.
func (a *Assistant) Reply(ctx context.Context, userID uuid.UUID, turns []anthropic.Turn) (string, error) {
	system, err := a.SystemPrompt(ctx, userID)
	if err != nil {
		return "", err
	}
	reply, err := a.llm.Converse(ctx, system, turns)
	if err != nil {
		return "", fmt.Errorf("assistant reply: %w", err)
	}
	return reply, nil
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kindred-wellness/prism/internal/analysis"
	"github.com/kindred-wellness/prism/internal/anthropic"
	"github.com/kindred-wellness/prism/internal/social"
)

type socialRequest struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	analysis.DeepOptions
}

// analyzeSocial handles POST /api/v1/analyze/social — fetch a user's recent
// posts through the platform gateway, then run deep analysis on them.
func (s *Server) analyzeSocial(w http.ResponseWriter, r *http.Request) {
	if s.fetcher == nil {
		writeError(w, http.StatusServiceUnavailable, "social gateway not configured")
		return
	}

	var req socialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !validPlatforms[req.Platform] || req.Platform == "mixed" {
		writeError(w, http.StatusBadRequest, "platform must be twitter or instagram")
		return
	}
	if req.Handle == "" {
		writeError(w, http.StatusBadRequest, "handle is required")
		return
	}

	records, err := s.fetcher.FetchPosts(r.Context(), req.Platform, req.Handle, analysis.MaxDeepBatch)
	if err != nil {
		status, msg := fetchErrorStatus(err)
		writeError(w, status, msg)
		return
	}

	result, err := s.analyzer.AnalyzeDeep(records, req.DeepOptions)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, deepResponse{
		StyleProfile:           result.Style,
		Platform:               req.Platform,
		PostsAnalyzed:          result.PostsAnalyzed,
		Posting:                result.Behavior.Posting,
		Engagement:             result.Behavior.Engagement,
		Network:                result.Behavior.Network,
		Emotional:              result.Behavior.Emotional,
		PersonalitySignals:     result.PersonalitySignals,
		CommunicationEvolution: result.CommunicationEvolution,
	})
}

// fetchErrorStatus maps upstream fetch categories onto caller-visible HTTP
// statuses.
func fetchErrorStatus(err error) (int, string) {
	var fe *social.FetchError
	if !errors.As(err, &fe) {
		return http.StatusBadGateway, err.Error()
	}
	switch fe.Category {
	case social.CategoryNotFound:
		return http.StatusNotFound, fe.Error()
	case social.CategoryRateLimit:
		return http.StatusTooManyRequests, fe.Error()
	case social.CategoryTimeout:
		return http.StatusGatewayTimeout, fe.Error()
	default:
		return http.StatusBadGateway, fe.Error()
	}
}

type chatRequest struct {
	Messages []anthropic.Turn `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// chatReply handles POST /api/v1/users/{userID}/chat — relay a conversation
// to the coaching assistant under the user's style-mirrored system prompt.
func (s *Server) chatReply(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		writeError(w, http.StatusServiceUnavailable, "assistant not configured")
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages are required")
		return
	}

	reply, err := s.assistant.Reply(r.Context(), userID, req.Messages)
	if err != nil {
		writeError(w, http.StatusBadGateway, "assistant failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

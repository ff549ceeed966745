package api

import (
	"encoding/json"
	"net/http"

	"github.com/kindred-wellness/prism/internal/analysis"
)

var validPlatforms = map[string]bool{
	"twitter":   true,
	"instagram": true,
	"mixed":     true,
}

type analyzeRequest struct {
	Posts    []string `json:"posts"`
	Platform string   `json:"platform"`
}

type analyzeResponse struct {
	analysis.StyleProfile
	Platform      string `json:"platform"`
	PostsAnalyzed int    `json:"posts_analyzed"`
}

type deepRequest struct {
	Posts    []analysis.TextRecord `json:"posts"`
	Platform string                `json:"platform"`
	analysis.DeepOptions
}

type deepResponse struct {
	analysis.StyleProfile
	Platform      string `json:"platform"`
	PostsAnalyzed int    `json:"posts_analyzed"`

	Posting    *analysis.PostingPattern     `json:"posting_patterns,omitempty"`
	Engagement *analysis.EngagementProfile  `json:"engagement,omitempty"`
	Network    *analysis.InteractionNetwork `json:"interaction_network,omitempty"`
	Emotional  *analysis.EmotionalTimeline  `json:"emotional_timeline,omitempty"`

	PersonalitySignals     []string `json:"personality_signals"`
	CommunicationEvolution string   `json:"communication_evolution"`
}

// analyze handles POST /api/v1/analyze — basic style analysis over raw post
// texts.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !validPlatforms[req.Platform] {
		writeError(w, http.StatusBadRequest, "platform must be twitter, instagram, or mixed")
		return
	}

	records := make([]analysis.TextRecord, len(req.Posts))
	for i, text := range req.Posts {
		records[i] = analysis.TextRecord{Text: text}
	}

	profile, err := s.analyzer.AnalyzeStyle(records)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		StyleProfile:  profile,
		Platform:      req.Platform,
		PostsAnalyzed: len(req.Posts),
	})
}

// analyzeDeep handles POST /api/v1/analyze/deep — full behavioral analysis
// over structured post records.
func (s *Server) analyzeDeep(w http.ResponseWriter, r *http.Request) {
	var req deepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !validPlatforms[req.Platform] {
		writeError(w, http.StatusBadRequest, "platform must be twitter, instagram, or mixed")
		return
	}

	result, err := s.analyzer.AnalyzeDeep(req.Posts, req.DeepOptions)
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

package analysis

import "fmt"

// Batch bounds. Enforced before any computation runs.
const (
	MinBasicBatch = 1
	MaxBasicBatch = 100
	MinDeepBatch  = 5
	MaxDeepBatch  = 200

	// MinChatSample is the floor for the chat-mirroring path.
	MinChatSample = 3
)

// DeepOptions toggles the behavioral sub-profiles. A disabled part is skipped
// entirely — no partial computation.
type DeepOptions struct {
	IncludePatterns   bool `json:"include_patterns"`
	IncludeEngagement bool `json:"include_engagement"`
	IncludeNetwork    bool `json:"include_network"`
	IncludeEmotional  bool `json:"include_emotional"`
}

// Analyzer binds a vocabulary to the analysis pipeline. It holds no mutable
// state, so one Analyzer serves concurrent callers without coordination.
type Analyzer struct {
	vocab *Vocabulary
}

// New returns an analyzer over the given vocabulary.
func New(vocab *Vocabulary) *Analyzer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Analyzer{vocab: vocab}
}

// VocabVersion reports which vocabulary revision this analyzer matches
// against.
func (a *Analyzer) VocabVersion() string {
	return a.vocab.Version
}

// AnalyzeStyle runs basic style analysis over 1–100 records.
func (a *Analyzer) AnalyzeStyle(records []TextRecord) (StyleProfile, error) {
	if len(records) < MinBasicBatch {
		return StyleProfile{}, validationErr("posts", "at least 1 post is required")
	}
	if len(records) > MaxBasicBatch {
		return StyleProfile{}, validationErr("posts", fmt.Sprintf("at most %d posts are allowed", MaxBasicBatch))
	}

	fv := a.ExtractFeatures(records)
	return a.ClassifyStyle(fv, len(records), MinBasicBatch)
}

// AnalyzeConversation runs style analysis for the chat-mirroring path, which
// requires at least MinChatSample messages before a profile is produced.
func (a *Analyzer) AnalyzeConversation(messages []TextRecord) (StyleProfile, error) {
	if len(messages) > MaxDeepBatch {
		messages = messages[len(messages)-MaxDeepBatch:]
	}
	fv := a.ExtractFeatures(messages)
	return a.ClassifyStyle(fv, len(messages), MinChatSample)
}

// AnalyzeDeep runs the full deep-analysis pipeline over 5–200 records.
func (a *Analyzer) AnalyzeDeep(records []TextRecord, opts DeepOptions) (*SynthesizedProfile, error) {
	if len(records) < MinDeepBatch {
		return nil, validationErr("posts", fmt.Sprintf("at least %d posts are required for deep analysis", MinDeepBatch))
	}
	if len(records) > MaxDeepBatch {
		return nil, validationErr("posts", fmt.Sprintf("at most %d posts are allowed", MaxDeepBatch))
	}

	fv := a.ExtractFeatures(records)
	style, err := a.ClassifyStyle(fv, len(records), MinBasicBatch)
	if err != nil {
		return nil, err
	}

	var behavior BehavioralProfile
	if opts.IncludePatterns {
		behavior.Posting = a.postingPattern(records)
	}
	if opts.IncludeEngagement {
		behavior.Engagement = a.engagementProfile(records)
	}
	if opts.IncludeNetwork {
		behavior.Network = a.interactionNetwork(records)
	}
	if opts.IncludeEmotional {
		behavior.Emotional = a.emotionalTimeline(records)
	}

	signals, evolution := a.Synthesize(style, behavior)

	return &SynthesizedProfile{
		Style:                  style,
		Behavior:               behavior,
		PersonalitySignals:     signals,
		CommunicationEvolution: evolution,
		PostsAnalyzed:          len(records),
	}, nil
}

package analysis

import "time"

// TextRecord is one analyzable utterance — a chat message or a social post.
type TextRecord struct {
	Text       string      `json:"text"`
	Timestamp  *time.Time  `json:"timestamp,omitempty"`
	Engagement *Engagement `json:"engagement,omitempty"`
	Mentions   []string    `json:"mentions,omitempty"`
	Hashtags   []string    `json:"hashtags,omitempty"`
	IsReply    bool        `json:"is_reply,omitempty"`
}

// Engagement holds platform-reported interaction counts for a post.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// CategoryCount is a named match count for one vocabulary category.
type CategoryCount struct {
	Name  string
	Count int
}

// FeatureVector holds the lexical statistics extracted from a batch of records.
// It is ephemeral: owned by a single analysis call and never persisted.
type FeatureVector struct {
	WordCount         int
	SentenceCount     int
	AvgWordLength     float64
	AvgSentenceLength float64

	EmojiCount       int
	ExclamationCount int
	EllipsisCount    int
	QuestionCount    int
	AllCapsCount     int

	CasualCount    int
	FormalCount    int
	EmotionalCount int
	PositiveCount  int
	NegativeCount  int

	// Ordered per the vocabulary's fixed family/topic order.
	VernacularCounts []CategoryCount
	TopicCounts      []CategoryCount
}

// Style enumeration values.
const (
	VocabSimple        = "simple"
	VocabModerate      = "moderate"
	VocabSophisticated = "sophisticated"

	SentenceBrief    = "brief"
	SentenceBalanced = "balanced"
	SentenceDetailed = "detailed"

	FormalityCasual  = "casual"
	FormalityNeutral = "neutral"
	FormalityFormal  = "formal"

	EmojiNone       = "none"
	EmojiOccasional = "occasional"
	EmojiFrequent   = "frequent"

	CapsStandard   = "standard"
	CapsExpressive = "expressive"

	VernacularStandard = "standard"

	OpennessReserved   = "reserved"
	OpennessModerate   = "moderate"
	OpennessExpressive = "expressive"

	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentPositive = "positive"
	SentimentMixed    = "mixed"
)

// Consistency tiers for posting cadence.
const (
	ConsistencySporadic   = "sporadic"
	ConsistencyOccasional = "occasional"
	ConsistencyRegular    = "regular"
	ConsistencyFrequent   = "frequent"
)

// Audience responsiveness tiers.
const (
	ResponsivenessLow      = "low"
	ResponsivenessModerate = "moderate"
	ResponsivenessHigh     = "high"
	ResponsivenessViral    = "viral"
)

// Sentiment trend and emotional range tiers.
const (
	TrendDeclining = "declining"
	TrendStable    = "stable"
	TrendImproving = "improving"

	RangeNarrow   = "narrow"
	RangeModerate = "moderate"
	RangeWide     = "wide"
)

// PunctuationStyle flags are independent booleans, each derived from its own
// per-sample threshold.
type PunctuationStyle struct {
	Exclamatory bool `json:"exclamatory"`
	Trailing    bool `json:"trailing"`
	Inquisitive bool `json:"inquisitive"`
}

// StyleProfile is the basic-analysis output: discrete labels only.
type StyleProfile struct {
	VocabularyLevel   string           `json:"vocabulary_level"`
	SentenceStyle     string           `json:"sentence_style"`
	Formality         string           `json:"formality"`
	EmojiStyle        string           `json:"emoji_style"`
	Punctuation       PunctuationStyle `json:"punctuation"`
	CapsStyle         string           `json:"caps_style"`
	Vernacular        string           `json:"vernacular"`
	EmotionalOpenness string           `json:"emotional_openness"`
	Sentiment         string           `json:"sentiment"`
	SampleSize        int              `json:"sample_size"`
}

// PostingPattern summarizes when and how often a user posts.
type PostingPattern struct {
	MostActiveHours    []int    `json:"most_active_hours"`
	MostActiveDays     []string `json:"most_active_days"`
	AvgPostsPerDay     float64  `json:"avg_posts_per_day"`
	Consistency        string   `json:"consistency"`
	PeakEngagementTime string   `json:"peak_engagement_time"`
}

// EngagementProfile summarizes audience response across a post batch.
type EngagementProfile struct {
	AvgLikes             float64  `json:"avg_likes"`
	AvgComments          float64  `json:"avg_comments"`
	AvgShares            float64  `json:"avg_shares"`
	EngagementRate       float64  `json:"engagement_rate"`
	TopPerformingTopics  []string `json:"top_performing_topics"`
	AudienceResponsivity string   `json:"audience_responsiveness"`
}

// InteractionNetwork summarizes who the user talks to and about.
type InteractionNetwork struct {
	FrequentlyMentioned []string `json:"frequently_mentioned"`
	FrequentlyRepliedTo []string `json:"frequently_replied_to"`
	CommonHashtags      []string `json:"common_hashtags"`
	CommunitySignals    []string `json:"community_signals"`
}

// EmotionalTimeline summarizes sentiment movement across a post batch.
type EmotionalTimeline struct {
	OverallSentiment   string   `json:"overall_sentiment"`
	SentimentTrend     string   `json:"sentiment_trend"`
	EmotionalRange     string   `json:"emotional_range"`
	PeakPositiveTopics []string `json:"peak_positive_topics"`
	StressIndicators   []string `json:"stress_indicators"`
}

// BehavioralProfile bundles the four deep-analysis sub-profiles. Each part is
// nil when its include flag was off — skipped entirely, never partial.
type BehavioralProfile struct {
	Posting    *PostingPattern     `json:"posting_patterns,omitempty"`
	Engagement *EngagementProfile  `json:"engagement,omitempty"`
	Network    *InteractionNetwork `json:"interaction_network,omitempty"`
	Emotional  *EmotionalTimeline  `json:"emotional_timeline,omitempty"`
}

// SynthesizedProfile is the deep-analysis result: style plus whichever
// behavioral parts were requested, with derived signals and narrative.
type SynthesizedProfile struct {
	Style                  StyleProfile
	Behavior               BehavioralProfile
	PersonalitySignals     []string
	CommunicationEvolution string
	PostsAnalyzed          int
}

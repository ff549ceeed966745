package analysis

import (
	"errors"
	"testing"
)

func TestAnalyzeStyle_SlangHeavyPosts(t *testing.T) {
	a := newTestAnalyzer()

	profile, err := a.AnalyzeStyle(records(
		"lol yeah that's so lowkey fire fr",
		"no cap this slaps ngl",
		"bet, that's valid fr fr",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Vernacular != "gen_z" {
		t.Errorf("expected gen_z vernacular, got %s", profile.Vernacular)
	}
	if profile.Formality != FormalityCasual {
		t.Errorf("expected casual formality, got %s", profile.Formality)
	}
	if profile.SampleSize != 3 {
		t.Errorf("expected sample size 3, got %d", profile.SampleSize)
	}
}

func TestAnalyzeStyle_FormalPosts(t *testing.T) {
	a := newTestAnalyzer()

	profile, err := a.AnalyzeStyle(records(
		"I would therefore like to discuss the matter further.",
		"Furthermore, I appreciate your patience regarding this.",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Formality != FormalityFormal {
		t.Errorf("expected formal, got %s", profile.Formality)
	}
	if profile.VocabularyLevel != VocabSophisticated {
		t.Errorf("expected sophisticated vocabulary, got %s", profile.VocabularyLevel)
	}
	if profile.EmojiStyle != EmojiNone {
		t.Errorf("expected no emoji style, got %s", profile.EmojiStyle)
	}
}

func TestClassifyStyle_VocabularyThresholds(t *testing.T) {
	tests := []struct {
		name          string
		avgWordLength float64
		want          string
	}{
		{"short words are simple", 4.4, VocabSimple},
		{"boundary stays moderate low", 4.5, VocabModerate},
		{"mid range is moderate", 5.2, VocabModerate},
		{"boundary stays moderate high", 6.0, VocabModerate},
		{"long words are sophisticated", 6.1, VocabSophisticated},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := FeatureVector{AvgWordLength: tt.avgWordLength}
			p, err := a.ClassifyStyle(fv, 10, MinBasicBatch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.VocabularyLevel != tt.want {
				t.Errorf("expected %s, got %s", tt.want, p.VocabularyLevel)
			}
		})
	}
}

func TestClassifyStyle_SentenceThresholds(t *testing.T) {
	tests := []struct {
		name              string
		avgSentenceLength float64
		want              string
	}{
		{"short sentences are brief", 7.9, SentenceBrief},
		{"boundary is balanced", 8.0, SentenceBalanced},
		{"mid range is balanced", 12.0, SentenceBalanced},
		{"long sentences are detailed", 15.1, SentenceDetailed},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := FeatureVector{AvgSentenceLength: tt.avgSentenceLength}
			p, err := a.ClassifyStyle(fv, 10, MinBasicBatch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.SentenceStyle != tt.want {
				t.Errorf("expected %s, got %s", tt.want, p.SentenceStyle)
			}
		})
	}
}

func TestClassifyStyle_Formality(t *testing.T) {
	tests := []struct {
		name   string
		casual int
		formal int
		want   string
	}{
		{"casual dominates", 5, 2, FormalityCasual},
		{"double formal is not enough", 4, 2, FormalityNeutral},
		{"formal majority", 1, 2, FormalityFormal},
		{"equal counts are neutral", 3, 3, FormalityNeutral},
		{"no markers are neutral", 0, 0, FormalityNeutral},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := FeatureVector{CasualCount: tt.casual, FormalCount: tt.formal}
			p, err := a.ClassifyStyle(fv, 10, MinBasicBatch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Formality != tt.want {
				t.Errorf("expected %s, got %s", tt.want, p.Formality)
			}
		})
	}
}

func TestClassifyStyle_EmojiAndPunctuation(t *testing.T) {
	a := newTestAnalyzer()

	// 10 samples: thresholds are 5 emoji, 3 exclamations, 2 ellipses, 4 questions.
	fv := FeatureVector{
		EmojiCount:       6,
		ExclamationCount: 4,
		EllipsisCount:    2,
		QuestionCount:    5,
		AllCapsCount:     4,
	}
	p, err := a.ClassifyStyle(fv, 10, MinBasicBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.EmojiStyle != EmojiFrequent {
		t.Errorf("expected frequent emoji, got %s", p.EmojiStyle)
	}
	if !p.Punctuation.Exclamatory {
		t.Error("expected exclamatory punctuation")
	}
	if p.Punctuation.Trailing {
		t.Error("expected trailing to stay false at exactly the threshold")
	}
	if !p.Punctuation.Inquisitive {
		t.Error("expected inquisitive punctuation")
	}
	if p.CapsStyle != CapsExpressive {
		t.Errorf("expected expressive caps, got %s", p.CapsStyle)
	}
}

func TestClassifyStyle_OccasionalEmoji(t *testing.T) {
	a := newTestAnalyzer()

	fv := FeatureVector{EmojiCount: 2}
	p, err := a.ClassifyStyle(fv, 10, MinBasicBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.EmojiStyle != EmojiOccasional {
		t.Errorf("expected occasional emoji, got %s", p.EmojiStyle)
	}
}

func TestClassifyStyle_InsufficientSample(t *testing.T) {
	a := newTestAnalyzer()

	_, err := a.ClassifyStyle(FeatureVector{}, 2, MinChatSample)
	if !errors.Is(err, ErrInsufficientSample) {
		t.Errorf("expected ErrInsufficientSample, got %v", err)
	}
}

func TestPickVernacular(t *testing.T) {
	tests := []struct {
		name   string
		counts []CategoryCount
		want   string
	}{
		{
			name: "clear winner",
			counts: []CategoryCount{
				{Name: "gen_z", Count: 1},
				{Name: "millennial", Count: 4},
				{Name: "southern", Count: 0},
				{Name: "urban", Count: 0},
			},
			want: "millennial",
		},
		{
			name: "tie keeps first seen",
			counts: []CategoryCount{
				{Name: "gen_z", Count: 3},
				{Name: "millennial", Count: 3},
				{Name: "southern", Count: 0},
				{Name: "urban", Count: 0},
			},
			want: "gen_z",
		},
		{
			name: "winner at the floor is standard",
			counts: []CategoryCount{
				{Name: "gen_z", Count: 2},
				{Name: "millennial", Count: 1},
				{Name: "southern", Count: 0},
				{Name: "urban", Count: 0},
			},
			want: VernacularStandard,
		},
		{
			name:   "no matches",
			counts: []CategoryCount{{Name: "gen_z"}, {Name: "millennial"}},
			want:   VernacularStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickVernacular(tt.counts); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestVernacularTieBreak_EndToEnd(t *testing.T) {
	a := newTestAnalyzer()

	// Three gen_z matches and three millennial matches: the first family in
	// the fixed vocabulary order wins, regardless of record order.
	forward := records("ngl bet slaps", "adulting doggo totes")
	reversed := records("adulting doggo totes", "ngl bet slaps")

	for _, batch := range [][]TextRecord{forward, reversed} {
		p, err := a.AnalyzeStyle(batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Vernacular != "gen_z" {
			t.Errorf("expected gen_z on tie, got %s", p.Vernacular)
		}
	}
}

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name     string
		positive int
		negative int
		want     string
	}{
		{"strongly positive", 5, 2, SentimentPositive},
		{"strongly negative", 2, 5, SentimentNegative},
		{"both present", 3, 3, SentimentMixed},
		{"nothing matched", 0, 0, SentimentNeutral},
		{"one of each is mixed", 1, 1, SentimentMixed},
		{"exactly double is not positive", 4, 2, SentimentMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifySentiment(tt.positive, tt.negative); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyStyle_EmotionalOpenness(t *testing.T) {
	tests := []struct {
		name      string
		emotional int
		samples   int
		want      string
	}{
		{"no markers is reserved", 0, 10, OpennessReserved},
		{"few markers is moderate", 2, 10, OpennessModerate},
		{"many markers is expressive", 4, 10, OpennessExpressive},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := FeatureVector{EmotionalCount: tt.emotional}
			p, err := a.ClassifyStyle(fv, tt.samples, MinBasicBatch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.EmotionalOpenness != tt.want {
				t.Errorf("expected %s, got %s", tt.want, p.EmotionalOpenness)
			}
		})
	}
}

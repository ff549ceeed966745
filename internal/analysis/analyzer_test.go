package analysis

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestAnalyzeStyle_BatchBounds(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("empty batch", func(t *testing.T) {
		_, err := a.AnalyzeStyle(nil)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "posts" {
			t.Errorf("expected posts field, got %s", verr.Field)
		}
	})

	t.Run("over the cap", func(t *testing.T) {
		batch := make([]TextRecord, MaxBasicBatch+1)
		for i := range batch {
			batch[i].Text = "hello"
		}
		_, err := a.AnalyzeStyle(batch)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("single post is enough", func(t *testing.T) {
		p, err := a.AnalyzeStyle(records("just one post"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.SampleSize != 1 {
			t.Errorf("expected sample size 1, got %d", p.SampleSize)
		}
	})
}

func TestAnalyzeConversation_Floor(t *testing.T) {
	a := newTestAnalyzer()

	_, err := a.AnalyzeConversation(records("hey", "how are you"))
	if !errors.Is(err, ErrInsufficientSample) {
		t.Fatalf("expected ErrInsufficientSample, got %v", err)
	}

	p, err := a.AnalyzeConversation(records("hey", "how are you", "doing great"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SampleSize != 3 {
		t.Errorf("expected sample size 3, got %d", p.SampleSize)
	}
}

func TestAnalyzeConversation_TruncatesLongHistory(t *testing.T) {
	a := newTestAnalyzer()

	msgs := make([]TextRecord, MaxDeepBatch+50)
	for i := range msgs {
		msgs[i].Text = "hello there"
	}

	p, err := a.AnalyzeConversation(msgs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SampleSize != MaxDeepBatch {
		t.Errorf("expected sample size %d after truncation, got %d", MaxDeepBatch, p.SampleSize)
	}
}

func TestAnalyzeDeep_BatchBounds(t *testing.T) {
	a := newTestAnalyzer()

	_, err := a.AnalyzeDeep(records("a", "b", "c", "d"), DeepOptions{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError below the floor, got %v", err)
	}
	if !strings.Contains(verr.Reason, "5") {
		t.Errorf("expected the floor in the reason, got %q", verr.Reason)
	}

	batch := make([]TextRecord, MaxDeepBatch+1)
	for i := range batch {
		batch[i].Text = "post"
	}
	_, err = a.AnalyzeDeep(batch, DeepOptions{})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError above the cap, got %v", err)
	}
}

func TestAnalyzeDeep_AllPartsDisabled(t *testing.T) {
	a := newTestAnalyzer()

	p, err := a.AnalyzeDeep(records("one", "two", "three", "four", "five"), DeepOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Behavior.Posting != nil || p.Behavior.Engagement != nil ||
		p.Behavior.Network != nil || p.Behavior.Emotional != nil {
		t.Errorf("expected no behavioral parts, got %+v", p.Behavior)
	}
	if p.PersonalitySignals == nil || len(p.PersonalitySignals) != 0 {
		t.Errorf("expected empty signals, got %v", p.PersonalitySignals)
	}
	if p.CommunicationEvolution != "Insufficient data for evolution analysis." {
		t.Errorf("unexpected evolution text: %q", p.CommunicationEvolution)
	}
	if p.PostsAnalyzed != 5 {
		t.Errorf("expected 5 posts analyzed, got %d", p.PostsAnalyzed)
	}
}

func TestAnalyzeDeep_AllPartsEnabled(t *testing.T) {
	a := newTestAnalyzer()

	ts := time.Date(2025, time.May, 1, 20, 0, 0, 0, time.UTC)
	batch := make([]TextRecord, 6)
	for i := range batch {
		when := ts.Add(time.Duration(i) * 12 * time.Hour)
		batch[i] = TextRecord{
			Text:       "great workout at the gym today",
			Timestamp:  &when,
			Engagement: &Engagement{Likes: 10, Comments: 2},
			Hashtags:   []string{"fitfam"},
		}
	}

	opts := DeepOptions{
		IncludePatterns:   true,
		IncludeEngagement: true,
		IncludeNetwork:    true,
		IncludeEmotional:  true,
	}
	p, err := a.AnalyzeDeep(batch, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Behavior.Posting == nil || p.Behavior.Engagement == nil ||
		p.Behavior.Network == nil || p.Behavior.Emotional == nil {
		t.Fatalf("expected all behavioral parts, got %+v", p.Behavior)
	}
	if len(p.PersonalitySignals) == 0 {
		t.Error("expected at least one personality signal")
	}
	if p.CommunicationEvolution == "" {
		t.Error("expected an evolution narrative")
	}
}

func TestAnalyzeDeep_Deterministic(t *testing.T) {
	a := newTestAnalyzer()

	ts := time.Date(2025, time.April, 7, 9, 30, 0, 0, time.UTC)
	batch := make([]TextRecord, 8)
	for i := range batch {
		when := ts.Add(time.Duration(i) * 7 * time.Hour)
		batch[i] = TextRecord{
			Text:       "lowkey loving this new recipe ngl",
			Timestamp:  &when,
			Engagement: &Engagement{Likes: i},
			Mentions:   []string{"sam"},
		}
	}
	opts := DeepOptions{
		IncludePatterns:   true,
		IncludeEngagement: true,
		IncludeNetwork:    true,
		IncludeEmotional:  true,
	}

	first, err := a.AnalyzeDeep(batch, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.AnalyzeDeep(batch, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical results for identical input")
	}
}

func TestNew_NilVocabularyUsesDefault(t *testing.T) {
	a := New(nil)

	if a.VocabVersion() != DefaultVocabulary().Version {
		t.Errorf("expected default vocabulary version, got %s", a.VocabVersion())
	}
}

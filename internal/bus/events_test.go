package bus

import (
	"encoding/json"
	"testing"
)

func TestProfileUpdatedParsing(t *testing.T) {
	raw := `{
		"user_id": "8f14e45f-ea2c-4f07-a7a5-2f1c1f0a9b11",
		"source": "social",
		"platform": "twitter",
		"sample_size": 42,
		"vernacular": "gen_z",
		"formality": "casual",
		"vocab_version": "2025.08",
		"posts_analyzed": 42
	}`

	var evt ProfileUpdated
	if err := json.Unmarshal([]byte(raw), &evt); err != nil {
		t.Fatalf("failed to parse ProfileUpdated: %v", err)
	}

	if evt.Source != "social" {
		t.Errorf("expected source 'social', got '%s'", evt.Source)
	}
	if evt.Platform != "twitter" {
		t.Errorf("expected platform 'twitter', got '%s'", evt.Platform)
	}
	if evt.SampleSize != 42 {
		t.Errorf("expected sample_size 42, got %d", evt.SampleSize)
	}
	if evt.Vernacular != "gen_z" {
		t.Errorf("expected vernacular 'gen_z', got '%s'", evt.Vernacular)
	}
}

func TestProfileUpdatedRoundTrip(t *testing.T) {
	evt := ProfileUpdated{
		UserID:       "user-rt",
		Source:       "chat",
		SampleSize:   7,
		Vernacular:   "standard",
		Formality:    "neutral",
		VocabVersion: "2025.08",
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var back ProfileUpdated
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if back != evt {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, evt)
	}
}

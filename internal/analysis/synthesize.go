package analysis

import "strings"

const maxPersonalitySignals = 5

// evolutionFallback is returned when no behavioral part was computed at all.
const evolutionFallback = "Insufficient data for evolution analysis."

// Synthesize derives the personality-signal list and the evolution narrative
// from the classified style and whichever behavioral parts were computed.
//
// This is deliberately dumb templating: every rule inspects one or two fields
// and appends one fixed sentence, in a fixed priority order, truncated to
// five. Determinism here is load-bearing — the same profile always yields the
// same words.
func (a *Analyzer) Synthesize(style StyleProfile, behavior BehavioralProfile) ([]string, string) {
	if behavior.Posting == nil && behavior.Engagement == nil &&
		behavior.Network == nil && behavior.Emotional == nil {
		return []string{}, evolutionFallback
	}

	signals := []string{}
	push := func(s string) {
		if len(signals) < maxPersonalitySignals {
			signals = append(signals, s)
		}
	}

	if behavior.Posting != nil && hasNightHours(behavior.Posting.MostActiveHours) {
		push("night owl tendencies")
	}
	if behavior.Posting != nil && behavior.Posting.Consistency == ConsistencyFrequent {
		push("highly active online presence")
	}
	if behavior.Engagement != nil &&
		(behavior.Engagement.AudienceResponsivity == ResponsivenessHigh ||
			behavior.Engagement.AudienceResponsivity == ResponsivenessViral) {
		push("strong audience connection")
	}
	if behavior.Network != nil && len(behavior.Network.CommunitySignals) > 0 {
		push("community oriented")
	}
	if behavior.Emotional != nil && behavior.Emotional.SentimentTrend == TrendImproving {
		push("upward emotional trajectory")
	}
	if style.EmotionalOpenness == OpennessExpressive {
		push("emotionally expressive communicator")
	}
	if style.Vernacular != VernacularStandard {
		push("distinctive vernacular voice")
	}
	if style.Formality == FormalityCasual {
		push("relaxed conversational manner")
	}

	return signals, a.evolutionNarrative(behavior)
}

// evolutionNarrative concatenates up to three fixed template sentences gated
// by trend, consistency, and stress presence.
func (a *Analyzer) evolutionNarrative(behavior BehavioralProfile) string {
	var parts []string

	if behavior.Emotional != nil {
		switch behavior.Emotional.SentimentTrend {
		case TrendImproving:
			parts = append(parts, "Emotional tone has been improving across recent posts")
		case TrendDeclining:
			parts = append(parts, "Emotional tone has been trending downward across recent posts")
		}
	}

	if behavior.Posting != nil {
		switch behavior.Posting.Consistency {
		case ConsistencyFrequent, ConsistencyRegular:
			parts = append(parts, "Posting habits are steady and well established")
		case ConsistencySporadic:
			parts = append(parts, "Posting is sporadic with long quiet stretches")
		}
	}

	if behavior.Emotional != nil && len(behavior.Emotional.StressIndicators) > 0 {
		parts = append(parts, "Recent posts show signs of elevated stress")
	}

	if len(parts) == 0 {
		return "Communication style appears stable."
	}
	return strings.Join(parts, ". ") + "."
}

func hasNightHours(hours []int) bool {
	for _, h := range hours {
		if h >= 22 || h <= 5 {
			return true
		}
	}
	return false
}

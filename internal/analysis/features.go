package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
	allCapsRe    = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	ellipsisRe   = regexp.MustCompile(`\.\.\.|…`)
)

// ExtractFeatures computes the lexical feature vector for a batch of records.
// Pure transform: empty input yields a zero vector, never an error (callers
// enforce minimum batch sizes before invoking it).
//
// Records are joined into a single corpus with one space between texts, so a
// multi-word phrase split across two records still matches. That join is part
// of the contract, not an optimization.
func (a *Analyzer) ExtractFeatures(records []TextRecord) FeatureVector {
	texts := make([]string, 0, len(records))
	for _, r := range records {
		if t := strings.TrimSpace(r.Text); t != "" {
			texts = append(texts, t)
		}
	}
	corpus := strings.Join(texts, " ")

	fv := FeatureVector{
		VernacularCounts: make([]CategoryCount, len(a.vocab.Vernacular)),
		TopicCounts:      make([]CategoryCount, len(a.vocab.Topics)),
	}
	for i, fam := range a.vocab.Vernacular {
		fv.VernacularCounts[i].Name = fam.Name
	}
	for i, topic := range a.vocab.Topics {
		fv.TopicCounts[i].Name = topic.Name
	}
	if corpus == "" {
		return fv
	}

	words := splitNonEmpty(whitespaceRe, corpus)
	sentences := splitNonEmpty(sentenceRe, corpus)

	fv.WordCount = len(words)
	fv.SentenceCount = len(sentences)
	if len(words) > 0 {
		fv.AvgWordLength = float64(utf8.RuneCountInString(corpus)) / float64(len(words))
	}
	if len(sentences) > 0 {
		fv.AvgSentenceLength = float64(len(words)) / float64(len(sentences))
	}

	fv.EmojiCount = countEmoji(corpus)
	fv.ExclamationCount = strings.Count(corpus, "!")
	fv.QuestionCount = strings.Count(corpus, "?")
	fv.EllipsisCount = countMatches(ellipsisRe, corpus)
	fv.AllCapsCount = countMatches(allCapsRe, corpus)

	fv.CasualCount = countMatches(a.vocab.Casual, corpus)
	fv.FormalCount = countMatches(a.vocab.Formal, corpus)
	fv.EmotionalCount = countMatches(a.vocab.Emotional, corpus)
	fv.PositiveCount = countMatches(a.vocab.Positive, corpus)
	fv.NegativeCount = countMatches(a.vocab.Negative, corpus)

	for i, fam := range a.vocab.Vernacular {
		fv.VernacularCounts[i].Count = countMatches(fam.Pattern, corpus)
	}
	for i, topic := range a.vocab.Topics {
		fv.TopicCounts[i].Count = countMatches(topic.Pattern, corpus)
	}

	return fv
}

func splitNonEmpty(re *regexp.Regexp, s string) []string {
	parts := re.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// countEmoji counts code points in the main emoji block plus the two legacy
// symbol ranges. Repeated emoji count every time.
func countEmoji(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1F9FF:
			n++
		case r >= 0x2600 && r <= 0x26FF:
			n++
		case r >= 0x2700 && r <= 0x27BF:
			n++
		}
	}
	return n
}

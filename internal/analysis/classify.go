package analysis

// Classification thresholds. These are product-tuned constants: downstream
// consumers depend on the exact cut points, so changing one changes every
// cached profile's meaning.
const (
	vocabSimpleBelow        = 4.5
	vocabSophisticatedAbove = 6.0
	sentenceBriefBelow      = 8.0
	sentenceDetailedAbove   = 15.0
	emojiFrequentPerSample  = 0.5
	exclamatoryPerSample    = 0.3
	trailingPerSample       = 0.2
	inquisitivePerSample    = 0.4
	capsExpressivePerSample = 0.3
	opennessPerSample       = 0.3
	vernacularFloor         = 2
)

// ClassifyStyle maps a feature vector onto discrete style labels.
// minSamples is the caller's floor: 3 for the chat-mirroring path, 1 for the
// post-batch analyzer. Below the floor it returns ErrInsufficientSample and
// never fabricates a profile.
func (a *Analyzer) ClassifyStyle(fv FeatureVector, sampleSize, minSamples int) (StyleProfile, error) {
	if sampleSize < minSamples {
		return StyleProfile{}, ErrInsufficientSample
	}

	n := float64(sampleSize)

	p := StyleProfile{SampleSize: sampleSize}

	switch {
	case fv.AvgWordLength < vocabSimpleBelow:
		p.VocabularyLevel = VocabSimple
	case fv.AvgWordLength > vocabSophisticatedAbove:
		p.VocabularyLevel = VocabSophisticated
	default:
		p.VocabularyLevel = VocabModerate
	}

	switch {
	case fv.AvgSentenceLength < sentenceBriefBelow:
		p.SentenceStyle = SentenceBrief
	case fv.AvgSentenceLength > sentenceDetailedAbove:
		p.SentenceStyle = SentenceDetailed
	default:
		p.SentenceStyle = SentenceBalanced
	}

	switch {
	case fv.CasualCount > 2*fv.FormalCount:
		p.Formality = FormalityCasual
	case fv.FormalCount > fv.CasualCount:
		p.Formality = FormalityFormal
	default:
		p.Formality = FormalityNeutral
	}

	switch {
	case float64(fv.EmojiCount) > emojiFrequentPerSample*n:
		p.EmojiStyle = EmojiFrequent
	case fv.EmojiCount > 0:
		p.EmojiStyle = EmojiOccasional
	default:
		p.EmojiStyle = EmojiNone
	}

	p.Punctuation = PunctuationStyle{
		Exclamatory: float64(fv.ExclamationCount) > exclamatoryPerSample*n,
		Trailing:    float64(fv.EllipsisCount) > trailingPerSample*n,
		Inquisitive: float64(fv.QuestionCount) > inquisitivePerSample*n,
	}

	if float64(fv.AllCapsCount) > capsExpressivePerSample*n {
		p.CapsStyle = CapsExpressive
	} else {
		p.CapsStyle = CapsStandard
	}

	p.Vernacular = pickVernacular(fv.VernacularCounts)

	switch {
	case float64(fv.EmotionalCount) > opennessPerSample*n:
		p.EmotionalOpenness = OpennessExpressive
	case fv.EmotionalCount > 0:
		p.EmotionalOpenness = OpennessModerate
	default:
		p.EmotionalOpenness = OpennessReserved
	}

	p.Sentiment = classifySentiment(fv.PositiveCount, fv.NegativeCount)

	return p, nil
}

// pickVernacular selects the family with the highest match count, in the
// vocabulary's fixed order. Ties keep the first-seen family, and a winner at
// or below the floor still reports standard.
func pickVernacular(counts []CategoryCount) string {
	best := VernacularStandard
	bestCount := 0
	for _, c := range counts {
		if c.Count > bestCount {
			best = c.Name
			bestCount = c.Count
		}
	}
	if bestCount <= vernacularFloor {
		return VernacularStandard
	}
	return best
}

func classifySentiment(positive, negative int) string {
	switch {
	case positive > 2*negative:
		return SentimentPositive
	case negative > 2*positive:
		return SentimentNegative
	case positive > 0 && negative > 0:
		return SentimentMixed
	default:
		return SentimentNeutral
	}
}

package analysis

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Consistency tier cut points, in average posts per day.
const (
	consistencySporadicBelow   = 0.2
	consistencyOccasionalBelow = 0.5
	consistencyRegularBelow    = 2.0
)

// Responsiveness tier cut points, in combined engagement per post.
const (
	responsivenessLowBelow      = 5.0
	responsivenessModerateBelow = 20.0
	responsivenessHighBelow     = 100.0
)

const (
	trendDelta         = 0.3
	rangeNarrowBelow   = 2
	rangeModerateBelow = 5

	maxTopHours         = 3
	maxTopDays          = 3
	maxTopTopics        = 5
	maxTopMentions      = 5
	maxTopHashtags      = 10
	maxCommunitySignals = 3
	maxStressIndicators = 5
	maxPositiveTopics   = 3
)

// postingPattern buckets timestamped records by hour and weekday. Records
// without a timestamp are excluded here but still count toward lexical stats.
func (a *Analyzer) postingPattern(records []TextRecord) *PostingPattern {
	var hourCounts [24]int
	dayCounts := newCounter()
	var earliest, latest time.Time
	timestamped := 0

	for _, r := range records {
		if r.Timestamp == nil {
			continue
		}
		ts := *r.Timestamp
		timestamped++
		hourCounts[ts.Hour()]++
		dayCounts.add(ts.Weekday().String())
		if earliest.IsZero() || ts.Before(earliest) {
			earliest = ts
		}
		if latest.IsZero() || ts.After(latest) {
			latest = ts
		}
	}

	p := &PostingPattern{
		MostActiveHours:    topHours(hourCounts, maxTopHours),
		MostActiveDays:     dayCounts.top(maxTopDays),
		Consistency:        ConsistencySporadic,
		PeakEngagementTime: "unknown",
	}

	if timestamped > 0 {
		rangeDays := math.Max(1, math.Ceil(latest.Sub(earliest).Hours()/24))
		avg := float64(timestamped) / rangeDays
		p.AvgPostsPerDay = round1(avg)
		p.Consistency = consistencyTier(avg)
		p.PeakEngagementTime = periodLabel(peakHour(hourCounts))
	}

	return p
}

func consistencyTier(avgPerDay float64) string {
	switch {
	case avgPerDay < consistencySporadicBelow:
		return ConsistencySporadic
	case avgPerDay < consistencyOccasionalBelow:
		return ConsistencyOccasional
	case avgPerDay < consistencyRegularBelow:
		return ConsistencyRegular
	default:
		return ConsistencyFrequent
	}
}

// periodLabel maps the single most frequent hour to a day period.
func periodLabel(hour int) string {
	switch {
	case hour >= 0 && hour <= 11:
		return "morning"
	case hour <= 16:
		return "afternoon"
	case hour <= 20:
		return "evening"
	default:
		return "night"
	}
}

func peakHour(counts [24]int) int {
	best := 0
	for h, c := range counts {
		if c > counts[best] {
			best = h
		}
	}
	return best
}

func topHours(counts [24]int, limit int) []int {
	hours := make([]int, 0, 24)
	for h := 0; h < 24; h++ {
		if counts[h] > 0 {
			hours = append(hours, h)
		}
	}
	sort.SliceStable(hours, func(i, j int) bool {
		return counts[hours[i]] > counts[hours[j]]
	})
	if len(hours) > limit {
		hours = hours[:limit]
	}
	return hours
}

// engagementProfile averages over posts that carry engagement metrics and
// attributes each post's weighted score (likes + 2x comments) to every topic
// its text mentions.
func (a *Analyzer) engagementProfile(records []TextRecord) *EngagementProfile {
	var likes, comments, shares int
	withMetrics := 0
	topicScores := make([]int, len(a.vocab.Topics))

	for _, r := range records {
		if r.Engagement == nil {
			continue
		}
		withMetrics++
		likes += r.Engagement.Likes
		comments += r.Engagement.Comments
		shares += r.Engagement.Shares

		score := r.Engagement.Likes + 2*r.Engagement.Comments
		for i, topic := range a.vocab.Topics {
			if topic.Pattern.MatchString(r.Text) {
				topicScores[i] += score
			}
		}
	}

	p := &EngagementProfile{
		TopPerformingTopics:  []string{},
		AudienceResponsivity: ResponsivenessLow,
	}
	if withMetrics == 0 {
		return p
	}

	n := float64(withMetrics)
	rate := float64(likes+comments+shares) / n
	p.AvgLikes = round1(float64(likes) / n)
	p.AvgComments = round1(float64(comments) / n)
	p.AvgShares = round1(float64(shares) / n)
	p.EngagementRate = round2(rate)
	p.AudienceResponsivity = responsivenessTier(rate)
	p.TopPerformingTopics = topTopics(a.vocab.Topics, topicScores, maxTopTopics)

	return p
}

func responsivenessTier(rate float64) string {
	switch {
	case rate < responsivenessLowBelow:
		return ResponsivenessLow
	case rate < responsivenessModerateBelow:
		return ResponsivenessModerate
	case rate < responsivenessHighBelow:
		return ResponsivenessHigh
	default:
		return ResponsivenessViral
	}
}

func topTopics(topics []NamedPattern, scores []int, limit int) []string {
	idx := make([]int, 0, len(topics))
	for i := range topics {
		if scores[i] > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})
	if len(idx) > limit {
		idx = idx[:limit]
	}
	out := make([]string, len(idx))
	for i, t := range idx {
		out[i] = topics[t].Name
	}
	return out
}

// interactionNetwork frequency-ranks mentions and hashtags. Replied-to is
// approximated as the first mention on posts flagged as replies — a heuristic
// kept for parity with profile output elsewhere, not a reply-graph.
func (a *Analyzer) interactionNetwork(records []TextRecord) *InteractionNetwork {
	mentions := newCounter()
	hashtags := newCounter()
	repliedTo := newCounter()

	for _, r := range records {
		for _, m := range r.Mentions {
			mentions.add(m)
		}
		for _, h := range r.Hashtags {
			hashtags.add(h)
		}
		if r.IsReply && len(r.Mentions) > 0 {
			repliedTo.add(r.Mentions[0])
		}
	}

	commonHashtags := hashtags.top(maxTopHashtags)

	return &InteractionNetwork{
		FrequentlyMentioned: mentions.top(maxTopMentions),
		FrequentlyRepliedTo: repliedTo.top(maxTopMentions),
		CommonHashtags:      commonHashtags,
		CommunitySignals:    a.communitySignals(commonHashtags),
	}
}

// communitySignals tests top hashtags against the fixed community patterns,
// deduplicated and capped.
func (a *Analyzer) communitySignals(hashtags []string) []string {
	signals := []string{}
	seen := make(map[string]bool)
	for _, h := range hashtags {
		for _, c := range a.vocab.Communities {
			if seen[c.Name] || !c.Pattern.MatchString(h) {
				continue
			}
			seen[c.Name] = true
			signals = append(signals, c.Name)
			if len(signals) == maxCommunitySignals {
				return signals
			}
		}
	}
	return signals
}

// emotionalTimeline scores every post (positive matches minus negative
// matches) in record order and compares the first half against the second.
func (a *Analyzer) emotionalTimeline(records []TextRecord) *EmotionalTimeline {
	scores := make([]int, len(records))
	positiveTopicCounts := make([]int, len(a.vocab.Topics))
	stress := []string{}
	stressSeen := make(map[string]bool)

	for i, r := range records {
		score := countMatches(a.vocab.Positive, r.Text) - countMatches(a.vocab.Negative, r.Text)
		scores[i] = score

		if score > 1 {
			for t, topic := range a.vocab.Topics {
				if topic.Pattern.MatchString(r.Text) {
					positiveTopicCounts[t]++
				}
			}
		}

		for _, m := range a.vocab.Stress.FindAllString(r.Text, -1) {
			key := strings.ToLower(m)
			if !stressSeen[key] && len(stress) < maxStressIndicators {
				stressSeen[key] = true
				stress = append(stress, key)
			}
		}
	}

	return &EmotionalTimeline{
		OverallSentiment:   overallSentiment(scores),
		SentimentTrend:     sentimentTrend(scores),
		EmotionalRange:     emotionalRange(scores),
		PeakPositiveTopics: topTopics(a.vocab.Topics, positiveTopicCounts, maxPositiveTopics),
		StressIndicators:   stress,
	}
}

func overallSentiment(scores []int) string {
	if len(scores) == 0 {
		return SentimentNeutral
	}
	sum := 0
	hasHigh, hasLow := false, false
	for _, s := range scores {
		sum += s
		if s > 1 {
			hasHigh = true
		}
		if s < -1 {
			hasLow = true
		}
	}
	avg := float64(sum) / float64(len(scores))
	switch {
	case avg < -0.5:
		return SentimentNegative
	case avg > 0.5:
		return SentimentPositive
	case hasHigh && hasLow:
		return SentimentMixed
	default:
		return SentimentNeutral
	}
}

// sentimentTrend splits the score sequence at the midpoint index and compares
// half averages.
func sentimentTrend(scores []int) string {
	if len(scores) < 2 {
		return TrendStable
	}
	mid := len(scores) / 2
	first := avgInts(scores[:mid])
	second := avgInts(scores[mid:])
	switch {
	case second-first > trendDelta:
		return TrendImproving
	case first-second > trendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func emotionalRange(scores []int) string {
	if len(scores) == 0 {
		return RangeNarrow
	}
	min, max := scores[0], scores[0]
	for _, s := range scores {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	switch spread := max - min; {
	case spread < rangeNarrowBelow:
		return RangeNarrow
	case spread < rangeModerateBelow:
		return RangeModerate
	default:
		return RangeWide
	}
}

func avgInts(v []int) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0
	for _, x := range v {
		sum += x
	}
	return float64(sum) / float64(len(v))
}

// counter ranks strings by frequency; ties keep first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if key == "" {
		return
	}
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top(limit int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

package analysis

import "regexp"

// NamedPattern pairs a category name with its compiled word-list pattern.
type NamedPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Vocabulary is the closed, versioned word-list configuration the analyzer
// matches against. Lists are data, not logic: they can be extended or swapped
// (tests inject fixtures) without touching the extraction algorithm.
//
// Slice order is part of the contract. Vernacular tie-breaks resolve to the
// first-seen family, so the order below is fixed: gen_z, millennial,
// southern, urban.
type Vocabulary struct {
	Version string

	Vernacular  []NamedPattern
	Topics      []NamedPattern
	Communities []NamedPattern

	Casual    *regexp.Regexp
	Formal    *regexp.Regexp
	Emotional *regexp.Regexp
	Positive  *regexp.Regexp
	Negative  *regexp.Regexp
	Stress    *regexp.Regexp
}

// DefaultVocabulary returns the product vocabulary. Multi-word phrases come
// first within each alternation so they win over their single-word prefixes.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Version: "2025.08",

		Vernacular: []NamedPattern{
			{Name: "gen_z", Pattern: regexp.MustCompile(`(?i)\b(no cap|fr fr|hits different|low key|lowkey|highkey|fr|ngl|bet|slaps|bussin|deadass|sus|finna|iykyk|rizz|mid|valid|slay|based|fire|vibes?|sheesh|it's giving)\b`)},
			{Name: "millennial", Pattern: regexp.MustCompile(`(?i)\b(adulting|doggo|pupper|totes|obvi|cray|bae|fomo|yolo|on fleek|i can't even|literally dying|all the feels|squad goals|hot mess)\b`)},
			{Name: "southern", Pattern: regexp.MustCompile(`(?i)\b(y'all|yall|fixin' to|fixin to|reckon|ain't|mighty fine|bless your heart|howdy|down yonder|over yonder|much obliged)\b`)},
			{Name: "urban", Pattern: regexp.MustCompile(`(?i)\b(homie|fam|bruh|aight|wassup|whatchu|trippin|straight up|real talk|no doubt|word up|on god|salty|flexin)\b`)},
		},

		Topics: []NamedPattern{
			{Name: "work", Pattern: regexp.MustCompile(`(?i)\b(work|job|career|office|boss|coworkers?|meetings?|deadline|promotion|interview|hustle)\b`)},
			{Name: "fitness", Pattern: regexp.MustCompile(`(?i)\b(gym|workout|running|lifting|yoga|cardio|training|marathon|exercise|gains|reps)\b`)},
			{Name: "food", Pattern: regexp.MustCompile(`(?i)\b(food|cooking|recipe|dinner|lunch|breakfast|restaurant|coffee|brunch|baking|delicious)\b`)},
			{Name: "family", Pattern: regexp.MustCompile(`(?i)\b(family|kids?|mom|dad|parents?|sister|brother|baby|toddler|grandma|grandpa)\b`)},
			{Name: "travel", Pattern: regexp.MustCompile(`(?i)\b(travel|trip|vacation|flight|airport|beach|hiking|adventure|exploring|passport)\b`)},
			{Name: "wellness", Pattern: regexp.MustCompile(`(?i)\b(wellness|meditation|mindfulness|self[- ]care|therapy|journaling|gratitude|healing|balance)\b`)},
			{Name: "creative", Pattern: regexp.MustCompile(`(?i)\b(art|music|writing|painting|drawing|photography|design|creative|studio|playlist)\b`)},
			{Name: "tech", Pattern: regexp.MustCompile(`(?i)\b(tech|coding|software|app|startup|ai|crypto|gadget|programming|launch)\b`)},
		},

		Communities: []NamedPattern{
			{Name: "tech community", Pattern: regexp.MustCompile(`(?i)(tech|dev|coding|programming|startup|buildinpublic)`)},
			{Name: "fitness community", Pattern: regexp.MustCompile(`(?i)(fit|gym|lift|run|yoga|health)`)},
			{Name: "creative community", Pattern: regexp.MustCompile(`(?i)(art|design|music|writing|photo|creat)`)},
			{Name: "gaming community", Pattern: regexp.MustCompile(`(?i)(gam(e|ing|er)|esports|twitch|stream)`)},
			{Name: "parenting community", Pattern: regexp.MustCompile(`(?i)(mom|dad|parent|baby|toddler|family)`)},
			{Name: "mental health community", Pattern: regexp.MustCompile(`(?i)(mentalhealth|anxiety|depression|selfcare|therapy|mindful)`)},
		},

		Casual:    regexp.MustCompile(`(?i)\b(lol|lmao|haha+|yeah|yep|nah|gonna|wanna|gotta|kinda|sorta|dunno|omg|btw|imo|tbh|idk)\b`),
		Formal:    regexp.MustCompile(`(?i)\b(therefore|furthermore|however|moreover|regarding|consequently|nevertheless|accordingly|appreciate|sincerely|pursuant|henceforth)\b`),
		Emotional: regexp.MustCompile(`(?i)\b(love|hate|feel|feelings?|happy|sad|angry|excited|scared|anxious|grateful|proud|hurt|joy|heartbroken|overwhelmed|thrilled)\b`),
		Positive:  regexp.MustCompile(`(?i)\b(great|good|amazing|awesome|love|happy|excited|wonderful|blessed|grateful|beautiful|perfect|excellent|fantastic|proud|win|winning)\b`),
		Negative:  regexp.MustCompile(`(?i)\b(bad|terrible|hate|awful|sad|angry|worst|horrible|annoying|frustrated|disappointed|miserable|upset|lost|losing|broken)\b`),
		Stress:    regexp.MustCompile(`(?i)\b(stressed|overwhelmed|exhausted|burnt? ?out|can't sleep|no sleep|anxious|anxiety|panic|breaking down|too much|falling apart|drowning in)\b`),
	}
}

func countMatches(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}

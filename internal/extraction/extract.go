package extraction

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/voice-engine/internal/types"
)

// stopWords are excluded from phrase and term mining.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "had": true,
	"has": true, "have": true, "he": true, "her": true, "his": true, "i": true,
	"in": true, "is": true, "it": true, "its": true, "my": true, "no": true,
	"not": true, "of": true, "on": true, "or": true, "our": true, "she": true,
	"so": true, "that": true, "the": true, "their": true, "them": true,
	"there": true, "they": true, "this": true, "to": true, "up": true,
	"was": true, "we": true, "were": true, "will": true, "with": true,
	"you": true, "your": true, "what": true, "when": true, "which": true,
}

// rareWords is a fixed rarity lookup: words whose presence signals a more
// sophisticated vocabulary than average word length alone would suggest.
var rareWords = map[string]bool{
	"paradigm": true, "holistic": true, "synergy": true, "leverage": true,
	"ubiquitous": true, "pragmatic": true, "nuanced": true, "salient": true,
	"empirical": true, "orthogonal": true, "idiomatic": true, "canonical": true,
	"ephemeral": true, "juxtaposition": true, "quintessential": true,
	"methodology": true, "heterogeneous": true, "notwithstanding": true,
}

// transitionPhrases is the fixed inventory scanned for in the corpus.
var transitionPhrases = []string{
	"as a result", "finally", "for example", "for instance", "however",
	"in addition", "meanwhile", "moreover", "on the other hand", "that said",
	"ultimately",
}

// narrativeMarkers signal storytelling: past-tense first-person clauses and
// time anchors.
var narrativeMarkers = []string{
	"i remember", "when i", "i learned", "i realized", "last year",
	"years ago", "back then", "at the time", "one day", "we started",
	"my journey", "it all began",
}

// intensifiers raise the emotional intensity estimate.
var intensifiers = []string{
	"very", "really", "extremely", "absolutely", "incredibly", "truly",
	"deeply", "utterly",
}

// emotionLexicon maps emotion tags to marker words.
var emotionLexicon = map[string][]string{
	"excitement": {"excited", "thrilled", "can't wait", "amazing", "incredible"},
	"gratitude":  {"grateful", "thankful", "thanks", "appreciate", "honored"},
	"joy":        {"happy", "joy", "delighted", "love", "wonderful"},
	"pride":      {"proud", "milestone", "achievement", "accomplished"},
	"concern":    {"worried", "concerned", "challenge", "risk", "struggle"},
	"curiosity":  {"curious", "wonder", "question", "explore", "fascinating"},
	"confidence": {"confident", "certain", "proven", "sure", "convinced"},
}

// Extractor derives VoiceCharacteristics from content samples using the
// fixed heuristic table in its Config. It holds no mutable state, so a single
// Extractor is safe for concurrent use.
type Extractor struct {
	cfg Config
}

// NewExtractor returns an Extractor using the given heuristic constants.
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// corpusStats aggregates token-level measurements across all usable sources.
type corpusStats struct {
	words           int
	sentenceLengths []int
	exclamations    int
	questions       int
	ellipses        int
	emoji           int
	avgWordLen      float64
	rareRatio       float64
	sentences       int
	narrativeHits   int
	dataSentences   int
	intensifierHits int
	textLower       string
}

// Extract analyzes the sources and returns the merged voice characteristics.
// Aggregation is deterministic and order-independent: any permutation of the
// same source set yields identical output. Sources whose text is empty after
// trimming are skipped; if every source is skipped the call fails with an
// InsufficientDataError.
func (e *Extractor) Extract(sources []types.ContentSource) (types.VoiceCharacteristics, error) {
	usable := usableSources(sources)
	if len(usable) == 0 {
		return types.VoiceCharacteristics{}, &InsufficientDataError{
			Message: "no content sources with non-empty text",
		}
	}

	classes := make([]SourceClassification, len(usable))
	for i := range usable {
		classes[i] = e.classifySource(&usable[i])
	}

	stats := e.measure(usable)

	return types.VoiceCharacteristics{
		Tone:            pluralityTone(classes),
		Formality:       pluralityFormality(classes),
		Perspective:     pluralityPerspective(classes),
		EmotionalRange:  e.emotionalRange(stats),
		Vocabulary:      e.vocabulary(usable, stats),
		Structure:       e.structure(stats),
		ContentPatterns: e.contentPatterns(usable, stats),
	}, nil
}

// ClassifySources returns the independent per-source classifications, sorted
// by source ID. The profile builder uses these for its consistency estimate.
func (e *Extractor) ClassifySources(sources []types.ContentSource) ([]SourceClassification, error) {
	usable := usableSources(sources)
	if len(usable) == 0 {
		return nil, &InsufficientDataError{Message: "no content sources with non-empty text"}
	}
	classes := make([]SourceClassification, len(usable))
	for i := range usable {
		classes[i] = e.classifySource(&usable[i])
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].SourceID < classes[j].SourceID })
	return classes, nil
}

// usableSources filters out sources whose text is empty after trimming.
func usableSources(sources []types.ContentSource) []types.ContentSource {
	usable := make([]types.ContentSource, 0, len(sources))
	for _, s := range sources {
		if strings.TrimSpace(s.Text) != "" {
			usable = append(usable, s)
		}
	}
	return usable
}

// measure walks the corpus once and collects the raw counts every dimension
// is derived from.
func (e *Extractor) measure(sources []types.ContentSource) corpusStats {
	var stats corpusStats
	var letterTotal, rareCount int
	var lowerParts []string

	for i := range sources {
		text := sources[i].Text
		textLower := strings.ToLower(text)
		lowerParts = append(lowerParts, textLower)

		tokens := tokenize(text)
		stats.words += len(tokens)
		for _, tok := range tokens {
			letterTotal += len([]rune(tok))
			if rareWords[tok] {
				rareCount++
			}
		}

		sentences := splitSentences(text)
		stats.sentences += len(sentences)
		for _, s := range sentences {
			stats.sentenceLengths = append(stats.sentenceLengths, len(tokenize(s)))
			if strings.ContainsAny(s, "0123456789%") {
				stats.dataSentences++
			}
		}

		stats.exclamations += strings.Count(text, "!")
		stats.questions += strings.Count(text, "?")
		stats.ellipses += strings.Count(text, "…") + strings.Count(text, "...")
		stats.emoji += countEmoji(text)
		stats.narrativeHits += countOccurrences(textLower, narrativeMarkers)
		stats.intensifierHits += countOccurrences(textLower, intensifiers)
	}

	if stats.words > 0 {
		stats.avgWordLen = float64(letterTotal) / float64(stats.words)
		stats.rareRatio = float64(rareCount) / float64(stats.words)
	}
	// Sort so the concatenation order never depends on input order.
	sort.Strings(lowerParts)
	stats.textLower = strings.Join(lowerParts, "\n")
	return stats
}

// usageTier buckets a per-1000-word frequency.
func (e *Extractor) usageTier(rate float64) types.UsageTier {
	switch {
	case rate >= e.cfg.UsageFrequentMin:
		return types.UsageFrequent
	case rate >= e.cfg.UsageOccasionalMin:
		return types.UsageOccasional
	default:
		return types.UsageRare
	}
}

// structure derives the sentence structure dimension.
func (e *Extractor) structure(stats corpusStats) types.SentenceStructure {
	mean, cv := lengthDistribution(stats.sentenceLengths)

	variability := types.TierLow
	switch {
	case cv >= e.cfg.VariabilityMediumMax:
		variability = types.TierHigh
	case cv >= e.cfg.VariabilityLowMax:
		variability = types.TierMedium
	}

	var preferred []string
	if mean > 0 && mean <= e.cfg.ShortSentenceMax {
		preferred = append(preferred, "short-sentences")
	}
	if mean >= e.cfg.LongSentenceMin {
		preferred = append(preferred, "long-sentences")
	}
	if per1000(stats.questions, stats.words) >= e.cfg.UsageFrequentMin {
		preferred = append(preferred, "rhetorical-questions")
	}
	sort.Strings(preferred)

	return types.SentenceStructure{
		AverageLength: mean,
		Variability:   variability,
		PreferredStructures: preferred,
		Punctuation: types.PunctuationStyle{
			Exclamation: e.usageTier(per1000(stats.exclamations, stats.words)),
			Question:    e.usageTier(per1000(stats.questions, stats.words)),
			Ellipsis:    e.usageTier(per1000(stats.ellipses, stats.words)),
			Emoji:       e.usageTier(per1000(stats.emoji, stats.words)),
		},
	}
}

// lengthDistribution returns the mean sentence length and its coefficient of
// variation.
func lengthDistribution(lengths []int) (mean, cv float64) {
	if len(lengths) == 0 {
		return 0, 0
	}
	sum := 0
	for _, l := range lengths {
		sum += l
	}
	mean = float64(sum) / float64(len(lengths))
	if mean == 0 {
		return 0, 0
	}
	variance := 0.0
	for _, l := range lengths {
		d := float64(l) - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	cv = math.Sqrt(variance) / mean
	return mean, cv
}

// vocabulary derives the vocabulary dimension: a complexity tier from average
// word length blended with the rare-word ratio, plus mined terms and phrases.
func (e *Extractor) vocabulary(sources []types.ContentSource, stats corpusStats) types.VocabularyLevel {
	score := stats.avgWordLen + e.cfg.RareWordBoost*stats.rareRatio
	complexity := types.ComplexitySimple
	switch {
	case score >= e.cfg.ComplexitySophisticatedMin:
		complexity = types.ComplexitySophisticated
	case score >= e.cfg.ComplexityModerateMin:
		complexity = types.ComplexityModerate
	}

	return types.VocabularyLevel{
		Complexity:    complexity,
		IndustryTerms: e.industryTerms(sources),
		CommonPhrases: e.commonPhrases(sources),
		// AvoidedWords is never inferred from absence; collaborators supply it.
		AvoidedWords: []string{},
	}
}

// industryTerms mines the most frequent long, non-stopword single tokens that
// recur across the corpus.
func (e *Extractor) industryTerms(sources []types.ContentSource) []string {
	counts := map[string]int{}
	for i := range sources {
		for _, tok := range tokenize(sources[i].Text) {
			if len(tok) >= 8 && !stopWords[tok] && !hasContraction(tok) {
				counts[tok]++
			}
		}
	}
	return topByCount(counts, e.cfg.MinPhraseOccurrences, e.cfg.TopPhrases)
}

// commonPhrases mines recurring bigrams and trigrams whose edge words are not
// stopwords.
func (e *Extractor) commonPhrases(sources []types.ContentSource) []string {
	counts := map[string]int{}
	for i := range sources {
		for _, sentence := range splitSentences(sources[i].Text) {
			tokens := tokenize(sentence)
			for n := 2; n <= 3; n++ {
				for j := 0; j+n <= len(tokens); j++ {
					gram := tokens[j : j+n]
					if stopWords[gram[0]] || stopWords[gram[n-1]] {
						continue
					}
					counts[strings.Join(gram, " ")]++
				}
			}
		}
	}
	return topByCount(counts, e.cfg.MinPhraseOccurrences, e.cfg.TopPhrases)
}

// topByCount returns up to limit keys with count >= minCount, ordered by
// descending count and then lexicographically so output never depends on map
// iteration order.
func topByCount(counts map[string]int, minCount, limit int) []string {
	keys := make([]string, 0, len(counts))
	for k, c := range counts {
		if c >= minCount {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	if keys == nil {
		keys = []string{}
	}
	return keys
}

// contentPatterns derives opening/closing styles, transitions and narrative
// habits.
func (e *Extractor) contentPatterns(sources []types.ContentSource, stats corpusStats) types.ContentPatterns {
	openings := map[string]bool{}
	closings := map[string]bool{}
	for i := range sources {
		sentences := splitSentences(sources[i].Text)
		if len(sentences) == 0 {
			continue
		}
		openings[truncate(sentences[0], e.cfg.MaxStyleLen)] = true
		closings[truncate(sentences[len(sentences)-1], e.cfg.MaxStyleLen)] = true
	}

	var transitions []string
	for _, phrase := range transitionPhrases {
		if strings.Contains(stats.textLower, phrase) {
			transitions = append(transitions, phrase)
		}
	}
	if transitions == nil {
		transitions = []string{}
	}

	density := 0.0
	if stats.sentences > 0 {
		density = float64(stats.narrativeHits) / float64(stats.sentences)
	}
	anecdotes := types.TierLow
	switch {
	case density >= e.cfg.AnecdoteHighMin:
		anecdotes = types.TierHigh
	case density >= e.cfg.AnecdoteMediumMin:
		anecdotes = types.TierMedium
	}

	dataFraction := 0.0
	if stats.sentences > 0 {
		dataFraction = float64(stats.dataSentences) / float64(stats.sentences)
	}

	return types.ContentPatterns{
		OpeningStyles:        sortedKeys(openings),
		ClosingStyles:        sortedKeys(closings),
		TransitionPhrases:    transitions,
		StorytellingElements: density >= e.cfg.StorytellingDensityMin,
		DataUsage:            dataFraction >= e.cfg.DataUsageMin,
		AnecdoteFrequency:    anecdotes,
	}
}

// emotionalRange derives the emotional dimension from the emotion lexicon and
// intensifier density.
func (e *Extractor) emotionalRange(stats corpusStats) types.EmotionalRange {
	counts := map[string]int{}
	for emotion, markers := range emotionLexicon {
		if c := countOccurrences(stats.textLower, markers); c > 0 {
			counts[emotion] = c
		}
	}
	primary := topByCount(counts, 1, 3)

	intensifierDensity := per100(stats.intensifierHits, stats.words) +
		per100(stats.exclamations, stats.words)
	intensity := types.TierLow
	switch {
	case intensifierDensity >= e.cfg.IntensityHighMin:
		intensity = types.TierHigh
	case intensifierDensity >= e.cfg.IntensityMediumMin:
		intensity = types.TierMedium
	}

	variability := types.TierLow
	switch {
	case len(counts) >= 4:
		variability = types.TierHigh
	case len(counts) >= 2:
		variability = types.TierMedium
	}

	return types.EmotionalRange{
		PrimaryEmotions: primary,
		Intensity:       intensity,
		Variability:     variability,
	}
}

// sortedKeys returns map keys in lexicographic order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

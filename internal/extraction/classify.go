package extraction

import (
	"strings"

	"github.com/jonathan/voice-engine/internal/types"
)

// toneLexicon maps each tone to marker words counted per source.
var toneLexicon = map[types.Tone][]string{
	types.ToneProfessional: {
		"client", "strategy", "results", "solution", "industry", "growth",
		"deliver", "expertise", "stakeholder", "roadmap", "revenue", "process",
	},
	types.ToneConversational: {
		"think", "guess", "honestly", "chat", "talk", "wonder", "curious",
		"by the way", "anyway", "question",
	},
	types.ToneFriendly: {
		"thanks", "thank you", "love", "great", "happy", "glad", "welcome",
		"enjoy", "appreciate", "wonderful",
	},
	types.ToneAuthoritative: {
		"must", "should", "never", "always", "proven", "essential", "critical",
		"fact", "guarantee", "require",
	},
	types.ToneEducational: {
		"learn", "how to", "guide", "tip", "step", "understand", "explain",
		"example", "lesson", "framework",
	},
	types.ToneInspirational: {
		"dream", "believe", "inspire", "journey", "passion", "achieve",
		"possible", "courage", "purpose", "vision",
	},
	types.ToneHumorous: {
		"funny", "joke", "hilarious", "laugh", "ridiculous", "lol", "irony",
	},
	types.ToneCasual: {
		"hey", "stuff", "cool", "gonna", "kinda", "vibe", "awesome", "yeah",
		"super", "totally",
	},
}

// formalMarkers raise the formality score; casualMarkers lower it.
var formalMarkers = []string{
	"therefore", "furthermore", "moreover", "consequently", "accordingly",
	"regarding", "thus", "notwithstanding", "pursuant", "whom", "hereby",
	"demonstrates", "substantial", "in accordance",
}

var casualMarkers = []string{
	"hey", "gonna", "wanna", "gotta", "kinda", "sorta", "cool", "awesome",
	"yeah", "lol", "omg", "btw", "stuff", "guys", "super", "totally",
}

// Pronoun sets for perspective classification.
var (
	firstSingularPronouns = map[string]bool{"i": true, "me": true, "my": true, "mine": true, "myself": true, "i'm": true, "i've": true, "i'll": true, "i'd": true}
	firstPluralPronouns   = map[string]bool{"we": true, "us": true, "our": true, "ours": true, "ourselves": true, "we're": true, "we've": true, "we'll": true}
	secondPronouns        = map[string]bool{"you": true, "your": true, "yours": true, "yourself": true, "you're": true, "you've": true, "you'll": true}
	thirdPronouns         = map[string]bool{"he": true, "she": true, "they": true, "them": true, "their": true, "theirs": true, "it": true, "its": true, "him": true, "her": true}
)

// SourceClassification holds the independent per-source classification used
// for plurality voting and for the profile builder's consistency estimate.
type SourceClassification struct {
	SourceID    string
	Tone        types.Tone
	Formality   types.Formality
	Perspective types.Perspective
}

// classifySource classifies a single source independently.
func (e *Extractor) classifySource(src *types.ContentSource) SourceClassification {
	textLower := strings.ToLower(src.Text)
	tokens := tokenize(src.Text)

	return SourceClassification{
		SourceID:    src.ID,
		Tone:        e.classifyTone(textLower, len(tokens)),
		Formality:   e.classifyFormality(textLower, tokens),
		Perspective: classifyPerspective(tokens),
	}
}

// classifyTone picks the tone whose lexicon is densest in the text, with the
// fixed priority order breaking ties. Professional is the zero-signal default.
func (e *Extractor) classifyTone(textLower string, words int) types.Tone {
	best := types.ToneProfessional
	bestDensity := 0.0
	for _, tone := range types.TonePriority {
		density := per100(countOccurrences(textLower, toneLexicon[tone]), words)
		if density > bestDensity {
			best = tone
			bestDensity = density
		}
	}
	return best
}

// classifyFormality scores formal markers against casual markers,
// contractions and emoji, then buckets the score on fixed cutoffs.
func (e *Extractor) classifyFormality(textLower string, tokens []string) types.Formality {
	contractions := 0
	for _, tok := range tokens {
		if hasContraction(tok) {
			contractions++
		}
	}

	words := len(tokens)
	formal := per100(countOccurrences(textLower, formalMarkers), words)
	casual := per100(countOccurrences(textLower, casualMarkers), words) +
		0.5*per100(contractions, words) +
		per100(countEmoji(textLower), words)

	score := formal - casual
	switch {
	case score >= e.cfg.FormalityFormalMin:
		return types.FormalityFormal
	case score >= e.cfg.FormalitySemiFormalMin:
		return types.FormalitySemiFormal
	case score >= e.cfg.FormalityCasualMin:
		return types.FormalityCasual
	default:
		return types.FormalityVeryCasual
	}
}

// classifyPerspective counts pronoun frequencies per point of view and takes
// the maximum, with the fixed priority order breaking ties. Text without any
// first or second person pronouns reads as third person.
func classifyPerspective(tokens []string) types.Perspective {
	counts := map[types.Perspective]int{}
	for _, tok := range tokens {
		switch {
		case firstSingularPronouns[tok]:
			counts[types.PerspectiveFirstSingular]++
		case firstPluralPronouns[tok]:
			counts[types.PerspectiveFirstPlural]++
		case secondPronouns[tok]:
			counts[types.PerspectiveSecond]++
		case thirdPronouns[tok]:
			counts[types.PerspectiveThird]++
		}
	}

	best := types.PerspectiveThird
	bestCount := 0
	for _, p := range types.PerspectivePriority {
		if counts[p] > bestCount {
			best = p
			bestCount = counts[p]
		}
	}
	return best
}

// pluralityTone returns the most common tone across classifications, ties
// broken by the fixed priority order. Order-independent by construction.
func pluralityTone(classes []SourceClassification) types.Tone {
	counts := map[types.Tone]int{}
	for _, c := range classes {
		counts[c.Tone]++
	}
	best := types.ToneProfessional
	bestCount := 0
	for _, t := range types.TonePriority {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

// pluralityFormality returns the most common formality, ties broken from the
// formal end of the ladder downward.
func pluralityFormality(classes []SourceClassification) types.Formality {
	counts := map[types.Formality]int{}
	for _, c := range classes {
		counts[c.Formality]++
	}
	best := types.FormalitySemiFormal
	bestCount := 0
	for i := len(types.FormalityLadder) - 1; i >= 0; i-- {
		f := types.FormalityLadder[i]
		if counts[f] > bestCount {
			best = f
			bestCount = counts[f]
		}
	}
	return best
}

// pluralityPerspective returns the most common perspective, ties broken by
// the fixed priority order.
func pluralityPerspective(classes []SourceClassification) types.Perspective {
	counts := map[types.Perspective]int{}
	for _, c := range classes {
		counts[c.Perspective]++
	}
	best := types.PerspectiveThird
	bestCount := 0
	for _, p := range types.PerspectivePriority {
		if counts[p] > bestCount {
			best = p
			bestCount = counts[p]
		}
	}
	return best
}

package extraction

import (
	"strings"
	"unicode"
)

// splitSentences splits text into trimmed, non-empty sentences.
// Sentence boundaries are runs of terminal punctuation or blank lines.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var sentences []string
	var sb strings.Builder

	flush := func() {
		s := strings.TrimSpace(sb.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		sb.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '.', '!', '?', '…':
			// Consume the whole run of terminal punctuation.
			for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?' || runes[i+1] == '…') {
				i++
			}
			flush()
		case '\n':
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()

	return sentences
}

// tokenize lowercases text and splits it into word tokens. Apostrophes stay
// inside tokens so contractions survive as single words.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
}

// hasContraction reports whether a token contains an apostrophe (it's, can't).
func hasContraction(token string) bool {
	return strings.ContainsRune(token, '\'') || strings.ContainsRune(token, '’')
}

// countEmoji counts emoji runes in text.
func countEmoji(text string) int {
	count := 0
	for _, r := range text {
		if isEmoji(r) {
			count++
		}
	}
	return count
}

// isEmoji covers the common emoji and pictograph blocks.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0x2764: // heavy black heart
		return true
	default:
		return false
	}
}

// countOccurrences counts non-overlapping occurrences of each needle in text.
func countOccurrences(textLower string, needles []string) int {
	total := 0
	for _, n := range needles {
		total += strings.Count(textLower, n)
	}
	return total
}

// per1000 converts a raw count to a per-1000-word frequency.
func per1000(count, words int) float64 {
	if words == 0 {
		return 0
	}
	return float64(count) / float64(words) * 1000.0
}

// per100 converts a raw count to a per-100-word density.
func per100(count, words int) float64 {
	if words == 0 {
		return 0
	}
	return float64(count) / float64(words) * 100.0
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

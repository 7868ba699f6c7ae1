package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chrome selectors stripped before text extraction: markup that carries page
// furniture rather than the author's writing.
var strippedSelectors = []string{"script", "style", "nav", "header", "footer", "aside", "noscript"}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// ExtractHTMLText parses HTML and returns the visible prose with page
// furniture removed. Block elements become paragraph breaks so sentence
// splitting still works downstream.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &IngestError{Message: "failed to parse HTML", Cause: err}
	}

	for _, sel := range strippedSelectors {
		doc.Find(sel).Remove()
	}

	var sb strings.Builder
	doc.Find("p, h1, h2, h3, h4, li, blockquote").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// No block elements matched; fall back to the whole body text.
		text = doc.Text()
	}

	return CleanText(text), nil
}

// CleanText normalizes line endings and whitespace while preserving paragraph
// structure.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.Join(strings.Fields(line), " "))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

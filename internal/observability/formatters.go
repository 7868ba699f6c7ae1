// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/voice-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of a brand voice profile.
func (p *Printer) PrintProfile(profile *types.BrandVoiceProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Tone:        %s\n", profile.Characteristics.Tone))
	sb.WriteString(fmt.Sprintf("Formality:   %s\n", profile.Characteristics.Formality))
	sb.WriteString(fmt.Sprintf("Perspective: %s\n", profile.Characteristics.Perspective))
	sb.WriteString(fmt.Sprintf("Avg length:  %.2f words/sentence\n", profile.Characteristics.Structure.AverageLength))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", profile.Confidence))
	sb.WriteString(fmt.Sprintf("Samples:     %d posts, %d words\n", profile.Training.TotalPosts, profile.Training.TotalWords))

	if phrases := profile.Characteristics.Vocabulary.CommonPhrases; len(phrases) > 0 {
		sb.WriteString("\nCommon phrases:\n")
		for i, phrase := range phrases {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(phrases)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", phrase))
		}
	}

	p.printBox("Brand Voice Profile", sb.String())
}

// PrintComparison outputs a human-readable summary of a voice comparison.
func (p *Printer) PrintComparison(cmp *types.VoiceComparison) {
	if cmp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.2f\n", cmp.Overall))
	sb.WriteString(fmt.Sprintf("Tone:       %.2f\n", cmp.ToneAlignment))
	sb.WriteString(fmt.Sprintf("Vocabulary: %.2f\n", cmp.VocabularyAlignment))
	sb.WriteString(fmt.Sprintf("Structure:  %.2f\n", cmp.StructureAlignment))

	if len(cmp.Differences) > 0 {
		sb.WriteString("\nDifferences:\n")
		for i, d := range cmp.Differences {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cmp.Differences)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", d))
		}
	}

	p.printBox("Voice Alignment", sb.String())
}

// PrintSession outputs a human-readable summary of a training session.
func (p *Printer) PrintSession(s *types.VoiceTrainingSession) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n", s.Status))
	sb.WriteString("Steps:\n")
	for i, step := range s.Steps {
		marker := " "
		switch {
		case step.Completed:
			marker = "x"
		case step.Active:
			marker = ">"
		}
		sb.WriteString(fmt.Sprintf("  [%s] %d. %s\n", marker, i+1, step.Name))
	}

	p.printBox("Training Session", sb.String())
}

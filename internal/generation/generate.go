package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/voice-engine/internal/alignment"
	"github.com/jonathan/voice-engine/internal/llm"
	"github.com/jonathan/voice-engine/internal/prompts"
	"github.com/jonathan/voice-engine/internal/types"
)

// Generator wires the external text-generation collaborator to the alignment
// scorer: it builds a voice-conditioned prompt, invokes the generator, then
// scores the returned text against the target profile.
type Generator struct {
	client llm.Client
	scorer *alignment.Scorer
}

// NewGenerator returns a Generator using the given client and scorer.
func NewGenerator(client llm.Client, scorer *alignment.Scorer) *Generator {
	return &Generator{client: client, scorer: scorer}
}

// Generate produces content in the profile's voice and scores the result.
// The profile must be active: generating against an inactive profile fails
// with ProfileNotActiveError so stale voices are never used by accident.
func (g *Generator) Generate(ctx context.Context, req *types.VoiceGenerationRequest, profile *types.BrandVoiceProfile) (*types.VoiceGenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, &ProfileNotActiveError{ProfileID: profile.ID}
	}

	prompt := buildPrompt(req, profile)
	content, err := g.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &GenerateError{Message: "external generator failed", Cause: err}
	}

	comparison, err := g.scorer.Score(content, profile)
	if err != nil {
		return nil, &GenerateError{Message: "failed to score generated content", Cause: err}
	}

	return &types.VoiceGenerationResult{
		Content:                content,
		VoiceAlignment:         comparison.Overall,
		AppliedCharacteristics: AppliedCharacteristics(&profile.Characteristics),
		Improvements:           comparison.Improvements,
	}, nil
}

// buildPrompt renders the generation template with a description of the
// profile's voice plus the request constraints.
func buildPrompt(req *types.VoiceGenerationRequest, profile *types.BrandVoiceProfile) string {
	var constraints strings.Builder
	if req.TargetLength > 0 {
		constraints.WriteString(fmt.Sprintf("Target length: about %d words.\n", req.TargetLength))
	}
	if req.Instructions != "" {
		constraints.WriteString("Additional instructions: " + req.Instructions + "\n")
	}

	template := prompts.MustGet("generation.json", "generate-post")
	return prompts.Format(template, map[string]string{
		"VoiceDescription": DescribeVoice(&profile.Characteristics),
		"ContentType":      req.ContentType,
		"Prompt":           req.Prompt,
		"Constraints":      constraints.String(),
	})
}

// DescribeVoice renders a profile's characteristics as prompt-ready prose.
func DescribeVoice(chars *types.VoiceCharacteristics) string {
	template := prompts.MustGet("generation.json", "describe-voice")
	return prompts.Format(template, map[string]string{
		"Tone":          string(chars.Tone),
		"Formality":     string(chars.Formality),
		"Perspective":   string(chars.Perspective),
		"Vocabulary":    string(chars.Vocabulary.Complexity),
		"AverageLength": fmt.Sprintf("%.0f", chars.Structure.AverageLength),
		"Punctuation":   describePunctuation(&chars.Structure.Punctuation),
		"Phrases":       describePhrases(chars.Vocabulary.CommonPhrases),
	})
}

// AppliedCharacteristics names the profile dimensions the prompt conditioned on.
func AppliedCharacteristics(chars *types.VoiceCharacteristics) []string {
	applied := []string{
		"tone: " + string(chars.Tone),
		"formality: " + string(chars.Formality),
		"perspective: " + string(chars.Perspective),
		"vocabulary: " + string(chars.Vocabulary.Complexity),
		fmt.Sprintf("average sentence length: %.1f words", chars.Structure.AverageLength),
	}
	if chars.ContentPatterns.StorytellingElements {
		applied = append(applied, "storytelling elements")
	}
	if chars.ContentPatterns.DataUsage {
		applied = append(applied, "data-driven statements")
	}
	return applied
}

func describePunctuation(p *types.PunctuationStyle) string {
	return fmt.Sprintf("exclamation marks %s, questions %s, ellipses %s, emoji %s",
		p.Exclamation, p.Question, p.Ellipsis, p.Emoji)
}

func describePhrases(phrases []string) string {
	if len(phrases) == 0 {
		return "none in particular"
	}
	if len(phrases) > 5 {
		phrases = phrases[:5]
	}
	return strings.Join(phrases, "; ")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-engine/internal/alignment"
	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/generation"
	"github.com/jonathan/voice-engine/internal/llm"
	"github.com/jonathan/voice-engine/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content in a profile's voice",
	Long:  "Builds a voice-conditioned prompt from the given profile, sends it to the Gemini API, and scores the returned text against the profile. The profile must be active.",
	RunE:  runGenerate,
}

var (
	generateProfilePath  string
	generatePrompt       string
	generateContentType  string
	generateTargetLength int
	generateInstructions string
	generateOutPath      string
)

func init() {
	generateCmd.Flags().StringVar(&generateProfilePath, "profile", "", "Path to the brand voice profile JSON (required)")
	generateCmd.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "What to write about (required)")
	generateCmd.Flags().StringVarP(&generateContentType, "type", "t", "post", "Content type (post, article, email, ...)")
	generateCmd.Flags().IntVar(&generateTargetLength, "length", 0, "Approximate target word count (0 leaves it to the generator)")
	generateCmd.Flags().StringVar(&generateInstructions, "instructions", "", "Additional free-form instructions")
	generateCmd.Flags().StringVarP(&generateOutPath, "out", "o", "", "Write the generation result as JSON to this path")

	for _, flag := range []string{"profile", "prompt"} {
		if err := generateCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	profile, err := readProfileJSON(generateProfilePath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("a Gemini API key is required (set GEMINI_API_KEY or api_key in the config file)")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	scorer := alignment.NewScorer(
		extraction.NewExtractor(extraction.DefaultConfig()),
		alignment.DefaultWeights(),
	)
	generator := generation.NewGenerator(client, scorer)

	req := &types.VoiceGenerationRequest{
		Prompt:       generatePrompt,
		ProfileID:    profile.ID,
		ContentType:  generateContentType,
		TargetLength: generateTargetLength,
		Instructions: generateInstructions,
	}

	result, err := generator.Generate(ctx, req, profile)
	if err != nil {
		return err
	}

	if generateOutPath != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(generateOutPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write result to %s: %w", generateOutPath, err)
		}
	}

	fmt.Println(result.Content)
	fmt.Printf("\nVoice alignment: %.2f\n", result.VoiceAlignment)
	for _, imp := range result.Improvements {
		fmt.Printf("  - %s\n", imp)
	}
	return nil
}

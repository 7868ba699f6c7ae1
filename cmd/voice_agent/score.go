package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-engine/internal/alignment"
	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/ingestion"
	"github.com/jonathan/voice-engine/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate text against a voice profile",
	Long:  "Extracts characteristics from a candidate text and compares them against a target profile, printing per-dimension alignment scores, differences and improvement suggestions.",
	RunE:  runScore,
}

var (
	scoreInputFile   string
	scoreProfileFile string
	scoreOutputFile  string
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to candidate text file (required)")
	scoreCmd.Flags().StringVarP(&scoreProfileFile, "profile", "p", "", "Path to target profile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output comparison JSON file (optional)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a comparison summary")

	if err := scoreCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	candidate, err := os.ReadFile(scoreInputFile)
	if err != nil {
		return fmt.Errorf("failed to read candidate file: %w", err)
	}

	target, err := readProfileJSON(scoreProfileFile)
	if err != nil {
		return err
	}

	scorer := alignment.NewScorer(
		extraction.NewExtractor(extraction.DefaultConfig()),
		alignment.DefaultWeights(),
	)
	comparison, err := scorer.Score(ingestion.CleanText(string(candidate)), target)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintComparison(comparison)
	}

	if scoreOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(comparison, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal comparison: %w", err)
		}
		if err := os.WriteFile(scoreOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write comparison file: %w", err)
		}
	}

	fmt.Printf("Overall alignment: %.2f (tone %.2f, vocabulary %.2f, structure %.2f)\n",
		comparison.Overall, comparison.ToneAlignment, comparison.VocabularyAlignment, comparison.StructureAlignment)
	for _, d := range comparison.Differences {
		fmt.Printf("  - %s\n", d)
	}
	return nil
}

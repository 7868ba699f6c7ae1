package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/voice-engine/internal/db"
	"github.com/jonathan/voice-engine/internal/feedback"
	"github.com/jonathan/voice-engine/internal/observability"
	"github.com/jonathan/voice-engine/internal/types"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record feedback on generated content and adjust the profile",
	Long:  "Appends a rating (with optional suggestions) to the feedback log and folds it back into the profile: high ratings reinforce confidence, low ratings lower it and apply suggested adjustments. The feedback record is stored even when the profile does not change.",
	RunE:  runFeedback,
}

var (
	feedbackProfilePath string
	feedbackContentID   string
	feedbackRating      int
	feedbackComments    string
	feedbackSuggestions []string
	feedbackOutPath     string
	feedbackDBURL       string
)

func init() {
	feedbackCmd.Flags().StringVar(&feedbackProfilePath, "profile", "", "Path to the brand voice profile JSON (required)")
	feedbackCmd.Flags().StringVar(&feedbackContentID, "content-id", "", "Identifier of the content being rated (required)")
	feedbackCmd.Flags().IntVarP(&feedbackRating, "rating", "r", 0, "Rating from 1 to 5 (required)")
	feedbackCmd.Flags().StringVar(&feedbackComments, "comments", "", "Free-form comments")
	feedbackCmd.Flags().StringSliceVar(&feedbackSuggestions, "suggest", nil, "Adjustment suggestions, e.g. 'more casual' or 'less emoji' (repeatable)")
	feedbackCmd.Flags().StringVarP(&feedbackOutPath, "out", "o", "", "Write the adjusted profile JSON to this path (defaults to overwriting --profile)")
	feedbackCmd.Flags().StringVar(&feedbackDBURL, "db", "", "PostgreSQL URL for the feedback log (defaults to DATABASE_URL env var)")

	for _, flag := range []string{"profile", "content-id", "rating"} {
		if err := feedbackCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(_ *cobra.Command, _ []string) error {
	profile, err := readProfileJSON(feedbackProfilePath)
	if err != nil {
		return err
	}

	fb := &types.VoiceFeedback{
		ID:          uuid.New(),
		ContentID:   feedbackContentID,
		ProfileID:   profile.ID,
		Rating:      feedbackRating,
		Comments:    feedbackComments,
		Suggestions: feedbackSuggestions,
		CreatedAt:   time.Now().UTC(),
	}

	updated, err := feedback.NewIncorporator(feedback.DefaultParams()).Incorporate(profile, fb)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dbURL := feedbackDBURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}
	if dbURL != "" {
		ctx := context.Background()
		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("connecting to database failed: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating database failed: %w", err)
		}
		if err := database.AppendFeedback(ctx, fb); err != nil {
			return err
		}
		if err := database.SaveProfile(ctx, updated); err != nil {
			return err
		}
	}

	outPath := feedbackOutPath
	if outPath == "" {
		outPath = feedbackProfilePath
	}
	if err := writeProfileJSON(outPath, updated); err != nil {
		return err
	}

	fmt.Printf("Recorded feedback %s (rating %d)\n", fb.ID, fb.Rating)
	if updated.Confidence != profile.Confidence {
		fmt.Printf("Confidence: %.2f -> %.2f\n", profile.Confidence, updated.Confidence)
	}
	observability.NewPrinter(os.Stdout).PrintProfile(updated)
	return nil
}

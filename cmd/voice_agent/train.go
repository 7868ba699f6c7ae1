package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/voice-engine/internal/db"
	"github.com/jonathan/voice-engine/internal/observability"
	"github.com/jonathan/voice-engine/internal/training"
)

var trainCmd = &cobra.Command{
	Use:   "train <start|advance|pause|resume|jump|status> [step-index]",
	Short: "Drive a voice training session",
	Long:  "Creates and advances the multi-step training session for a profile. Sessions are persisted in the database; paused sessions can be resumed later, completed sessions are terminal.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTrain,
}

var (
	trainProfileID string
	trainDBURL     string
)

func init() {
	trainCmd.Flags().StringVarP(&trainProfileID, "profile-id", "p", "", "Profile UUID the session belongs to (required)")
	trainCmd.Flags().StringVar(&trainDBURL, "db", "", "PostgreSQL URL (defaults to DATABASE_URL env var)")

	if err := trainCmd.MarkFlagRequired("profile-id"); err != nil {
		panic(fmt.Sprintf("failed to mark profile-id flag as required: %v", err))
	}

	rootCmd.AddCommand(trainCmd)
}

func runTrain(_ *cobra.Command, args []string) error {
	action := args[0]

	profileID, err := uuid.Parse(trainProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile UUID %q: %w", trainProfileID, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dbURL := trainDBURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}
	if dbURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connecting to database failed: %w", err)
	}
	defer database.Close()
	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database failed: %w", err)
	}

	if action == "start" {
		if existing, err := database.GetOpenSession(ctx, profileID); err != nil {
			return err
		} else if existing != nil {
			return fmt.Errorf("profile %s already has an open session (%s, %s)", profileID, existing.ID, existing.Status)
		}
		session := training.NewSession(profileID, nil)
		if err := database.SaveSession(ctx, session); err != nil {
			return err
		}
		fmt.Printf("Started session %s\n", session.ID)
		observability.NewPrinter(os.Stdout).PrintSession(session)
		return nil
	}

	session, err := database.GetOpenSession(ctx, profileID)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("profile %s has no open session; run 'train start' first", profileID)
	}

	switch action {
	case "advance":
		err = training.Advance(session)
	case "pause":
		err = training.Pause(session)
	case "resume":
		err = training.Resume(session)
	case "jump":
		if len(args) < 2 {
			return fmt.Errorf("jump requires a step index")
		}
		var step int
		step, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step index %q: %w", args[1], err)
		}
		err = training.JumpTo(session, step)
	case "status":
		// read-only
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return err
	}

	if action != "status" {
		if err := database.SaveSession(ctx, session); err != nil {
			return err
		}
	}
	observability.NewPrinter(os.Stdout).PrintSession(session)
	return nil
}

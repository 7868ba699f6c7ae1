package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/voice-engine/internal/db"
	"github.com/jonathan/voice-engine/internal/extraction"
	"github.com/jonathan/voice-engine/internal/ingestion"
	"github.com/jonathan/voice-engine/internal/observability"
	"github.com/jonathan/voice-engine/internal/profile"
	"github.com/jonathan/voice-engine/internal/schemas"
	"github.com/jonathan/voice-engine/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build a brand voice profile from content samples",
	Long:  "Analyzes one or more sample files (plain text or HTML) and builds a BrandVoiceProfile with extracted characteristics and a confidence score.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFiles []string
	analyzeName       string
	analyzeOwner      string
	analyzeOutputFile string
	analyzeDBURL      string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringSliceVarP(&analyzeInputFiles, "in", "i", nil, "Sample file (repeatable; .html files are stripped of markup)")
	analyzeCmd.Flags().StringVarP(&analyzeName, "name", "n", "", "Profile name (required)")
	analyzeCmd.Flags().StringVar(&analyzeOwner, "owner", "", "Owner UUID (defaults to VOICE_OWNER_ID env var)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output profile JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeDBURL, "db", "", "PostgreSQL URL; when set, the profile is also persisted")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a profile summary")

	if err := analyzeCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if len(analyzeInputFiles) == 0 {
		return fmt.Errorf("at least one --in sample file is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ownerID, err := resolveOwner(analyzeOwner, cfg.OwnerID)
	if err != nil {
		return err
	}

	// Ingest sample files concurrently; order is irrelevant because
	// extraction is order-independent.
	sources := make([]types.ContentSource, 0, len(analyzeInputFiles))
	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())
	for _, path := range analyzeInputFiles {
		g.Go(func() error {
			src, err := ingestion.FromFile(path, "")
			if err != nil {
				return err
			}
			mu.Lock()
			sources = append(sources, *src)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("ingesting samples failed: %w", err)
	}

	extCfg := extraction.DefaultConfig()
	if cfg.TopPhrases > 0 {
		extCfg.TopPhrases = cfg.TopPhrases
	}
	confParams := profile.DefaultConfidenceParams()
	if cfg.MinSamples > 0 {
		confParams.MinSamples = cfg.MinSamples
	}
	builder := profile.NewBuilder(extraction.NewExtractor(extCfg), confParams)
	p, err := builder.Build(ownerID, analyzeName, sources)
	if err != nil {
		return fmt.Errorf("building profile failed: %w", err)
	}

	if analyzeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintProfile(p)
	}

	if err := writeProfileJSON(analyzeOutputFile, p); err != nil {
		return err
	}

	if analyzeDBURL != "" {
		ctx := context.Background()
		database, err := db.Connect(ctx, analyzeDBURL)
		if err != nil {
			return fmt.Errorf("connecting to database failed: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating database failed: %w", err)
		}
		if err := database.SaveProfile(ctx, p); err != nil {
			return fmt.Errorf("saving profile failed: %w", err)
		}
	}

	fmt.Printf("Profile %q built from %d samples (confidence %.2f)\n", p.Name, p.Training.TotalPosts, p.Confidence)
	return nil
}

// resolveOwner parses the owner flag, falling back to the configured owner
// (config file or VOICE_OWNER_ID).
func resolveOwner(flag, configured string) (uuid.UUID, error) {
	raw := flag
	if raw == "" {
		raw = configured
	}
	if raw == "" {
		return uuid.Nil, fmt.Errorf("owner is required (set VOICE_OWNER_ID or use --owner)")
	}
	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid owner UUID %q: %w", raw, err)
	}
	return ownerID, nil
}

// writeProfileJSON marshals a profile, validates it against the profile
// schema when available, and writes it to path.
func writeProfileJSON(path string, p *types.BrandVoiceProfile) error {
	jsonBytes, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "brand_voice_profile.schema.json")); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, jsonBytes); err != nil {
			return fmt.Errorf("profile failed schema validation: %w", err)
		}
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	return nil
}

// readProfileJSON loads a profile from a JSON file.
func readProfileJSON(path string) (*types.BrandVoiceProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var p types.BrandVoiceProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &p, nil
}

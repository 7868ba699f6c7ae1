// Package main provides the voice_agent CLI for brand voice analysis, scoring
// and voice-conditioned generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/voice-engine/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "voice_agent",
	Short: "Brand Voice Engine CLI",
	Long:  "voice_agent learns a writing voice from content samples, scores generated posts against it, and orchestrates voice training sessions.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}

// loadConfig loads the optional config file and overlays environment
// variables onto unset fields.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

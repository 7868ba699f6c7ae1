// Package llm wraps the external text-generation capability behind a small
// tiered client. The voice engine never generates prose itself; this client
// is the collaborator the orchestration layer invokes with a prompt.
package llm

// ModelTier represents the capability level requested for a generation call
type ModelTier string

const (
	// TierLite is for cheap classification-style calls
	TierLite ModelTier = "lite"
	// TierStandard is for routine drafting
	TierStandard ModelTier = "standard"
	// TierAdvanced is for voice-conditioned generation, which needs nuance
	TierAdvanced ModelTier = "advanced"
)

// Config maps model tiers to Gemini model names
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back down the tiers
// when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// Package llm provides tiered model configuration and a provider client
// abstraction for external text generation.
package llm

// ModelTier groups models by capability so callers pick a tier, not a name.
type ModelTier string

const (
	// TierLite handles cheap tasks like classification and extraction.
	TierLite ModelTier = "lite"
	// TierStandard handles copywriting with structured output.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles heavier reasoning tasks.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM backend.
type Provider string

const (
	// ProviderGemini is the Google Gemini backend.
	ProviderGemini Provider = "gemini"
)

// Config maps tiers to provider models.
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32 // copywriting wants some variation
}

// DefaultConfig returns the Gemini tier mapping used by the script generator.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.7,
	}
}

// GetModel resolves a tier to a model name, degrading standard → lite when
// the requested tier has no mapping.
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

// WithModel returns a copy of the config with one tier remapped. The receiver
// is left untouched.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Provider:    c.Provider,
		Models:      make(map[ModelTier]string, len(c.Models)+1),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}

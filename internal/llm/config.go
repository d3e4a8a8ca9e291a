// Package llm provides the model-provider abstraction behind the scoring,
// generation, and evaluation oracles.
package llm

// ModelTier selects the capability level used for a call.
type ModelTier string

const (
	// TierFast is for short deterministic outputs: numeric scores, labels.
	TierFast ModelTier = "fast"
	// TierQuality is for structured generation: question lists, feedback.
	TierQuality ModelTier = "quality"
)

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config maps tiers to provider model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierFast:    "gemini-2.5-flash-lite",
			TierQuality: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the fast tier
// when the requested tier is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierFast]; ok {
		return model
	}
	return ""
}

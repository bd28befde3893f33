// Package llm wraps the generative model that turns CV text into exposé material.
// Only structured JSON output is requested; free text never reaches callers.
package llm

const (
	// DefaultModel serves CV summaries: short output, low latency.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTemperature keeps summaries close to the source text.
	DefaultTemperature = 0.1
	// DefaultMaxOutputTokens bounds a summary plus eight bullets with room to spare.
	DefaultMaxOutputTokens = 2048
)

// Config selects the Gemini model and its sampling settings. Zero fields fall back to
// the defaults.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Model:           DefaultModel,
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.Temperature <= 0 {
		c.Temperature = def.Temperature
	}
	if c.MaxOutputTokens <= 0 {
		c.MaxOutputTokens = def.MaxOutputTokens
	}
	return c
}

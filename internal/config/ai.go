package config

import "os"

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// Analysis scores content relevance/learning value and proposes
	// concepts and recall questions (runs per request, needs to be fast)
	Analysis string `json:"analysis"`

	// Bridge generates cross-content bridge questions (optional step,
	// quality over speed)
	Bridge string `json:"bridge"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Analysis: getEnvOrDefault("GEMINI_MODEL_ANALYSIS", "gemini-2.0-flash"),
			Bridge:   getEnvOrDefault("GEMINI_MODEL_BRIDGE", "gemini-2.0-flash"),
		},
		TimeoutMS: 15000,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// Package config loads engine and service configuration from environment
// variables, with .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider names accepted in AI_MODEL_PRIORITY.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// Config is the application configuration.
type Config struct {
	Port string
	AI   AIConfig

	// AlternativesThreshold is the confidence below which alternative
	// suggestions are generated.
	AlternativesThreshold float64
}

// AIConfig configures the optional AI stages. An empty ModelPriority
// disables them entirely; the engine stays fully local.
type AIConfig struct {
	// ModelPriority is the ordered list of providers to try.
	ModelPriority []string

	GeminiModel  string
	ClaudeAPIKey string
	ClaudeModel  string

	// Timeout bounds each AI stage; providers tried within a stage share it.
	Timeout time.Duration
}

// Load reads configuration from the environment. A .env file in the current
// directory is loaded when present; a custom path may be passed instead.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	threshold, err := parseFloatEnv("ALTERNATIVES_THRESHOLD", 0.70)
	if err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("ALTERNATIVES_THRESHOLD must be in [0, 1], got %v", threshold)
	}

	timeoutSecs, err := parseFloatEnv("AI_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		AI: AIConfig{
			ModelPriority: parsePriority(os.Getenv("AI_MODEL_PRIORITY")),
			GeminiModel:   os.Getenv("GEMINI_MODEL"),
			ClaudeAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
			ClaudeModel:   os.Getenv("CLAUDE_MODEL"),
			Timeout:       time.Duration(timeoutSecs * float64(time.Second)),
		},
		AlternativesThreshold: threshold,
	}

	for _, p := range cfg.AI.ModelPriority {
		if p != ProviderGemini && p != ProviderClaude {
			return nil, fmt.Errorf("unknown provider %q in AI_MODEL_PRIORITY", p)
		}
	}

	return cfg, nil
}

// AIEnabled reports whether any AI provider is configured.
func (c *Config) AIEnabled() bool {
	return len(c.AI.ModelPriority) > 0
}

func parsePriority(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value for %s: %s", key, value)
	}
	return parsed, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application. API credentials are
// injected via environment variables or secret files, never embedded in
// source.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Spoonacular recipe search API
	SpoonacularAPIKey string
	SpoonacularAPIURL string

	// Chat-completion / image-generation API
	OpenAIAPIKey       string
	OpenAIAPIURL       string
	OpenAIImagesAPIURL string
	ChatModel          string

	// Food detector strategy: "mock" or "vision"
	DetectorStrategy string

	// Redis configuration (favorites store)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// S3 configuration for generated images (optional)
	S3Bucket       string
	S3PublicBucket bool
	AWSRegion      string
}

// Load creates a Config from environment variables. Secrets support the
// NAME_FILE convention: when NAME is unset, NAME_FILE names a file whose
// trimmed contents are used instead.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", ""),

		SpoonacularAPIKey: getSecret("SPOONACULAR_API_KEY"),
		SpoonacularAPIURL: getEnv("SPOONACULAR_API_URL", "https://api.spoonacular.com"),

		OpenAIAPIKey:       getSecret("OPENAI_API_KEY"),
		OpenAIAPIURL:       getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIImagesAPIURL: getEnv("OPENAI_IMAGES_API_URL", "https://api.openai.com/v1/images/generations"),
		ChatModel:          getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),

		DetectorStrategy: getEnv("DETECTOR_STRATEGY", "mock"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD"),
		RedisURL:      getEnv("REDIS_URL", ""),

		S3Bucket:       getEnv("S3_BUCKET_NAME", ""),
		S3PublicBucket: getEnv("S3_PUBLIC_BUCKET", "false") == "true",
		AWSRegion:      getEnv("AWS_REGION", ""),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []string
	if c.SpoonacularAPIKey == "" {
		errs = append(errs, "SPOONACULAR_API_KEY or SPOONACULAR_API_KEY_FILE must be set")
	}
	if c.OpenAIAPIKey == "" {
		errs = append(errs, "OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}
	if c.DetectorStrategy != "mock" && c.DetectorStrategy != "vision" {
		errs = append(errs, fmt.Sprintf("DETECTOR_STRATEGY must be \"mock\" or \"vision\", got %q", c.DetectorStrategy))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// getSecret reads a secret from NAME, falling back to the file named by
// NAME_FILE.
func getSecret(name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	if path := os.Getenv(name + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "spoon-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "https://api.spoonacular.com", cfg.SpoonacularAPIURL)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIAPIURL)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, "mock", cfg.DetectorStrategy)
}

func TestLoadRequiresKeys(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPOONACULAR_API_KEY")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadRejectsUnknownDetectorStrategy(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "spoon-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("DETECTOR_STRATEGY", "quantum")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DETECTOR_STRATEGY")
}

func TestGetSecretFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("  file-secret\n"), 0o600))

	t.Setenv("TEST_SECRET", "")
	t.Setenv("TEST_SECRET_FILE", path)
	assert.Equal(t, "file-secret", getSecret("TEST_SECRET"))

	// A direct value wins over the file.
	t.Setenv("TEST_SECRET", "env-secret")
	assert.Equal(t, "env-secret", getSecret("TEST_SECRET"))
}

package askpod

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// t.Setenv registers restoration of the original value.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigFromDotenv(t *testing.T) {
	clearEnv(t, "OPENAI_API_KEY", "OPENAI_BASE_URL", "ASKPOD_MODEL", "ASKPOD_DB")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "OPENAI_API_KEY=test-key\nASKPOD_MODEL=gpt-4o\nASKPOD_DB=askpod.db\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg := LoadConfig(envFile)

	// Every key in the settings source is readable from the environment
	// with its exact value.
	assert.Equal(t, "test-key", os.Getenv("OPENAI_API_KEY"))
	assert.Equal(t, "gpt-4o", os.Getenv("ASKPOD_MODEL"))
	assert.Equal(t, "askpod.db", os.Getenv("ASKPOD_DB"))

	assert.Equal(t, "test-key", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "askpod.db", cfg.DBPath)
	assert.Empty(t, cfg.OpenAIBaseURL)
}

func TestLoadConfigMissingFileFallsBackToEnvironment(t *testing.T) {
	clearEnv(t, "OPENAI_API_KEY", "OPENAI_BASE_URL", "ASKPOD_MODEL", "ASKPOD_DB")
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "env-key", cfg.OpenAIAPIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Empty(t, cfg.DBPath)
}

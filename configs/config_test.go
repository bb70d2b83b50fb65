package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8000")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("OPENAI_BASE_URL", "http://localhost:1234")
	os.Setenv("OPENAI_API_KEY", "sk-test")
	os.Setenv("OPENAI_MODEL", "test-model")
	os.Setenv("OPENAI_TIMEOUT", "30")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("OPENAI_BASE_URL")
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("OPENAI_MODEL")
	os.Unsetenv("OPENAI_TIMEOUT")
}

// TestOpenAIStructFieldsUnmarshal tests that OpenAI struct fields are properly unmarshaled from config
func TestOpenAIStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	// Initialize config - using relative path from configs directory
	InitViper(".", "test")

	cfg := GetViper()

	if cfg.OpenAI.BaseURL != "http://localhost:1234" {
		t.Errorf("Expected OpenAI.BaseURL to be http://localhost:1234, got %s", cfg.OpenAI.BaseURL)
	}

	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("Expected OpenAI.APIKey to be sk-test, got %s", cfg.OpenAI.APIKey)
	}

	if cfg.OpenAI.Model != "test-model" {
		t.Errorf("Expected OpenAI.Model to be test-model, got %s", cfg.OpenAI.Model)
	}

	if cfg.OpenAI.Timeout != 30 {
		t.Errorf("Expected OpenAI.Timeout to be 30, got %d", cfg.OpenAI.Timeout)
	}
}

// TestOpenAIZeroTimeoutUsesAdapterDefault tests that a zero timeout passes through
// When OPENAI_TIMEOUT=0 the client adapter applies its own default
func TestOpenAIZeroTimeoutUsesAdapterDefault(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("OPENAI_TIMEOUT", "0")

	InitViper(".", "test")

	cfg := GetViper()

	// The config layer passes through zero values - the adapter applies defaults
	if cfg.OpenAI.Timeout != 0 {
		t.Errorf("Expected OpenAI.Timeout to be 0, got %d", cfg.OpenAI.Timeout)
	}
}

// TestPostgresConfigAccess tests config access via configs.GetViper().Postgres
func TestPostgresConfigAccess(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()
	postgres := cfg.Postgres

	if postgres.Host != "localhost" {
		t.Errorf("Expected Postgres.Host to be localhost, got %s", postgres.Host)
	}

	if postgres.DbName != "test" {
		t.Errorf("Expected Postgres.DbName to be test, got %s", postgres.DbName)
	}

	if postgres.SSLMode {
		t.Error("Expected Postgres.SSLMode to be false")
	}
}

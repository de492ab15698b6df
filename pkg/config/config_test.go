package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		DocIntel: DocIntelConfig{Endpoint: "https://example.cognitiveservices.azure.com"},
		LLM:      LLMConfig{Provider: "openai", Model: "gpt-4o"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validConfig().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing docintel endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.DocIntel.Endpoint = ""
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing endpoint")
		}
	})

	t.Run("unknown llm provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Provider = "bedrock"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for unknown provider")
		}
	})

	t.Run("anthropic provider accepted", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Provider = "anthropic"
		cfg.LLM.Model = "claude-sonnet-4-20250514"
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Model = ""
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing model")
		}
	})
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "kpi",
		Password: "secret",
		Database: "kpi_engine",
		SSLMode:  "disable",
	}
	want := "host=localhost port=5432 user=kpi password=secret dbname=kpi_engine sslmode=disable"
	if got := db.ConnectionString(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

package config

import (
	"strings"
	"testing"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load([]string{"in.csv", "out.csv"})
	if err == nil {
		t.Fatal("expected error when no API key is provided")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error %q does not mention the env var", err)
	}
}

func TestLoadAPIKeyFromFlag(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load([]string{"--api-key", "sk-test", "in.csv", "out.csv"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q; want sk-test", cfg.APIKey)
	}
	if cfg.InputPath != "in.csv" || cfg.OutputPath != "out.csv" {
		t.Errorf("paths = %q, %q", cfg.InputPath, cfg.OutputPath)
	}
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Load([]string{"in.csv", "out.csv"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-env" {
		t.Errorf("APIKey = %q; want sk-env", cfg.APIKey)
	}
}

func TestLoadFlagBeatsEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Load([]string{"--api-key", "sk-flag", "in.csv", "out.csv"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-flag" {
		t.Errorf("APIKey = %q; want sk-flag", cfg.APIKey)
	}
}

func TestLoadRejectsWrongArgCount(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	for _, args := range [][]string{
		{},
		{"only-input.csv"},
		{"a.csv", "b.csv", "c.csv"},
	} {
		if _, err := Load(args); err == nil {
			t.Errorf("Load(%v): expected usage error", args)
		}
	}
}

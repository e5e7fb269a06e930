package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.DefaultLanguage != "de" {
		t.Fatalf("unexpected default language: %s", cfg.DefaultLanguage)
	}
	if cfg.MaxFileSizeBytes() != 20*1024*1024 {
		t.Fatalf("unexpected byte cap: %d", cfg.MaxFileSizeBytes())
	}
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "redactkit.yaml")
	body := `
default_language: en
supported_languages: [en, de]
score_threshold: 0.5
max_pages: 5
replacements:
  PERSON: "[NAME]"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REDACTKIT_MAX_PAGES", "7")
	t.Setenv("REDACTKIT_FILL", "white")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultLanguage != "en" {
		t.Fatalf("yaml not applied: %s", cfg.DefaultLanguage)
	}
	if cfg.ScoreThreshold != 0.5 {
		t.Fatalf("yaml threshold not applied: %v", cfg.ScoreThreshold)
	}
	if cfg.MaxPages != 7 {
		t.Fatalf("env override not applied: %d", cfg.MaxPages)
	}
	if cfg.Fill != "white" {
		t.Fatalf("env fill not applied: %s", cfg.Fill)
	}
	if cfg.Replacements["PERSON"] != "[NAME]" {
		t.Fatalf("replacements not applied: %+v", cfg.Replacements)
	}
	// Defaults survive partial files.
	if cfg.OCRDPI != 200 {
		t.Fatalf("default dpi lost: %d", cfg.OCRDPI)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cfg := Default()
	cfg.DefaultLanguage = "fr"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported default language")
	}

	cfg = Default()
	cfg.ScoreThreshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for threshold outside [0,1]")
	}

	cfg = Default()
	cfg.MaxPages = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero page cap")
	}
}

func TestLanguageOrDefault(t *testing.T) {
	cfg := Default()
	if got := cfg.LanguageOrDefault(""); got != "de" {
		t.Fatalf("empty tag: %s", got)
	}
	if got := cfg.LanguageOrDefault(" EN "); got != "en" {
		t.Fatalf("normalization: %s", got)
	}
}

// Package config holds the service configuration consumed by the
// anonymization pipeline. Values come from defaults, an optional YAML file,
// and REDACTKIT_* environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/redactkit/redactkit/recognize"
)

// Config is the full configuration surface of the service.
type Config struct {
	// Addr is the HTTP listen address of the daemon.
	Addr string `yaml:"addr"`
	// APIKey guards the anonymize route when non-empty; health and
	// readiness probes are always unauthenticated.
	APIKey string `yaml:"api_key"`
	// AllowedOrigins restricts CORS.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// SupportedLanguages are the language tags recognition accepts.
	SupportedLanguages []string `yaml:"supported_languages"`
	// DefaultLanguage applies when a request has no language tag.
	DefaultLanguage string `yaml:"default_language"`

	// AnonymizeKinds are the entity kinds that get redacted.
	AnonymizeKinds []recognize.Kind `yaml:"anonymize_kinds"`
	// KeepKinds documents the kinds deliberately excluded from
	// AnonymizeKinds (recognized but retained).
	KeepKinds []recognize.Kind `yaml:"keep_kinds"`

	// ScoreThreshold discards detections scoring below it.
	ScoreThreshold float64 `yaml:"score_threshold"`
	// OCRDPI is the rasterization resolution for scanned PDFs.
	OCRDPI int `yaml:"ocr_dpi"`
	// MaxFileSizeMB caps input size before any extraction starts.
	MaxFileSizeMB int `yaml:"max_file_size_mb"`
	// MaxPages caps how many scanned pages are processed per document.
	MaxPages int `yaml:"max_pages"`
	// Fill is the redaction fill policy: "black", "white", or "#rrggbb".
	Fill string `yaml:"fill"`

	// Replacements overrides per-kind replacement literals.
	Replacements map[string]string `yaml:"replacements"`
	// DefaultReplacement applies to kinds without an explicit literal.
	DefaultReplacement string `yaml:"default_replacement"`
}

// Default returns the stock configuration, mirroring the service's original
// deployment values.
func Default() Config {
	return Config{
		Addr:               ":8080",
		SupportedLanguages: []string{"de", "en"},
		DefaultLanguage:    "de",
		AnonymizeKinds: []recognize.Kind{
			recognize.KindPerson,
			recognize.KindEmail,
			recognize.KindPhone,
			recognize.KindLocation,
			recognize.KindIBAN,
			recognize.KindPostalCode,
			recognize.KindStreetAddress,
			recognize.KindAddress,
		},
		KeepKinds: []recognize.Kind{
			recognize.KindOrganization,
			recognize.KindNRP,
		},
		ScoreThreshold:     0.4,
		OCRDPI:             200,
		MaxFileSizeMB:      20,
		MaxPages:           20,
		Fill:               "black",
		DefaultReplacement: "██████████",
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// non-empty), and environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("REDACTKIT_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("REDACTKIT_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("REDACTKIT_DEFAULT_LANGUAGE"); v != "" {
		c.DefaultLanguage = v
	}
	if v := os.Getenv("REDACTKIT_SUPPORTED_LANGUAGES"); v != "" {
		c.SupportedLanguages = splitList(v)
	}
	if v := os.Getenv("REDACTKIT_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("REDACTKIT_SCORE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.ScoreThreshold = f
		}
	}
	if v := os.Getenv("REDACTKIT_OCR_DPI"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.OCRDPI = n
		}
	}
	if v := os.Getenv("REDACTKIT_MAX_FILE_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxFileSizeMB = n
		}
	}
	if v := os.Getenv("REDACTKIT_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPages = n
		}
	}
	if v := os.Getenv("REDACTKIT_FILL"); v != "" {
		c.Fill = v
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if len(c.SupportedLanguages) == 0 {
		return fmt.Errorf("config: no supported languages")
	}
	supported := false
	for _, l := range c.SupportedLanguages {
		if l == c.DefaultLanguage {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("config: default language %q not in supported languages", c.DefaultLanguage)
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return fmt.Errorf("config: score threshold %v outside [0,1]", c.ScoreThreshold)
	}
	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("config: max file size must be positive")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("config: max pages must be positive")
	}
	if c.OCRDPI <= 0 {
		return fmt.Errorf("config: ocr dpi must be positive")
	}
	return nil
}

// MaxFileSizeBytes converts the configured cap to bytes.
func (c Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// LanguageOrDefault normalizes an incoming language tag.
func (c Config) LanguageOrDefault(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if lang == "" {
		return c.DefaultLanguage
	}
	return lang
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MUDRA_CONFIG is set
//  3. env (prefix MUDRA_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MUDRA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: MUDRA_ADDR, MUDRA_HOLD_DURATION_MS, ...
	// Map env keys like MUDRA_DATA_DIR -> data_dir (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("MUDRA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "mudra_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.MinTrackingScore < 0 || c.MinTrackingScore > 1 {
		return errors.New("min_tracking_score must be within [0, 1]")
	}
	if c.TranslationTimeoutMs <= 0 {
		return errors.New("translation_timeout_ms must be positive")
	}
	if c.HoldDurationMs <= 0 {
		return errors.New("hold_duration_ms must be positive")
	}
	if c.MoodWindowSeconds <= 0 {
		return errors.New("mood_window_seconds must be positive")
	}
	return nil
}

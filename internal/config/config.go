// Package config defines the process configuration and its loading
// order: built-in defaults, then an optional YAML file named by
// MUDRA_CONFIG, then MUDRA_-prefixed environment variables.
package config

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir holds the database and other mutable state. Empty means
	// ~/.mudra.
	DataDir string `koanf:"data_dir"`

	// WebDir serves static files at / when set.
	WebDir string `koanf:"web_dir"`

	// ExtensionDir is scanned for dictionary packs. Empty means
	// DataDir/extensions.
	ExtensionDir string `koanf:"extension_dir"`

	// MinTrackingScore gates incoming frames; lower-confidence frames
	// are dropped before classification.
	MinTrackingScore float64 `koanf:"min_tracking_score"`

	// TranslationTimeoutMs bounds the quiet gap before the token
	// buffer rolls over into a phrase.
	TranslationTimeoutMs int64 `koanf:"translation_timeout_ms"`

	// HoldDurationMs is how long a pose must persist to count as held.
	HoldDurationMs int64 `koanf:"hold_duration_ms"`

	// MoodWindowSeconds bounds the dominant-mood lookback.
	MoodWindowSeconds int `koanf:"mood_window_seconds"`

	// MoodChangeThreshold is the confidence floor for reporting mood
	// transitions.
	MoodChangeThreshold float64 `koanf:"mood_change_threshold"`

	// TrendSamples is how many recent mood samples the trend considers.
	TrendSamples int `koanf:"trend_samples"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Addr:                 ":8080",
		MinTrackingScore:     0.5,
		TranslationTimeoutMs: 2000,
		HoldDurationMs:       1000,
		MoodWindowSeconds:    10,
		MoodChangeThreshold:  0.6,
		TrendSamples:         10,
	}
}

// Package session ties the per-stream pipelines together. A HandSession
// runs classification, motion detection, gesture history, and the
// translation buffer for one hand; a FaceSession runs mood
// classification and temporal aggregation for the face stream.
package session

import (
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/mood"
	"github.com/ayusman/mudra/internal/timeutil"
	"github.com/ayusman/mudra/internal/translate"
)

const (
	// DefaultHoldDurationMs is how long a static pose must persist to
	// count as held.
	DefaultHoldDurationMs = 1000

	// DefaultMoodWindowMs bounds the dominant-mood lookback.
	DefaultMoodWindowMs = 10_000

	// DefaultMoodChangeThreshold is the confidence floor for reporting
	// a mood transition.
	DefaultMoodChangeThreshold = 0.6

	// DefaultTrendSamples is how many recent samples the trend
	// classification considers.
	DefaultTrendSamples = 10
)

// Config carries the tunables for both session kinds. Zero fields fall
// back to the defaults, so a zero Config is usable.
type Config struct {
	TimeoutMs           int64
	HoldDurationMs      int64
	MoodWindowMs        int64
	MoodChangeThreshold float64
	TrendSamples        int

	Clock      timeutil.Clock
	Gesture    gesture.Config
	Motion     gesture.MotionConfig
	Mood       mood.Config
	Dictionary *translate.Dictionary
}

// DefaultConfig returns the stock session configuration with the
// builtin dictionary.
func DefaultConfig() Config {
	return Config{
		TimeoutMs:           translate.DefaultTimeoutMs,
		HoldDurationMs:      DefaultHoldDurationMs,
		MoodWindowMs:        DefaultMoodWindowMs,
		MoodChangeThreshold: DefaultMoodChangeThreshold,
		TrendSamples:        DefaultTrendSamples,
		Clock:               timeutil.RealClock{},
		Gesture:             gesture.DefaultConfig(),
		Motion:              gesture.DefaultMotionConfig(),
		Mood:                mood.DefaultConfig(),
		Dictionary:          translate.Builtin(),
	}
}

func (c Config) withDefaults() Config {
	if c.TimeoutMs <= 0 {
		c.TimeoutMs = translate.DefaultTimeoutMs
	}
	if c.HoldDurationMs <= 0 {
		c.HoldDurationMs = DefaultHoldDurationMs
	}
	if c.MoodWindowMs <= 0 {
		c.MoodWindowMs = DefaultMoodWindowMs
	}
	if c.MoodChangeThreshold <= 0 {
		c.MoodChangeThreshold = DefaultMoodChangeThreshold
	}
	if c.TrendSamples <= 0 {
		c.TrendSamples = DefaultTrendSamples
	}
	if c.Clock == nil {
		c.Clock = timeutil.RealClock{}
	}
	if c.Gesture == (gesture.Config{}) {
		c.Gesture = gesture.DefaultConfig()
	}
	if c.Motion == (gesture.MotionConfig{}) {
		c.Motion = gesture.DefaultMotionConfig()
	}
	if c.Mood == (mood.Config{}) {
		c.Mood = mood.DefaultConfig()
	}
	if c.Dictionary == nil {
		c.Dictionary = translate.Builtin()
	}
	return c
}

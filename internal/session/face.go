package session

import (
	"sync"

	"github.com/ayusman/mudra/internal/mood"
	"github.com/ayusman/mudra/internal/timeutil"
	"github.com/ayusman/mudra/internal/tracker"
)

// MoodUpdate is the per-frame output of a FaceSession: the instant
// classification plus the aggregates over the trailing history.
type MoodUpdate struct {
	Mood               mood.Mood  `json:"mood"`
	Confidence         float64    `json:"confidence"`
	Dominant           mood.Mood  `json:"dominant"`
	DominantConfidence float64    `json:"dominant_confidence"`
	Trend              mood.Trend `json:"trend"`
	Changed            bool       `json:"changed"`
	From               mood.Mood  `json:"from,omitempty"`
	Timestamp          int64      `json:"timestamp"`
}

// FaceSession classifies face frames and aggregates moods over time.
// Safe for concurrent use.
type FaceSession struct {
	mu              sync.Mutex
	classifier      *mood.Classifier
	history         *mood.History
	clock           timeutil.Clock
	windowMs        int64
	changeThreshold float64
	trendSamples    int
}

// NewFaceSession creates the mood pipeline.
func NewFaceSession(cfg Config) *FaceSession {
	cfg = cfg.withDefaults()
	return &FaceSession{
		classifier:      mood.NewClassifier(cfg.Mood),
		history:         mood.NewHistory(),
		clock:           cfg.Clock,
		windowMs:        cfg.MoodWindowMs,
		changeThreshold: cfg.MoodChangeThreshold,
		trendSamples:    cfg.TrendSamples,
	}
}

// Process classifies one face frame and folds it into the history.
func (s *FaceSession) Process(frame *tracker.FaceFrame) MoodUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UnixMilli()
	if frame.Timestamp == 0 {
		frame.Timestamp = now
	}

	sample := s.classifier.Classify(frame)
	s.history.Append(sample)

	dominant, dominantConf := s.history.Dominant(now, s.windowMs)
	change, changed := s.history.LastChange(s.changeThreshold)
	trend := s.history.TrendOf(s.trendSamples)

	update := MoodUpdate{
		Mood:               sample.Mood,
		Confidence:         sample.Confidence,
		Dominant:           dominant,
		DominantConfidence: dominantConf,
		Trend:              trend,
		Changed:            changed,
		Timestamp:          sample.Timestamp,
	}
	if changed {
		update.From = change.From
	}
	return update
}

// Dominant returns the dominant mood over the configured window ending
// now.
func (s *FaceSession) Dominant() (mood.Mood, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Dominant(s.clock.Now().UnixMilli(), s.windowMs)
}

// Clear drops the mood history.
func (s *FaceSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear()
}

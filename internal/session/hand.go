package session

import (
	"sync"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/mood"
	"github.com/ayusman/mudra/internal/timeutil"
	"github.com/ayusman/mudra/internal/tracker"
	"github.com/ayusman/mudra/internal/translate"
)

// Update is the per-frame output of a HandSession, shaped for the event
// stream.
type Update struct {
	Handedness string              `json:"handedness"`
	Labels     []gesture.Label     `json:"labels"`
	Flags      gesture.FingerFlags `json:"flags"`
	Confidence float64             `json:"confidence"`
	Held       gesture.Label       `json:"held,omitempty"`
	Token      *translate.Token    `json:"token,omitempty"`
	Sentence   string              `json:"sentence"`
	Buffer     []translate.Token   `json:"buffer"`
	Timestamp  int64               `json:"timestamp"`
}

// HandSession is the full pipeline for one hand. All methods are safe
// for concurrent use; frame order within a session is the caller's
// responsibility.
type HandSession struct {
	mu         sync.Mutex
	handedness string
	classifier *gesture.Classifier
	motion     *gesture.MotionDetector
	history    *gesture.History
	assembler  *translate.Assembler
	clock      timeutil.Clock
	holdMs     int64
	mood       mood.Mood
}

// NewHandSession creates the pipeline for the given handedness.
func NewHandSession(handedness string, cfg Config) *HandSession {
	cfg = cfg.withDefaults()
	return &HandSession{
		handedness: handedness,
		classifier: gesture.NewClassifier(cfg.Gesture),
		motion:     gesture.NewMotionDetector(cfg.Motion),
		history:    gesture.NewHistory(),
		assembler: translate.NewAssembler(cfg.Dictionary, translate.AssemblerConfig{
			TimeoutMs:  cfg.TimeoutMs,
			Handedness: handedness,
			Clock:      cfg.Clock,
		}),
		clock:  cfg.Clock,
		holdMs: cfg.HoldDurationMs,
		mood:   mood.MoodNeutral,
	}
}

// Handedness returns the hand this session tracks.
func (s *HandSession) Handedness() string {
	return s.handedness
}

// SetMood updates the mood snapshot applied to tokens produced by
// subsequent frames.
func (s *HandSession) SetMood(m mood.Mood) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == "" {
		m = mood.MoodNeutral
	}
	s.mood = m
}

// Process runs one frame through the pipeline. Every frame yields an
// event, labeled or not, so motion detection sees the full wrist path
// and the translation buffer registers activity. The returned utterance
// is non-nil when a fresh token displaced a stale buffer.
func (s *HandSession) Process(frame *tracker.HandFrame) (Update, *translate.Utterance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UnixMilli()
	if frame.Timestamp == 0 {
		frame.Timestamp = now
	}

	event := &gesture.Event{
		Handedness: s.handedness,
		Frame:      *frame,
		Flags:      s.classifier.Flags(frame),
		Timestamp:  frame.Timestamp,
	}
	if res, ok := s.classifier.Classify(frame); ok {
		event.Labels = append(event.Labels, res.Label)
		event.Confidence = res.Confidence
	}

	s.history.Append(event)
	if label, ok := s.motion.Detect(s.history.Recent(gesture.SwipeWindow)); ok {
		event.Labels = append(event.Labels, label)
	}

	held, _ := s.history.Held(now, s.holdMs)
	result, flushed := s.assembler.Process(event, s.mood)

	return Update{
		Handedness: s.handedness,
		Labels:     event.Labels,
		Flags:      event.Flags,
		Confidence: event.Confidence,
		Held:       held,
		Token:      result.Token,
		Sentence:   result.Sentence,
		Buffer:     result.Buffer,
		Timestamp:  now,
	}, flushed
}

// FlushIfIdle completes the in-flight utterance when the buffer has gone
// quiet past the timeout.
func (s *HandSession) FlushIfIdle() (*translate.Utterance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assembler.FlushIfIdle()
}

// Clear drops the gesture history and the translation buffer, returning
// whatever the buffer held.
func (s *HandSession) Clear() *translate.Utterance {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear()
	return s.assembler.Clear()
}

// Buffer returns a copy of the current translation buffer.
func (s *HandSession) Buffer() []translate.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assembler.Buffer()
}

// Sentence renders the sentence over the current buffer.
func (s *HandSession) Sentence() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assembler.Sentence()
}

// SetBuffer replaces the translation buffer, used when importing state.
func (s *HandSession) SetBuffer(tokens []translate.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assembler.SetBuffer(tokens)
}

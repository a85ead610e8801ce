// Package app wires the translation engine together: it routes tracker
// frames into per-hand and face sessions, maintains the shared
// dictionary, persists completed phrases, and publishes events.
package app

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/metrics"
	"github.com/ayusman/mudra/internal/mood"
	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/translate"
)

const (
	// DefaultMinScore gates incoming frames when the config leaves the
	// threshold unset.
	DefaultMinScore = 0.5

	// DefaultHandedness routes frames whose handedness the tracker
	// could not resolve.
	DefaultHandedness = "Right"

	// FlushInterval is how often idle buffers are checked for rollover.
	FlushInterval = 250 * time.Millisecond

	enabledSettingKey = "enabled"
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	ExtensionDir string
	MinScore     float64
	Session      session.Config
}

// Event is one message on the application event stream.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Event stream types.
const (
	EventGesture = "gesture"
	EventMood    = "mood"
	EventPhrase  = "phrase"
	EventClear   = "clear"
	EventStatus  = "status"
)

// PhraseEvent is the payload published when an utterance completes.
type PhraseEvent struct {
	ID         string            `json:"id,omitempty"`
	Sentence   string            `json:"sentence"`
	Tokens     []translate.Token `json:"tokens"`
	Handedness string            `json:"handedness,omitempty"`
	Mood       mood.Mood         `json:"mood,omitempty"`
	StartedAt  int64             `json:"started_at"`
	EndedAt    int64             `json:"ended_at"`
}

// Status summarizes the engine for the status endpoint.
type Status struct {
	Enabled      bool      `json:"enabled"`
	Hands        []string  `json:"hands"`
	Dictionary   int       `json:"dictionary"`
	DominantMood mood.Mood `json:"dominant_mood"`
}

// App orchestrates the translation engine.
type App struct {
	config Config
	dict   *translate.Dictionary
	face   *session.FaceSession

	mu       sync.RWMutex
	hands    map[string]*session.HandSession
	notify   func(Event)
	lastMood mood.Mood
	enabled  bool
	stopCh   chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.MinScore <= 0 {
		config.MinScore = DefaultMinScore
	}
	if config.Session.Dictionary == nil {
		config.Session.Dictionary = translate.Builtin()
	}

	a := &App{
		config:  config,
		dict:    config.Session.Dictionary,
		face:    session.NewFaceSession(config.Session),
		hands:   make(map[string]*session.HandSession),
		enabled: true,
	}

	// Restore the persisted enabled flag when present.
	if config.Store != nil {
		if v, err := config.Store.Settings().Get(enabledSettingKey); err == nil {
			a.enabled = v != "false"
		}
	}

	return a
}

// SetNotifier installs the event stream hook. Pass nil to disconnect.
func (a *App) SetNotifier(fn func(Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notify = fn
}

func (a *App) publish(e Event) {
	a.mu.RLock()
	fn := a.notify
	a.mu.RUnlock()
	if fn != nil {
		fn(e)
	}
}

// SetEnabled enables or disables frame processing and persists the
// choice.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	if a.config.Store != nil {
		value := "true"
		if !enabled {
			value = "false"
		}
		if err := a.config.Store.Settings().Set(enabledSettingKey, value); err != nil {
			log.Printf("Failed to persist enabled setting: %v", err)
		}
	}
	a.publish(Event{Type: EventStatus, Data: a.Status()})
}

// IsEnabled returns whether frame processing is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Status reports the current engine state.
func (a *App) Status() Status {
	a.mu.RLock()
	hands := make([]string, 0, len(a.hands))
	for h := range a.hands {
		hands = append(hands, h)
	}
	enabled := a.enabled
	a.mu.RUnlock()
	sort.Strings(hands)

	dominant, _ := a.face.Dominant()
	return Status{
		Enabled:      enabled,
		Hands:        hands,
		Dictionary:   a.dict.Len(),
		DominantMood: dominant,
	}
}

// Start launches the idle-flush loop.
func (a *App) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return
	}
	a.stopCh = make(chan struct{})
	go a.runFlushLoop(a.stopCh)

	log.Println("Translation engine started")
}

// Stop halts the idle-flush loop.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	log.Println("Translation engine stopped")
}

// runFlushLoop completes utterances whose buffers went quiet past the
// timeout even when no further frames arrive.
func (a *App) runFlushLoop(stopCh chan struct{}) {
	ticker := time.NewTicker(FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			a.flushIdle()
		}
	}
}

func (a *App) flushIdle() {
	for _, s := range a.sessions() {
		if u, ok := s.FlushIfIdle(); ok {
			a.completePhrase(u)
		}
	}
}

// Clear discards every in-flight buffer and history.
func (a *App) Clear() {
	for _, s := range a.sessions() {
		s.Clear()
	}
	a.face.Clear()
	metrics.RecordBufferClear()
	a.publish(Event{Type: EventClear})
}

// sessions returns a stable-ordered snapshot of the hand sessions.
func (a *App) sessions() []*session.HandSession {
	a.mu.RLock()
	defer a.mu.RUnlock()

	keys := make([]string, 0, len(a.hands))
	for k := range a.hands {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*session.HandSession, 0, len(keys))
	for _, k := range keys {
		out = append(out, a.hands[k])
	}
	return out
}

// handSession returns the session for the handedness, creating it on
// first use.
func (a *App) handSession(handedness string) *session.HandSession {
	if handedness == "" {
		handedness = DefaultHandedness
	}

	a.mu.RLock()
	s, ok := a.hands[handedness]
	a.mu.RUnlock()
	if ok {
		return s
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.hands[handedness]; ok {
		return s
	}
	s = session.NewHandSession(handedness, a.config.Session)
	s.SetMood(a.lastMood)
	a.hands[handedness] = s
	return s
}

// setMood records the most recent face mood and pushes it into every
// hand session so the next tokens pick it up.
func (a *App) setMood(m mood.Mood) {
	a.mu.Lock()
	a.lastMood = m
	hands := make([]*session.HandSession, 0, len(a.hands))
	for _, s := range a.hands {
		hands = append(hands, s)
	}
	a.mu.Unlock()

	for _, s := range hands {
		s.SetMood(m)
	}
}

package translate

import (
	"strings"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/mood"
	"github.com/ayusman/mudra/internal/timeutil"
)

// DefaultTimeoutMs is the inter-event gap after which the accumulated
// buffer is considered abandoned.
const DefaultTimeoutMs = 2000

// Token is one translated gesture. The mood is a snapshot of the face
// stream at creation time and conditions sentence decoration later.
type Token struct {
	Text       string    `json:"text"`
	Kind       Kind      `json:"kind"`
	Handedness string    `json:"handedness,omitempty"`
	Mood       mood.Mood `json:"mood,omitempty"`
	Confidence float64   `json:"confidence"`
	Timestamp  int64     `json:"timestamp"` // Unix milliseconds
}

// Utterance is a completed buffer displaced by a timeout rollover, an
// idle flush, or an explicit clear.
type Utterance struct {
	Sentence   string  `json:"sentence"`
	Tokens     []Token `json:"tokens"`
	Handedness string  `json:"handedness,omitempty"`
	StartedAt  int64   `json:"started_at"`
	EndedAt    int64   `json:"ended_at"`
}

// Result is the per-call view of the assembler: the token this call
// produced (nil when the event mapped to nothing), the sentence over the
// current buffer, and a copy of the buffer itself.
type Result struct {
	Token    *Token  `json:"token,omitempty"`
	Sentence string  `json:"sentence"`
	Buffer   []Token `json:"buffer"`
}

// AssemblerConfig configures an Assembler. Zero values fall back to
// DefaultTimeoutMs and the real clock.
type AssemblerConfig struct {
	TimeoutMs  int64
	Handedness string
	Clock      timeutil.Clock
}

// Assembler accumulates translated tokens into a buffer and rolls the
// buffer over into utterances across quiet gaps. It is not goroutine
// safe; the owning session serializes access.
type Assembler struct {
	dict       *Dictionary
	timeoutMs  int64
	handedness string
	clock      timeutil.Clock

	buffer    []Token
	lastEvent int64 // Unix milliseconds of the last Process call
}

// NewAssembler creates an Assembler over the given dictionary.
func NewAssembler(dict *Dictionary, cfg AssemblerConfig) *Assembler {
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = DefaultTimeoutMs
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.RealClock{}
	}
	return &Assembler{
		dict:       dict,
		timeoutMs:  cfg.TimeoutMs,
		handedness: cfg.Handedness,
		clock:      cfg.Clock,
		lastEvent:  cfg.Clock.Now().UnixMilli(),
	}
}

// Process consumes one gesture event under the given mood snapshot.
// The last-event time advances on every call, translated or not, so a
// visible hand holding an unrecognized pose keeps the buffer alive; only
// a gap without calls trips the timeout. When a translated token arrives
// past the timeout, the stale buffer is displaced into an Utterance
// first, then the token starts a fresh one.
func (a *Assembler) Process(e *gesture.Event, m mood.Mood) (Result, *Utterance) {
	now := a.clock.Now().UnixMilli()

	token := a.translate(e, m, now)
	if token == nil {
		a.lastEvent = now
		return a.result(nil), nil
	}

	var flushed *Utterance
	if len(a.buffer) > 0 && now-a.lastEvent > a.timeoutMs {
		flushed = a.utterance()
		a.buffer = a.buffer[:0]
	}

	a.buffer = append(a.buffer, *token)
	a.lastEvent = now
	return a.result(token), flushed
}

// FlushIfIdle displaces the buffer into an Utterance when it has gone
// quiet past the timeout. Used by the orchestrator to complete
// utterances whose signer simply stopped.
func (a *Assembler) FlushIfIdle() (*Utterance, bool) {
	if len(a.buffer) == 0 {
		return nil, false
	}
	if a.clock.Now().UnixMilli()-a.lastEvent <= a.timeoutMs {
		return nil, false
	}
	u := a.utterance()
	a.buffer = a.buffer[:0]
	return u, true
}

// Clear discards the buffer and returns what it held, if anything.
func (a *Assembler) Clear() *Utterance {
	if len(a.buffer) == 0 {
		return nil
	}
	u := a.utterance()
	a.buffer = a.buffer[:0]
	a.lastEvent = a.clock.Now().UnixMilli()
	return u
}

// Buffer returns a copy of the accumulated tokens.
func (a *Assembler) Buffer() []Token {
	out := make([]Token, len(a.buffer))
	copy(out, a.buffer)
	return out
}

// Sentence renders the sentence over the current buffer.
func (a *Assembler) Sentence() string {
	return BuildSentence(a.buffer)
}

// Len returns the number of buffered tokens.
func (a *Assembler) Len() int {
	return len(a.buffer)
}

// SetBuffer replaces the buffer, used when restoring a snapshot. The
// last-event time resets to now so the restored buffer is not instantly
// displaced.
func (a *Assembler) SetBuffer(tokens []Token) {
	a.buffer = append(a.buffer[:0], tokens...)
	a.lastEvent = a.clock.Now().UnixMilli()
}

func (a *Assembler) translate(e *gesture.Event, m mood.Mood, now int64) *Token {
	if e == nil {
		return nil
	}
	label := e.Primary()
	if label == "" {
		return nil
	}
	entry, ok := a.dict.Lookup(label)
	if !ok {
		return nil
	}

	ts := e.Timestamp
	if ts == 0 {
		ts = now
	}
	handedness := e.Handedness
	if handedness == "" {
		handedness = a.handedness
	}
	return &Token{
		Text:       entry.Text,
		Kind:       entry.Kind,
		Handedness: handedness,
		Mood:       m,
		Confidence: e.Confidence,
		Timestamp:  ts,
	}
}

func (a *Assembler) result(token *Token) Result {
	return Result{
		Token:    token,
		Sentence: BuildSentence(a.buffer),
		Buffer:   a.Buffer(),
	}
}

func (a *Assembler) utterance() *Utterance {
	tokens := a.Buffer()
	return &Utterance{
		Sentence:   BuildSentence(tokens),
		Tokens:     tokens,
		Handedness: a.handedness,
		StartedAt:  tokens[0].Timestamp,
		EndedAt:    tokens[len(tokens)-1].Timestamp,
	}
}

// BuildSentence renders tokens into a sentence: consecutive tokens with
// identical text collapse into one, word tokens carrying a non-neutral
// mood gain their marker prefix, and the survivors join with single
// spaces. It is a pure function; the assembler methods are the stateful
// counterpart.
func BuildSentence(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tokens))
	prev := ""
	for _, t := range tokens {
		if t.Text == prev {
			continue
		}
		prev = t.Text
		parts = append(parts, decorate(t))
	}
	return strings.Join(parts, " ")
}

func decorate(t Token) string {
	if t.Kind != KindWord {
		return t.Text
	}
	marker := MoodMarker(t.Mood)
	if marker == "" {
		return t.Text
	}
	return marker + t.Text
}

// MoodMarker returns the marker prefixed to word tokens signed under the
// given mood. Neutral and unknown moods carry no marker.
func MoodMarker(m mood.Mood) string {
	switch m {
	case mood.MoodHappy:
		return "😊"
	case mood.MoodSad:
		return "😢"
	case mood.MoodAngry:
		return "😠"
	case mood.MoodSurprised:
		return "😮"
	case mood.MoodFearful:
		return "😨"
	case mood.MoodDisgusted:
		return "🤢"
	}
	return ""
}

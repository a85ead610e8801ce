package app

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ayusman/mudra/internal/metrics"
	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tracker"
	"github.com/ayusman/mudra/internal/translate"
)

// PacketResult carries the per-frame updates produced by one tracker
// packet.
type PacketResult struct {
	Hands []session.Update    `json:"hands,omitempty"`
	Mood  *session.MoodUpdate `json:"mood,omitempty"`
}

// ProcessPacket routes the packet's frames into their sessions. Face
// frames run first so the mood they establish conditions the tokens of
// the same packet. Frames below the tracking score threshold are
// dropped.
func (a *App) ProcessPacket(p *tracker.Packet) *PacketResult {
	metrics.RecordPacket()
	if p == nil || !a.IsEnabled() {
		return nil
	}

	start := time.Now()
	result := &PacketResult{}

	for i := range p.Faces {
		frame := &p.Faces[i]
		if frame.Score < a.config.MinScore {
			metrics.RecordFrameDropped()
			continue
		}
		update := a.face.Process(frame)
		metrics.RecordFaceFrame()
		metrics.RecordMood(string(update.Mood))
		a.setMood(update.Mood)
		result.Mood = &update
		a.publish(Event{Type: EventMood, Data: update})
	}

	for i := range p.Hands {
		frame := &p.Hands[i]
		if frame.Score < a.config.MinScore {
			metrics.RecordFrameDropped()
			continue
		}
		s := a.handSession(frame.Handedness)
		update, flushed := s.Process(frame)
		metrics.RecordHandFrame()
		for _, label := range update.Labels {
			metrics.RecordGesture(string(label))
		}
		if update.Token != nil {
			metrics.RecordToken()
		}
		if flushed != nil {
			a.completePhrase(flushed)
		}
		result.Hands = append(result.Hands, update)
		a.publish(Event{Type: EventGesture, Data: update})
	}

	metrics.RecordFrameDuration(time.Since(start).Seconds() * 1000)
	return result
}

// completePhrase persists a finished utterance and publishes it on the
// event stream. Storage failures are logged, never fatal.
func (a *App) completePhrase(u *translate.Utterance) {
	dominant, _ := a.face.Dominant()

	event := PhraseEvent{
		Sentence:   u.Sentence,
		Tokens:     u.Tokens,
		Handedness: u.Handedness,
		Mood:       dominant,
		StartedAt:  u.StartedAt,
		EndedAt:    u.EndedAt,
	}

	if a.config.Store != nil {
		tokens, err := json.Marshal(u.Tokens)
		if err != nil {
			tokens = []byte("[]")
		}
		phrase := &store.Phrase{
			Handedness: u.Handedness,
			Sentence:   u.Sentence,
			Tokens:     string(tokens),
			Mood:       string(dominant),
			StartedAt:  u.StartedAt,
			EndedAt:    u.EndedAt,
		}
		if err := a.config.Store.Phrases().Create(phrase); err != nil {
			log.Printf("Failed to persist phrase %q: %v", u.Sentence, err)
		} else {
			event.ID = phrase.ID
		}
	}

	metrics.RecordPhrase()
	a.publish(Event{Type: EventPhrase, Data: event})
}

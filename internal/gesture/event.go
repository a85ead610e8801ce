package gesture

import "github.com/ayusman/mudra/internal/tracker"

// Event is one classified frame observation. Every frame that clears the
// tracking score gate produces an event; the label set may be empty when
// no rule matched, carries at most one static label, and may gain one
// dynamic label when the frame completes a motion gesture. Events are
// immutable once fully assembled.
type Event struct {
	Labels     []Label           `json:"labels"`
	Handedness string            `json:"handedness"`
	Frame      tracker.HandFrame `json:"-"`
	Flags      FingerFlags       `json:"flags"`
	Confidence float64           `json:"confidence"`
	Timestamp  int64             `json:"timestamp"` // Unix milliseconds
}

// StaticLabel returns the event's static pose label, or "" when the
// frame matched no pose rule.
func (e *Event) StaticLabel() Label {
	for _, l := range e.Labels {
		if !IsDynamic(l) {
			return l
		}
	}
	return ""
}

// DynamicLabel returns the event's motion label, or "" when the frame
// completed no motion gesture.
func (e *Event) DynamicLabel() Label {
	for _, l := range e.Labels {
		if IsDynamic(l) {
			return l
		}
	}
	return ""
}

// Primary returns the label the translation layer should act on: the
// dynamic label when present, since the static pose was already visible
// on earlier frames, otherwise the static label.
func (e *Event) Primary() Label {
	if l := e.DynamicLabel(); l != "" {
		return l
	}
	return e.StaticLabel()
}

package gesture

// HistorySize is the bounded capacity of the gesture history; appending
// past it evicts the oldest entry.
const HistorySize = 10

// HeldWindow is the number of trailing entries a held-pose check
// inspects.
const HeldWindow = 5

// History is a bounded FIFO of gesture events, oldest first. It is not
// goroutine safe; the owning session serializes access.
type History struct {
	events []*Event
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{events: make([]*Event, 0, HistorySize)}
}

// Append adds an event, evicting the oldest entry at capacity.
func (h *History) Append(e *Event) {
	if e == nil {
		return
	}
	if len(h.events) >= HistorySize {
		copy(h.events, h.events[1:])
		h.events[len(h.events)-1] = e
		return
	}
	h.events = append(h.events, e)
}

// Len returns the number of buffered events.
func (h *History) Len() int {
	return len(h.events)
}

// Recent returns up to n trailing events, oldest first. The returned
// slice is a copy; the events it points to are shared.
func (h *History) Recent(n int) []*Event {
	if n <= 0 || len(h.events) == 0 {
		return nil
	}
	if n > len(h.events) {
		n = len(h.events)
	}
	out := make([]*Event, n)
	copy(out, h.events[len(h.events)-n:])
	return out
}

// Clear discards all buffered events.
func (h *History) Clear() {
	h.events = h.events[:0]
}

// Held reports the static label the hand has been holding: the last
// HeldWindow entries must share one static label and the span from the
// oldest of them to now must reach duration. Both arguments are in
// milliseconds.
func (h *History) Held(now, duration int64) (Label, bool) {
	if len(h.events) < HeldWindow {
		return "", false
	}
	window := h.events[len(h.events)-HeldWindow:]

	label := window[0].StaticLabel()
	if label == "" {
		return "", false
	}
	for _, e := range window[1:] {
		if e.StaticLabel() != label {
			return "", false
		}
	}

	if now-window[0].Timestamp < duration {
		return "", false
	}
	return label, true
}

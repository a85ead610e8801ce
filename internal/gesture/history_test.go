package gesture

import "testing"

func staticEvent(label Label, ts int64) *Event {
	return &Event{
		Labels:     []Label{label},
		Handedness: "Right",
		Confidence: 0.8,
		Timestamp:  ts,
	}
}

func TestHistory_AppendEvicts(t *testing.T) {
	h := NewHistory()

	for i := 0; i < HistorySize+2; i++ {
		h.Append(staticEvent(LabelFist, int64(i)))
	}

	if h.Len() != HistorySize {
		t.Fatalf("Len = %d, want %d", h.Len(), HistorySize)
	}

	recent := h.Recent(HistorySize)
	if got := recent[0].Timestamp; got != 2 {
		t.Errorf("oldest surviving timestamp = %d, want 2", got)
	}
	if got := recent[len(recent)-1].Timestamp; got != HistorySize+1 {
		t.Errorf("newest timestamp = %d, want %d", got, HistorySize+1)
	}
}

func TestHistory_Recent(t *testing.T) {
	h := NewHistory()

	if got := h.Recent(5); got != nil {
		t.Errorf("Recent on empty history = %v, want nil", got)
	}

	for i := 0; i < 3; i++ {
		h.Append(staticEvent(LabelPeace, int64(i)))
	}

	if got := h.Recent(5); len(got) != 3 {
		t.Errorf("Recent(5) with 3 entries returned %d", len(got))
	}
	if got := h.Recent(2); len(got) != 2 || got[0].Timestamp != 1 {
		t.Errorf("Recent(2) = %d entries starting at %d, want 2 starting at 1", len(got), got[0].Timestamp)
	}
}

func TestHistory_Held(t *testing.T) {
	newRun := func(label Label) *History {
		h := NewHistory()
		for i := 0; i < HeldWindow; i++ {
			h.Append(staticEvent(label, int64(i)*100))
		}
		return h
	}

	t.Run("span reaching the duration reports the label", func(t *testing.T) {
		h := newRun(LabelOpenHand)
		label, ok := h.Held(1000, 1000)
		if !ok {
			t.Fatal("expected a held pose")
		}
		if label != LabelOpenHand {
			t.Errorf("Held = %s, want %s", label, LabelOpenHand)
		}
	})

	t.Run("span short of the duration reports nothing", func(t *testing.T) {
		h := newRun(LabelOpenHand)
		if _, ok := h.Held(900, 1000); ok {
			t.Error("expected no held pose at 900ms span")
		}
	})

	t.Run("mixed labels break the run", func(t *testing.T) {
		h := newRun(LabelOpenHand)
		h.Append(staticEvent(LabelFist, 500))
		if _, ok := h.Held(2000, 1000); ok {
			t.Error("expected no held pose across mixed labels")
		}
	})

	t.Run("unclassified frames break the run", func(t *testing.T) {
		h := newRun(LabelOpenHand)
		h.Append(&Event{Handedness: "Right", Timestamp: 500})
		if _, ok := h.Held(2000, 1000); ok {
			t.Error("expected no held pose across an unclassified frame")
		}
	})

	t.Run("too few entries report nothing", func(t *testing.T) {
		h := NewHistory()
		for i := 0; i < HeldWindow-1; i++ {
			h.Append(staticEvent(LabelOpenHand, int64(i)*100))
		}
		if _, ok := h.Held(5000, 1000); ok {
			t.Error("expected no held pose with a short history")
		}
	})
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory()
	h.Append(staticEvent(LabelFist, 0))
	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", h.Len())
	}
}

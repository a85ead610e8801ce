package tracker

import "testing"

func TestParsePacket(t *testing.T) {
	t.Run("decodes hands and faces", func(t *testing.T) {
		data := []byte(`{
			"timestamp": 1700000000000,
			"hands": [{
				"handedness": "Right",
				"score": 0.92,
				"points": [{"x": 0.5, "y": 0.8}, {"x": 0.55, "y": 0.75}]
			}],
			"faces": [{"score": 0.88, "points": [{"x": 0.5, "y": 0.4}]}]
		}`)

		p, err := ParsePacket(data)
		if err != nil {
			t.Fatalf("ParsePacket: %v", err)
		}

		if len(p.Hands) != 1 || len(p.Faces) != 1 {
			t.Fatalf("got %d hands, %d faces, want 1 and 1", len(p.Hands), len(p.Faces))
		}
		if p.Hands[0].Handedness != "Right" {
			t.Errorf("handedness = %q, want Right", p.Hands[0].Handedness)
		}
		if p.Hands[0].Points[Wrist].X != 0.5 {
			t.Errorf("wrist x = %f, want 0.5", p.Hands[0].Points[Wrist].X)
		}
		// Unlisted landmarks decode to the zero value
		if !p.Hands[0].Points[IndexTip].IsZero() {
			t.Error("expected unlisted landmark to be zero-valued")
		}
	})

	t.Run("packet timestamp propagates to frames", func(t *testing.T) {
		data := []byte(`{"timestamp": 42000, "hands": [{"handedness": "Left", "score": 0.9}]}`)

		p, err := ParsePacket(data)
		if err != nil {
			t.Fatalf("ParsePacket: %v", err)
		}
		if p.Hands[0].Timestamp != 42000 {
			t.Errorf("hand timestamp = %d, want 42000", p.Hands[0].Timestamp)
		}
	})

	t.Run("frame timestamp wins over packet timestamp", func(t *testing.T) {
		data := []byte(`{"timestamp": 42000, "faces": [{"score": 0.9, "timestamp": 41970}]}`)

		p, err := ParsePacket(data)
		if err != nil {
			t.Fatalf("ParsePacket: %v", err)
		}
		if p.Faces[0].Timestamp != 41970 {
			t.Errorf("face timestamp = %d, want 41970", p.Faces[0].Timestamp)
		}
	})

	t.Run("malformed payload returns error", func(t *testing.T) {
		if _, err := ParsePacket([]byte(`{"hands": "nope"}`)); err == nil {
			t.Error("expected error for malformed packet")
		}
	})
}

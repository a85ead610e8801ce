package translate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayusman/mudra/internal/mood"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	d := Builtin()
	a, _ := newTestAssembler()
	a.SetBuffer([]Token{
		{Text: "HELLO", Kind: KindWord, Mood: mood.MoodHappy, Timestamp: 10},
		{Text: "YOU", Kind: KindWord, Timestamp: 20},
	})

	snap := TakeSnapshot(d, a)
	if snap.Sentence != "😊HELLO YOU" {
		t.Errorf("Sentence = %q, want %q", snap.Sentence, "😊HELLO YOU")
	}

	data, err := MarshalSnapshot(snap)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}

	if diff := cmp.Diff(snap, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_Restore(t *testing.T) {
	snap := Snapshot{
		Entries: []Entry{{Tag: "SALUTE", Text: "RESPECT", Kind: KindWord}},
		Buffer:  []Token{{Text: "RESPECT", Kind: KindWord, Timestamp: 5}},
	}

	d := Builtin()
	a, _ := newTestAssembler()
	Restore(snap, d, a)

	if _, ok := d.Lookup("SALUTE"); !ok {
		t.Error("restored entry missing from dictionary")
	}
	if _, ok := d.Lookup("OPEN_HAND"); !ok {
		t.Error("restore dropped pre-existing entries")
	}
	if a.Sentence() != "RESPECT" {
		t.Errorf("Sentence() = %q, want %q", a.Sentence(), "RESPECT")
	}
}

func TestUnmarshalSnapshot_Malformed(t *testing.T) {
	if _, err := UnmarshalSnapshot([]byte("{not json")); err == nil {
		t.Error("UnmarshalSnapshot accepted malformed input")
	}
}

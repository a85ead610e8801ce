package translate

import (
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
)

func TestDictionary_Lookup(t *testing.T) {
	d := Builtin()

	tests := []struct {
		tag      gesture.Label
		wantText string
		wantKind Kind
	}{
		{gesture.LabelFist, "A", KindLetter},
		{gesture.LabelOpenHand, "HELLO", KindWord},
		{gesture.LabelPeace, "V", KindLetter},
		{gesture.LabelPointing, "YOU", KindWord},
		{gesture.LabelThumbsUp, "YES", KindWord},
		{gesture.LabelOK, "OK", KindWord},
		{gesture.LabelSwipeRight, "NEXT", KindWord},
		{gesture.LabelSwipeLeft, "BACK", KindWord},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			e, ok := d.Lookup(tt.tag)
			if !ok {
				t.Fatalf("Lookup(%s) missing", tt.tag)
			}
			if e.Text != tt.wantText {
				t.Errorf("Lookup(%s).Text = %q, want %q", tt.tag, e.Text, tt.wantText)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Lookup(%s).Kind = %q, want %q", tt.tag, e.Kind, tt.wantKind)
			}
		})
	}

	if _, ok := d.Lookup("UNKNOWN_TAG"); ok {
		t.Error("Lookup(UNKNOWN_TAG) = ok, want miss")
	}
}

func TestDictionary_ReverseLookup(t *testing.T) {
	d := NewDictionary(DefaultEntries())

	t.Run("word is case insensitive", func(t *testing.T) {
		for _, text := range []string{"HELLO", "hello", "Hello"} {
			e, ok := d.Word(text)
			if !ok {
				t.Fatalf("Word(%q) missing", text)
			}
			if e.Tag != gesture.LabelOpenHand {
				t.Errorf("Word(%q).Tag = %s, want %s", text, e.Tag, gesture.LabelOpenHand)
			}
		}
	})

	t.Run("letter prefers alphabet entries", func(t *testing.T) {
		// Both FIST and LETTER_A map to "A"; the alphabet is merged
		// later and owns the reverse slot.
		e, ok := d.Letter("a")
		if !ok {
			t.Fatal("Letter(a) missing")
		}
		if e.Tag != gesture.Label("LETTER_A") {
			t.Errorf("Letter(a).Tag = %s, want LETTER_A", e.Tag)
		}
	})

	t.Run("word misses letters", func(t *testing.T) {
		if _, ok := d.Word("V"); ok {
			t.Error("Word(V) = ok, want miss for a letter entry")
		}
	})
}

func TestDictionary_Merge(t *testing.T) {
	d := Builtin()
	before := d.Len()

	d.Merge([]Entry{
		{Tag: "NAMASTE", Text: "NAMASTE", Kind: KindWord},
		{Tag: gesture.LabelOpenHand, Text: "HI", Kind: KindWord},
		{Tag: "", Text: "IGNORED", Kind: KindWord},
		{Tag: "NO_TEXT", Text: "", Kind: KindWord},
		{Tag: "BAD_KIND", Text: "X", Kind: "phrase"},
	})

	if got := d.Len(); got != before+1 {
		t.Errorf("Len() = %d, want %d", got, before+1)
	}

	if e, ok := d.Lookup("NAMASTE"); !ok || e.Text != "NAMASTE" {
		t.Errorf("Lookup(NAMASTE) = %+v, %v, want merged entry", e, ok)
	}
	if e, ok := d.Lookup(gesture.LabelOpenHand); !ok || e.Text != "HI" {
		t.Errorf("Lookup(OPEN_HAND).Text = %q, want overwrite to HI", e.Text)
	}
	if e, ok := d.Word("hi"); !ok || e.Tag != gesture.LabelOpenHand {
		t.Errorf("Word(hi) = %+v, %v, want OPEN_HAND", e, ok)
	}
	if _, ok := d.Lookup("BAD_KIND"); ok {
		t.Error("Lookup(BAD_KIND) = ok, want invalid kind skipped")
	}
}

func TestDictionary_Delete(t *testing.T) {
	t.Run("removes entry and reverse slot", func(t *testing.T) {
		d := Builtin()
		d.Delete(gesture.LabelOpenHand)

		if _, ok := d.Lookup(gesture.LabelOpenHand); ok {
			t.Error("Lookup(OPEN_HAND) = ok after delete")
		}
		if _, ok := d.Word("hello"); ok {
			t.Error("Word(hello) = ok after delete")
		}
	})

	t.Run("keeps reverse slot owned by another tag", func(t *testing.T) {
		d := NewDictionary(DefaultEntries())
		d.Delete(gesture.LabelFist)

		if _, ok := d.Lookup(gesture.LabelFist); ok {
			t.Error("Lookup(FIST) = ok after delete")
		}
		// LETTER_A owns the "a" slot, so FIST's removal must not
		// take it down.
		if e, ok := d.Letter("a"); !ok || e.Tag != gesture.Label("LETTER_A") {
			t.Errorf("Letter(a) = %+v, %v, want LETTER_A to survive", e, ok)
		}
	})

	t.Run("unknown tag is a no-op", func(t *testing.T) {
		d := Builtin()
		before := d.Len()
		d.Delete("UNKNOWN_TAG")
		if got := d.Len(); got != before {
			t.Errorf("Len() = %d after deleting unknown tag, want %d", got, before)
		}
	})
}

func TestDictionary_Replace(t *testing.T) {
	d := Builtin()
	d.Replace([]Entry{{Tag: "SALUTE", Text: "RESPECT", Kind: KindWord}})

	if d.Len() != 1 {
		t.Errorf("Len() = %d after replace, want 1", d.Len())
	}
	if _, ok := d.Lookup(gesture.LabelOpenHand); ok {
		t.Error("Lookup(OPEN_HAND) = ok, want old contents gone")
	}
	if _, ok := d.Word("hello"); ok {
		t.Error("Word(hello) = ok, want old reverse slots gone")
	}
	if _, ok := d.Word("respect"); !ok {
		t.Error("Word(respect) missing after replace")
	}
}

func TestDictionary_Entries(t *testing.T) {
	d := Builtin()
	entries := d.Entries()

	if len(entries) != d.Len() {
		t.Fatalf("Entries() returned %d entries, want %d", len(entries), d.Len())
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Tag >= entries[i].Tag {
			t.Fatalf("Entries() not sorted: %s before %s", entries[i-1].Tag, entries[i].Tag)
		}
	}
}

func TestDefaultEntries_CoverAlphabet(t *testing.T) {
	d := NewDictionary(DefaultEntries())
	for r := 'A'; r <= 'Z'; r++ {
		if _, ok := d.Letter(string(r)); !ok {
			t.Errorf("Letter(%c) missing from default entries", r)
		}
	}
}

package translate

import "github.com/ayusman/mudra/internal/gesture"

// Builtin returns the minimal dictionary the engine falls back to when
// no external dictionary can be loaded. Load failures are never fatal;
// this table keeps translation alive.
func Builtin() *Dictionary {
	return NewDictionary(builtinEntries())
}

func builtinEntries() []Entry {
	return []Entry{
		{Tag: gesture.LabelFist, Text: "A", Kind: KindLetter,
			Description: "Closed fist, thumb resting against the side of the index finger"},
		{Tag: gesture.LabelOpenHand, Text: "HELLO", Kind: KindWord,
			Description: "Open palm raised, fingers spread, palm facing out"},
		{Tag: gesture.LabelOK, Text: "OK", Kind: KindWord,
			Description: "Thumb and index fingertips touching in a ring, other fingers extended"},
		{Tag: gesture.LabelPointing, Text: "YOU", Kind: KindWord,
			Description: "Index finger extended toward the listener, other fingers curled"},
		{Tag: gesture.LabelPeace, Text: "V", Kind: KindLetter,
			Description: "Index and middle fingers extended apart in a V"},
		{Tag: gesture.LabelThumbsUp, Text: "YES", Kind: KindWord,
			Description: "Closed fist with the thumb extended straight up"},
		{Tag: gesture.LabelSwipeRight, Text: "NEXT", Kind: KindWord,
			Description: "Flat hand sweeping from left to right"},
		{Tag: gesture.LabelSwipeLeft, Text: "BACK", Kind: KindWord,
			Description: "Flat hand sweeping from right to left"},
	}
}

// DefaultEntries returns the full seed dictionary written to the store
// on first run: the builtin table, the remaining motion and pose signs,
// and a finger-spelling alphabet for the reverse direction.
func DefaultEntries() []Entry {
	entries := builtinEntries()
	entries = append(entries,
		Entry{Tag: gesture.LabelThumbsDown, Text: "NO", Kind: KindWord,
			Description: "Closed fist with the thumb extended straight down"},
		Entry{Tag: gesture.LabelPinch, Text: "MORE", Kind: KindWord,
			Description: "Extended fingers gathered together against the thumb"},
		Entry{Tag: gesture.LabelWave, Text: "GOODBYE", Kind: KindWord,
			Description: "Open hand waving side to side"},
		Entry{Tag: gesture.LabelSwipeUp, Text: "THANK YOU", Kind: KindWord,
			Description: "Flat hand sweeping upward away from the chin"},
		Entry{Tag: gesture.LabelSwipeDown, Text: "PLEASE", Kind: KindWord,
			Description: "Flat hand sweeping downward over the chest"},
	)
	entries = append(entries, alphabetEntries()...)
	return entries
}

// alphabetEntries returns the A-Z finger-spelling inventory. The tags
// are not produced by the pose classifier; they exist so text with no
// word sign can still be rendered letter by letter.
func alphabetEntries() []Entry {
	descriptions := [26]string{
		"Closed fist, thumb resting against the side of the index finger",
		"Fingers extended together, thumb folded across the palm",
		"Fingers and thumb curved into an open C shape",
		"Index finger up, remaining fingertips resting on the thumb",
		"Fingertips folded down to touch the thumb across the palm",
		"Index and thumb tips touching, remaining fingers extended",
		"Index finger and thumb extended sideways, parallel",
		"Index and middle fingers extended sideways together",
		"Pinky extended from a closed fist",
		"Pinky extended, tracing a J in the air",
		"Index and middle fingers up, thumb against the middle finger",
		"Index finger up and thumb out at a right angle",
		"Thumb tucked under the first three fingers",
		"Thumb tucked under the first two fingers",
		"Fingertips and thumb curved together into an O",
		"K handshape pointed downward",
		"G handshape pointed downward",
		"Index and middle fingers crossed",
		"Closed fist, thumb crossed over the front of the fingers",
		"Thumb tucked between the index and middle fingers",
		"Index and middle fingers extended together, pointing up",
		"Index and middle fingers extended apart in a V",
		"Index, middle and ring fingers extended and spread",
		"Index finger bent into a hook from a closed fist",
		"Thumb and pinky extended from a closed fist",
		"Index finger tracing a Z in the air",
	}

	entries := make([]Entry, 26)
	for i := 0; i < 26; i++ {
		letter := string(rune('A' + i))
		entries[i] = Entry{
			Tag:         gesture.Label("LETTER_" + letter),
			Text:        letter,
			Kind:        KindLetter,
			Description: descriptions[i],
		}
	}
	return entries
}

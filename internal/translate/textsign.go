package translate

import (
	"strings"

	"github.com/ayusman/mudra/internal/gesture"
)

// Sign is one step of a signing sequence produced from text.
type Sign struct {
	Tag         gesture.Label `json:"tag"`
	Text        string        `json:"text"`
	Kind        Kind          `json:"kind"`
	Description string        `json:"description,omitempty"`
}

// TextToSigns maps free text onto a signing sequence. Each
// whitespace-separated word maps to its sign when the dictionary knows
// it; otherwise the word is finger-spelled letter by letter. Characters
// with no letter sign are skipped, so unmappable input yields a shorter
// sequence rather than an error.
func TextToSigns(d *Dictionary, text string) []Sign {
	var out []Sign
	for _, word := range strings.Fields(text) {
		if entry, ok := d.Word(word); ok {
			out = append(out, signOf(entry))
			continue
		}
		for _, r := range word {
			if entry, ok := d.Letter(string(r)); ok {
				out = append(out, signOf(entry))
			}
		}
	}
	return out
}

func signOf(e Entry) Sign {
	return Sign{
		Tag:         e.Tag,
		Text:        e.Text,
		Kind:        e.Kind,
		Description: e.Description,
	}
}

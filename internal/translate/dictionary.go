// Package translate maps classified gestures to text: it holds the
// gesture dictionary, accumulates tokens into utterances, renders
// sentences, and runs the reverse text-to-sign mapping.
package translate

import (
	"sort"
	"strings"
	"sync"

	"github.com/ayusman/mudra/internal/gesture"
)

// Kind distinguishes finger-spelled letters from whole-word signs.
type Kind string

const (
	KindLetter Kind = "letter"
	KindWord   Kind = "word"
)

// Entry maps one gesture tag to its textual meaning. The tag space is
// wider than the classifier's vocabulary: entries that only serve the
// reverse text-to-sign direction, letter signs in particular, are valid.
type Entry struct {
	Tag         gesture.Label `json:"tag"`
	Text        string        `json:"text"`
	Kind        Kind          `json:"kind"`
	Description string        `json:"description,omitempty"`
}

// Dictionary is the gesture-to-text mapping plus the case-insensitive
// reverse indexes the text-to-sign direction uses. Lookups take a read
// lock so imports can merge entries while sessions translate.
type Dictionary struct {
	mu      sync.RWMutex
	entries map[gesture.Label]Entry
	words   map[string]Entry
	letters map[string]Entry
}

// NewDictionary creates a Dictionary from the given entries. Later
// entries override earlier ones with the same tag; reverse text indexes
// follow the same last-writer rule.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{
		entries: make(map[gesture.Label]Entry),
		words:   make(map[string]Entry),
		letters: make(map[string]Entry),
	}
	d.merge(entries)
	return d
}

// Merge upserts entries into the dictionary.
func (d *Dictionary) Merge(entries []Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.merge(entries)
}

// Replace swaps the dictionary contents for the given entries. Existing
// consumers keep their reference; only the mappings change.
func (d *Dictionary) Replace(entries []Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = make(map[gesture.Label]Entry)
	d.words = make(map[string]Entry)
	d.letters = make(map[string]Entry)
	d.merge(entries)
}

func (d *Dictionary) merge(entries []Entry) {
	for _, e := range entries {
		if e.Tag == "" || e.Text == "" {
			continue
		}
		if e.Kind != KindLetter && e.Kind != KindWord {
			continue
		}
		d.entries[e.Tag] = e
		key := strings.ToLower(e.Text)
		if e.Kind == KindWord {
			d.words[key] = e
		} else {
			d.letters[key] = e
		}
	}
}

// Delete removes the entry for the tag, along with its reverse index
// slots when they still point at it.
func (d *Dictionary) Delete(tag gesture.Label) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[tag]
	if !ok {
		return
	}
	delete(d.entries, tag)

	key := strings.ToLower(e.Text)
	if w, ok := d.words[key]; ok && w.Tag == tag {
		delete(d.words, key)
	}
	if l, ok := d.letters[key]; ok && l.Tag == tag {
		delete(d.letters, key)
	}
}

// Lookup returns the entry for a gesture tag.
func (d *Dictionary) Lookup(tag gesture.Label) (Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.entries[tag]
	return e, ok
}

// Word returns the word-kind entry whose text matches, ignoring case.
func (d *Dictionary) Word(text string) (Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.words[strings.ToLower(text)]
	return e, ok
}

// Letter returns the letter-kind entry whose text matches, ignoring case.
func (d *Dictionary) Letter(text string) (Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.letters[strings.ToLower(text)]
	return e, ok
}

// Describe returns the instructional description for a tag, or "".
func (d *Dictionary) Describe(tag gesture.Label) string {
	e, ok := d.Lookup(tag)
	if !ok {
		return ""
	}
	return e.Description
}

// Entries returns all entries sorted by tag.
func (d *Dictionary) Entries() []Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

package translate

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a portable dump of the translation state: the dictionary
// entries plus the in-flight buffer of one signing session. The sentence
// is included for readers of the exported file; Restore recomputes it
// from the tokens.
type Snapshot struct {
	Entries  []Entry `json:"entries"`
	Buffer   []Token `json:"buffer"`
	Sentence string  `json:"sentence"`
}

// TakeSnapshot captures the dictionary and the assembler buffer.
func TakeSnapshot(d *Dictionary, a *Assembler) Snapshot {
	snap := Snapshot{Entries: d.Entries()}
	if a != nil {
		snap.Buffer = a.Buffer()
		snap.Sentence = BuildSentence(snap.Buffer)
	}
	return snap
}

// Restore merges the snapshot's entries into the dictionary and, when an
// assembler is given, replaces its buffer.
func Restore(snap Snapshot, d *Dictionary, a *Assembler) {
	d.Merge(snap.Entries)
	if a != nil {
		a.SetBuffer(snap.Buffer)
	}
}

// MarshalSnapshot encodes the snapshot as indented JSON.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a snapshot produced by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}

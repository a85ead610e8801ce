package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/translate"
)

// LoadDictionary fills the shared dictionary from the store, seeding an
// empty store with the default entries, then merges extension packs on
// top. Failures degrade to the builtin table; loading never kills the
// engine.
func (a *App) LoadDictionary() {
	a.dict.Replace(a.baseEntries())

	packs, err := translate.LoadPacks(a.config.ExtensionDir)
	if err != nil {
		log.Printf("Failed to scan extension packs: %v", err)
	}
	for _, p := range packs {
		a.dict.Merge(p.Entries)
		log.Printf("Loaded extension pack %q (%d entries)", p.Name, len(p.Entries))
	}

	log.Printf("Dictionary ready with %d entries", a.dict.Len())
}

// baseEntries resolves the dictionary seed: stored entries when the
// store has any, the default seed written back on first run, the
// builtin table when storage fails.
func (a *App) baseEntries() []translate.Entry {
	if a.config.Store == nil {
		return translate.DefaultEntries()
	}

	repo := a.config.Store.Dictionary()
	stored, err := repo.List()
	if err != nil {
		log.Printf("Failed to load dictionary from store: %v", err)
		return translate.Builtin().Entries()
	}
	if len(stored) > 0 {
		return storedToEntries(stored)
	}

	seed := translate.DefaultEntries()
	if err := repo.Import(entriesToStored(seed, store.SourceSeed)); err != nil {
		log.Printf("Failed to seed dictionary store: %v", err)
	}
	return seed
}

// Entries lists the live dictionary sorted by tag.
func (a *App) Entries() []translate.Entry {
	return a.dict.Entries()
}

// Entry looks up a single dictionary entry by its gesture tag.
func (a *App) Entry(tag gesture.Label) (translate.Entry, bool) {
	return a.dict.Lookup(tag)
}

// UpsertEntry adds or updates one entry in the store and the live
// dictionary.
func (a *App) UpsertEntry(e translate.Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	if a.config.Store != nil {
		if err := a.config.Store.Dictionary().Upsert(entryToStored(e, store.SourceUser)); err != nil {
			return err
		}
	}
	a.dict.Merge([]translate.Entry{e})
	return nil
}

// DeleteEntry removes an entry from the live dictionary and the store.
// Entries that only exist in memory, from extension packs, are removed
// all the same.
func (a *App) DeleteEntry(tag gesture.Label) error {
	if _, ok := a.dict.Lookup(tag); !ok {
		return store.ErrNotFound
	}
	a.dict.Delete(tag)

	if a.config.Store != nil {
		if err := a.config.Store.Dictionary().Delete(string(tag)); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}
	return nil
}

// ImportEntries merges a batch of entries into the dictionary and the
// store. Invalid entries are skipped; the count of accepted entries is
// returned.
func (a *App) ImportEntries(entries []translate.Entry) (int, error) {
	accepted := make([]translate.Entry, 0, len(entries))
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			log.Printf("Skipping dictionary entry %q: %v", e.Tag, err)
			continue
		}
		accepted = append(accepted, e)
	}
	if len(accepted) == 0 {
		return 0, nil
	}

	if a.config.Store != nil {
		if err := a.config.Store.Dictionary().Import(entriesToStored(accepted, store.SourceUser)); err != nil {
			return 0, err
		}
	}
	a.dict.Merge(accepted)
	return len(accepted), nil
}

// Translate maps text back to signs, finger-spelling words the
// dictionary has no sign of its own for.
func (a *App) Translate(text string) []translate.Sign {
	return translate.TextToSigns(a.dict, text)
}

// ExportState captures the dictionary and the default hand's in-flight
// buffer.
func (a *App) ExportState() translate.Snapshot {
	snap := translate.TakeSnapshot(a.dict, nil)

	a.mu.RLock()
	s := a.hands[DefaultHandedness]
	a.mu.RUnlock()
	if s != nil {
		snap.Buffer = s.Buffer()
		snap.Sentence = s.Sentence()
	}
	return snap
}

// ImportState restores an exported snapshot. Entries merge into the
// dictionary and the store, and the buffer replaces the default hand's
// in-flight tokens.
func (a *App) ImportState(snap translate.Snapshot) error {
	if _, err := a.ImportEntries(snap.Entries); err != nil {
		return err
	}
	if len(snap.Buffer) > 0 {
		a.handSession(DefaultHandedness).SetBuffer(snap.Buffer)
	}
	return nil
}

func validateEntry(e translate.Entry) error {
	if e.Tag == "" || e.Text == "" {
		return fmt.Errorf("dictionary entry needs a tag and text")
	}
	if e.Kind != translate.KindLetter && e.Kind != translate.KindWord {
		return fmt.Errorf("unknown entry kind %q", e.Kind)
	}
	return nil
}

func storedToEntries(stored []*store.DictionaryEntry) []translate.Entry {
	entries := make([]translate.Entry, 0, len(stored))
	for _, e := range stored {
		entries = append(entries, translate.Entry{
			Tag:         gesture.Label(e.Tag),
			Text:        e.Text,
			Kind:        translate.Kind(e.Kind),
			Description: e.Description,
		})
	}
	return entries
}

func entryToStored(e translate.Entry, source string) *store.DictionaryEntry {
	return &store.DictionaryEntry{
		Tag:         string(e.Tag),
		Text:        e.Text,
		Kind:        string(e.Kind),
		Description: e.Description,
		Source:      source,
	}
}

func entriesToStored(entries []translate.Entry, source string) []*store.DictionaryEntry {
	stored := make([]*store.DictionaryEntry, 0, len(entries))
	for _, e := range entries {
		stored = append(stored, entryToStored(e, source))
	}
	return stored
}

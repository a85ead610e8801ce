package store

import (
	"database/sql"
	"errors"
	"time"
)

// Entry sources distinguish where a dictionary record came from.
const (
	SourceSeed      = "seed"
	SourceUser      = "user"
	SourceExtension = "extension"
)

// DictionaryEntry is a persisted sign mapping.
type DictionaryEntry struct {
	Tag         string
	Text        string
	Kind        string
	Description string
	Source      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DictionaryRepository provides CRUD operations for dictionary entries.
type DictionaryRepository struct {
	db *sql.DB
}

// Dictionary returns the dictionary repository for this store.
func (s *Store) Dictionary() *DictionaryRepository {
	return &DictionaryRepository{db: s.db}
}

// Upsert inserts the entry or updates the existing record for its tag.
func (r *DictionaryRepository) Upsert(e *DictionaryEntry) error {
	now := time.Now()
	if e.Source == "" {
		e.Source = SourceUser
	}
	e.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO dictionary_entries (tag, text, kind, description, source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(tag) DO UPDATE SET
		   text = excluded.text,
		   kind = excluded.kind,
		   description = excluded.description,
		   source = excluded.source,
		   updated_at = excluded.updated_at`,
		e.Tag, e.Text, e.Kind, e.Description, e.Source, now, now,
	)
	return err
}

// GetByTag retrieves an entry by its gesture tag.
func (r *DictionaryRepository) GetByTag(tag string) (*DictionaryEntry, error) {
	e := &DictionaryEntry{}

	err := r.db.QueryRow(
		`SELECT tag, text, kind, description, source, created_at, updated_at
		 FROM dictionary_entries WHERE tag = ?`,
		tag,
	).Scan(&e.Tag, &e.Text, &e.Kind, &e.Description, &e.Source, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

// List retrieves all entries ordered by tag.
func (r *DictionaryRepository) List() ([]*DictionaryEntry, error) {
	rows, err := r.db.Query(
		`SELECT tag, text, kind, description, source, created_at, updated_at
		 FROM dictionary_entries ORDER BY tag`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*DictionaryEntry
	for rows.Next() {
		e := &DictionaryEntry{}
		err := rows.Scan(&e.Tag, &e.Text, &e.Kind, &e.Description, &e.Source, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete removes an entry by its tag.
func (r *DictionaryRepository) Delete(tag string) error {
	result, err := r.db.Exec(`DELETE FROM dictionary_entries WHERE tag = ?`, tag)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Import upserts a batch of entries in one transaction.
func (r *DictionaryRepository) Import(entries []*DictionaryEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for _, e := range entries {
		if e.Source == "" {
			e.Source = SourceSeed
		}
		_, err := tx.Exec(
			`INSERT INTO dictionary_entries (tag, text, kind, description, source, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(tag) DO UPDATE SET
			   text = excluded.text,
			   kind = excluded.kind,
			   description = excluded.description,
			   source = excluded.source,
			   updated_at = excluded.updated_at`,
			e.Tag, e.Text, e.Kind, e.Description, e.Source, now, now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Count returns the number of stored entries.
func (r *DictionaryRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM dictionary_entries`).Scan(&n)
	return n, err
}

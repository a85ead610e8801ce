package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Phrase is a completed utterance persisted for the phrase log. Tokens
// holds the token list as a JSON document; the store does not interpret
// it.
type Phrase struct {
	ID         string
	Handedness string
	Sentence   string
	Tokens     string
	Mood       string
	StartedAt  int64
	EndedAt    int64
	CreatedAt  time.Time
}

// PhraseRepository provides CRUD operations for phrases.
type PhraseRepository struct {
	db *sql.DB
}

// Phrases returns the phrase repository for this store.
func (s *Store) Phrases() *PhraseRepository {
	return &PhraseRepository{db: s.db}
}

// Create inserts a new phrase, assigning an ID when missing.
func (r *PhraseRepository) Create(p *Phrase) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Tokens == "" {
		p.Tokens = "[]"
	}
	if p.Mood == "" {
		p.Mood = "neutral"
	}
	p.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO phrases (id, handedness, sentence, tokens, mood, started_at, ended_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Handedness, p.Sentence, p.Tokens, p.Mood, p.StartedAt, p.EndedAt, p.CreatedAt,
	)
	return err
}

// GetByID retrieves a phrase by its ID.
func (r *PhraseRepository) GetByID(id string) (*Phrase, error) {
	p := &Phrase{}

	err := r.db.QueryRow(
		`SELECT id, handedness, sentence, tokens, mood, started_at, ended_at, created_at
		 FROM phrases WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Handedness, &p.Sentence, &p.Tokens, &p.Mood, &p.StartedAt, &p.EndedAt, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// List retrieves phrases newest first. A limit of 0 or less returns all.
func (r *PhraseRepository) List(limit int) ([]*Phrase, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.Query(
		`SELECT id, handedness, sentence, tokens, mood, started_at, ended_at, created_at
		 FROM phrases ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phrases []*Phrase
	for rows.Next() {
		p := &Phrase{}
		err := rows.Scan(&p.ID, &p.Handedness, &p.Sentence, &p.Tokens, &p.Mood, &p.StartedAt, &p.EndedAt, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		phrases = append(phrases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return phrases, nil
}

// Delete removes a phrase by its ID.
func (r *PhraseRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM phrases WHERE id = ?`, id)
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

// Clear removes all phrases.
func (r *PhraseRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM phrases`)
	return err
}

// Count returns the number of stored phrases.
func (r *PhraseRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM phrases`).Scan(&n)
	return n, err
}

package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Dictionary entries - maps gesture tags to their meaning
		`CREATE TABLE IF NOT EXISTS dictionary_entries (
			tag TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			kind TEXT NOT NULL CHECK(kind IN ('letter', 'word')),
			description TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT 'seed',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Phrases - completed utterances assembled from sign tokens
		`CREATE TABLE IF NOT EXISTS phrases (
			id TEXT PRIMARY KEY,
			handedness TEXT NOT NULL DEFAULT '',
			sentence TEXT NOT NULL,
			tokens TEXT NOT NULL DEFAULT '[]',
			mood TEXT NOT NULL DEFAULT 'neutral',
			started_at INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_phrases_created_at ON phrases(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_dictionary_entries_kind ON dictionary_entries(kind)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

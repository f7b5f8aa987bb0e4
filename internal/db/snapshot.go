package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ivucicev/zenfast/internal/fasting"
)

// snapshotKey is versioned; a future incompatible schema gets a new key and
// old rows are simply ignored.
const snapshotKey = "zenfast_state_v2"

// SnapshotStore persists the application state as one JSON blob in the
// app_state table. A missing or unparseable row reads as "no prior state";
// the caller falls back to defaults rather than attempting partial
// recovery.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(sqldb *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: sqldb}
}

func (s *SnapshotStore) Load() (fasting.State, bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT data FROM app_state WHERE key = ?`, snapshotKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return fasting.State{}, false, nil
	}
	if err != nil {
		return fasting.State{}, false, fmt.Errorf("read state snapshot: %w", err)
	}
	var st fasting.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		// Corrupt blob: treat as absent.
		return fasting.State{}, false, nil
	}
	return st, true, nil
}

func (s *SnapshotStore) Save(st fasting.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state snapshot: %w", err)
	}
	if _, err := s.db.Exec(`
INSERT INTO app_state(key, data, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
`, snapshotKey, string(raw)); err != nil {
		return fmt.Errorf("write state snapshot: %w", err)
	}
	return nil
}

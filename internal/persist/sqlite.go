package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadesk/m/domain"
)

// SQLite keeps store snapshots in a key-value table, one row per store
// name. It satisfies store.Persister.
type SQLite struct {
	db   *sqlx.DB
	name string
}

// NewSQLite binds a persister to the snapshot slot identified by name.
func NewSQLite(db *sqlx.DB, name string) *SQLite {
	return &SQLite{db: db, name: name}
}

// Load reads and decodes the persisted snapshot. An empty slot returns
// (nil, nil), not an error.
func (p *SQLite) Load() (*domain.Snapshot, error) {
	var payload string
	err := p.db.Get(&payload, `SELECT payload FROM snapshots WHERE name = ?`, p.name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", p.name, err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", p.name, err)
	}
	return &snap, nil
}

// Save serializes the snapshot and upserts it into the slot.
func (p *SQLite) Save(snap domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", p.name, err)
	}
	_, err = p.db.Exec(`INSERT INTO snapshots (name, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		p.name, string(payload))
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", p.name, err)
	}
	return nil
}

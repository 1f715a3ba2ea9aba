package migrations

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// Run creates the schema for the snapshot slot. The payload column holds
// the whole serialized store keyed by store name; there is no versioning,
// an older payload shape is read back as-is.
func Run(db *sqlx.DB) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
            name TEXT PRIMARY KEY,
            payload TEXT NOT NULL,
            updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}

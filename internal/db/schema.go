package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The UNIQUE constraint on name backs up
// the service-level uniqueness check against concurrent inserts.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL UNIQUE,
    quantity INTEGER NOT NULL
);
`

// EnsureSchema creates the items table if it doesn't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

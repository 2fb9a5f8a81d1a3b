package db

import (
	"database/sql"
	"fmt"
)

const baseSchema = `
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

// Migrate creates the schema and applies incremental changes.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("apply base schema: %w", err)
	}

	// Migration 1: provider keys moved from ai.* to per-vendor prefixes
	renames := map[string]string{
		"ai.provider": "provider.translator",
		"ai.api_key":  "openai.api_key",
		"ai.base_url": "openai.base_url",
		"ai.model":    "openai.model",
	}
	for from, to := range renames {
		if _, err := db.Exec(`
			INSERT OR IGNORE INTO settings (key, value, updated_at)
			SELECT ?, value, updated_at FROM settings WHERE key = ?
		`, to, from); err != nil {
			return fmt.Errorf("migrate setting %s: %w", from, err)
		}
		if _, err := db.Exec(`DELETE FROM settings WHERE key = ?`, from); err != nil {
			return fmt.Errorf("remove setting %s: %w", from, err)
		}
	}

	return nil
}

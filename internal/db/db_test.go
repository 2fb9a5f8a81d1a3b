package db_test

import (
	"database/sql"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/db"
)

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='settings'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "settings", name)

	var mode string
	require.NoError(t, database.QueryRow("PRAGMA journal_mode").Scan(&mode))
	require.Equal(t, "wal", mode)
}

// Pragmas applied with Exec only reach one pooled connection; they must live
// in the DSN.
func TestBuildDSN_AllPragmasInDSN(t *testing.T) {
	dsn := db.BuildDSN("mydb.sqlite")
	require.Contains(t, dsn, "file:mydb.sqlite")

	decodedDSN, err := url.QueryUnescape(dsn)
	require.NoError(t, err)

	expectedPragmas := []string{
		"journal_mode(WAL)",
		"foreign_keys(ON)",
		"busy_timeout(30000)",
		"synchronous(NORMAL)",
	}
	for _, pragma := range expectedPragmas {
		require.Contains(t, decodedDSN, pragma, "DSN must contain pragma: "+pragma)
	}
}

func TestMigrate_RenamesLegacyKeys(t *testing.T) {
	database, err := sql.Open("sqlite", db.BuildDSN(filepath.Join(t.TempDir(), "legacy.db")))
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO settings VALUES ('ai.api_key', 'sk-old', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))

	var value string
	require.NoError(t, database.QueryRow(`SELECT value FROM settings WHERE key = 'openai.api_key'`).Scan(&value))
	require.Equal(t, "sk-old", value)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM settings WHERE key LIKE 'ai.%'`).Scan(&count))
	require.Zero(t, count)
}

func TestMigrate_ClosedDB(t *testing.T) {
	database, err := sql.Open("sqlite", "file::memory:?cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Close())

	err = db.Migrate(database)
	require.Error(t, err)
}

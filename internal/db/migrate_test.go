package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMemDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openMemDB(t)

	expected := []string{
		"knowledge_entries", "skills", "emergency_procedures", "scenarios",
		"scenario_knowledge", "scenario_threats", "query_history", "skill_progress",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_RejectsOutOfRangeDifficulty(t *testing.T) {
	db := openMemDB(t)
	_, err := db.Exec(`INSERT INTO knowledge_entries (category, title, content, difficulty, priority, created_at)
		VALUES ('水源', 't', 'c', 9, 1, '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_RejectsUnknownScenario(t *testing.T) {
	db := openMemDB(t)
	_, err := db.Exec(`INSERT INTO scenarios (scenario_id, name) VALUES ('pirates', 'x')`)
	assert.Error(t, err)
}

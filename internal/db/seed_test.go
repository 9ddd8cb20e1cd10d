package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, uow *SQLiteUnitOfWork, table string) int {
	t.Helper()
	var n int
	require.NoError(t, uow.conn.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestSeed_PopulatesEveryTable(t *testing.T) {
	uow := NewSQLiteUnitOfWork(openMemDB(t))
	require.NoError(t, Seed(context.Background(), uow))

	assert.Equal(t, len(baseKnowledge), countRows(t, uow, "knowledge_entries"))
	assert.Equal(t, len(baseSkills), countRows(t, uow, "skills"))
	assert.Equal(t, len(baseProcedures), countRows(t, uow, "emergency_procedures"))
	assert.Equal(t, 6, countRows(t, uow, "scenarios"))
	assert.Equal(t, len(baseScenarioKnowledge), countRows(t, uow, "scenario_knowledge"))
	assert.Equal(t, len(baseThreats), countRows(t, uow, "scenario_threats"))
}

func TestSeed_SecondRunIsNoop(t *testing.T) {
	uow := NewSQLiteUnitOfWork(openMemDB(t))
	require.NoError(t, Seed(context.Background(), uow))
	require.NoError(t, Seed(context.Background(), uow))

	assert.Equal(t, len(baseKnowledge), countRows(t, uow, "knowledge_entries"))
	assert.Equal(t, len(baseThreats), countRows(t, uow, "scenario_threats"))
}

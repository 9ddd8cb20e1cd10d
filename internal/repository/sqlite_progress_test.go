package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepo_UpsertIsKeyedByUserAndSkill(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	skillID := testutil.InsertSkill(t, db, "净水", "水源", 2, 20)

	require.NoError(t, repo.Upsert(ctx, &domain.SkillProgress{UserID: "u1", SkillID: skillID, Progress: 30}))
	require.NoError(t, repo.Upsert(ctx, &domain.SkillProgress{UserID: "u1", SkillID: skillID, Progress: 80, Notes: "煮沸已掌握"}))
	require.NoError(t, repo.Upsert(ctx, &domain.SkillProgress{UserID: "u2", SkillID: skillID, Progress: 10}))

	got, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 80, got[0].Progress)
	assert.Equal(t, "煮沸已掌握", got[0].Notes)
	assert.Equal(t, "净水", got[0].SkillName)
	assert.Equal(t, "水源", got[0].SkillCategory)
}

func TestProgressRepo_ClampsProgress(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	skillID := testutil.InsertSkill(t, db, "生火", "生火", 1, 30)

	require.NoError(t, repo.Upsert(ctx, &domain.SkillProgress{UserID: "u1", SkillID: skillID, Progress: 150}))

	got, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Progress)
}

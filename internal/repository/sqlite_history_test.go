package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepo_AppendAndListRecent(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := &domain.QueryHistoryRecord{Question: "如何找水", Response: "答案...", Category: "pattern"}
	require.NoError(t, repo.Append(ctx, first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	require.NoError(t, repo.Append(ctx, &domain.QueryHistoryRecord{Question: "如何生火"}))

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "如何生火", got[0].Question, "newest first")
	assert.Equal(t, "pattern", got[1].Category)

	one, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

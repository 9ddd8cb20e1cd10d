package emergency

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/repository"
	"github.com/alexanderramin/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProcedures struct{}

func (failingProcedures) ListByType(context.Context, string) ([]domain.EmergencyProcedure, error) {
	return nil, errors.New("database is locked")
}

func seededService(t *testing.T) *Service {
	t.Helper()
	return NewService(repository.NewSQLiteProcedureRepo(testutil.NewSeededTestDB(t)), nil)
}

func TestRespond_StoredProcedure(t *testing.T) {
	svc := seededService(t)

	resp := svc.Respond(context.Background(), "外伤出血", "")
	assert.False(t, resp.Generic)
	assert.Equal(t, "立即压迫止血", resp.ImmediateAction)
	assert.Equal(t, "严重 - 立即处理", resp.SeverityDescription)
	assert.Equal(t, "立即开始，持续10-20分钟", resp.EstimatedTime)
	assert.Contains(t, resp.WarningSigns, "出血不止")
	assert.Empty(t, resp.SpecialConsiderations)
}

func TestRespond_SpecialConsiderationsAccumulate(t *testing.T) {
	svc := seededService(t)

	resp := svc.Respond(context.Background(), "骨折", "伤者是老人，同行还有一个Child")
	assert.Contains(t, resp.SpecialConsiderations, "老年人恢复较慢")
	assert.Contains(t, resp.SpecialConsiderations, "儿童剂量不同")
	assert.Len(t, resp.SpecialConsiderations, 6)
}

func TestRespond_UnknownTypeIsGeneric(t *testing.T) {
	resp := seededService(t).Respond(context.Background(), "雪崩", "")
	assert.True(t, resp.Generic)
	assert.Equal(t, "雪崩", resp.EmergencyType)
	assert.Equal(t, 2, resp.Severity)
}

func TestRespond_StoreFailureIsGeneric(t *testing.T) {
	svc := NewService(failingProcedures{}, nil)

	resp := svc.Respond(context.Background(), "外伤出血", "")
	assert.True(t, resp.Generic)
	assert.Nil(t, svc.Procedures(context.Background(), ""))
}

func TestGuideFor(t *testing.T) {
	assert.Contains(t, GuideFor("溺水").PriorityActions, "💓 必要时进行心肺复苏")
	assert.Equal(t, genericGuide, GuideFor("地震"))
}

func TestPlan(t *testing.T) {
	solo := Plan("城市", 1)
	assert.Empty(t, solo.Preparation)
	assert.Empty(t, solo.Roles)

	group := Plan(LocationWilderness, 4)
	require.NotEmpty(t, group.Preparation)
	assert.Len(t, group.Supplies, 5)
	assert.Len(t, group.Roles, 4)
}

func TestContacts(t *testing.T) {
	c := Contacts()
	assert.Equal(t, "120", c.Services[0].Number)
	assert.NotEmpty(t, c.ImportantNotes)
}

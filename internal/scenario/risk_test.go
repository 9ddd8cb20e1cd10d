package scenario

import (
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAssessRisk_Breakdown(t *testing.T) {
	got := AssessRisk(domain.ScenarioZombie, RiskFactors{
		Location:  "城市医院",
		TimeOfDay: "夜晚",
		GroupSize: 3,
		Resources: []string{"水", "食物"},
	})

	assert.Equal(t, RiskBreakdown{Base: 4, Location: 2, Time: -1, Group: -1, Resources: -1}, got.Factors)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, "中等风险 - 需要谨慎", got.Description)
	assert.Equal(t, []string{"加强防护", "准备撤离计划", "团队行动"}, got.Recommendations)
}

func TestAssessRisk_CappedAtTen(t *testing.T) {
	got := AssessRisk(domain.ScenarioAlien, RiskFactors{
		Location:  "机场",
		TimeOfDay: "晚上",
		GroupSize: 1,
	})
	// 5 + 2 + 1 + 2 + 2 = 12
	assert.Equal(t, MaxRisk, got.Total)
	assert.Equal(t, "致命风险 - 立即撤离", got.Description)
}

func TestAssessRisk_NotFloored(t *testing.T) {
	got := AssessRisk(domain.ScenarioNormal, RiskFactors{
		Location:  "深山",
		GroupSize: 4,
		Resources: []string{"饮用水", "食物", "医疗包", "通讯设备"},
	})
	// 2 - 1 + 0 - 1 - 2 = -2
	assert.Equal(t, -2, got.Total)
	assert.Equal(t, "低风险 - 相对安全", got.Description)
}

func TestGroupRisk(t *testing.T) {
	for size, want := range map[int]int{0: 2, 1: 2, 2: -1, 4: -1, 5: 0, 10: 0, 11: 2} {
		assert.Equal(t, want, groupRisk(size), "size %d", size)
	}
}

func TestResourceRisk(t *testing.T) {
	assert.Equal(t, 2, resourceRisk(nil))
	assert.Equal(t, 3, resourceRisk([]string{"绳子"}))
	assert.Equal(t, 0, resourceRisk([]string{"武器"}))
	assert.Equal(t, -1, resourceRisk([]string{"水", "武器"}))
	assert.Equal(t, -2, resourceRisk([]string{"水", "食物", "武器", "通讯"}))
}

func TestPlaceRisk(t *testing.T) {
	assert.Equal(t, 0, placeRisk(""))
	assert.Equal(t, 2, placeRisk("学校操场"))
	assert.Equal(t, 1, placeRisk("小镇"))
	assert.Equal(t, -1, placeRisk("荒岛"))
}

func TestRiskDescription_Boundaries(t *testing.T) {
	assert.Equal(t, "低风险 - 相对安全", RiskDescription(2))
	assert.Equal(t, "中等风险 - 需要谨慎", RiskDescription(3))
	assert.Equal(t, "高风险 - 危险环境", RiskDescription(6))
	assert.Equal(t, "极高风险 - 生命危险", RiskDescription(8))
	assert.Equal(t, "致命风险 - 立即撤离", RiskDescription(9))
}

package formatter

import (
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/scenario"
	"github.com/stretchr/testify/assert"
)

func TestFormatScenarioInfo_TopicsWithoutRecord(t *testing.T) {
	info := scenario.Info{
		ScenarioMeta: domain.ScenarioAlien.Meta(),
		Topics:       []scenario.Group{scenario.GroupHiding, scenario.GroupCommunication},
	}

	out := FormatScenarioInfo(info)
	assert.Contains(t, out, "躲藏 · 沟通")
	assert.Contains(t, out, "没有该场景的详细资料")
}

func TestFormatCategoryCounts_KeywordColumn(t *testing.T) {
	counts := map[domain.Category]int{domain.CategoryWater: 3}
	keywords := map[domain.Category][]string{domain.CategoryWater: {"饮水", "净水"}}

	out := FormatCategoryCounts(counts, keywords)
	assert.Contains(t, out, "提问关键词")
	assert.Contains(t, out, "饮水 净水")

	assert.NotContains(t, FormatCategoryCounts(counts, nil), "饮水")
}

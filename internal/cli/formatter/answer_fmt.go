package formatter

import (
	"strings"

	"github.com/alexanderramin/haven/internal/advisor"
	"github.com/alexanderramin/haven/internal/domain"
)

var sourceLabels = map[domain.AnswerSource]string{
	domain.SourceEmpty:    "提示",
	domain.SourceScenario: "场景处理",
	domain.SourceRemote:   "AI模型",
	domain.SourcePattern:  "问题模式",
	domain.SourceCategory: "知识分类",
	domain.SourceSearch:   "知识搜索",
	domain.SourceNoMatch:  "未匹配",
}

// FormatAnswer renders a composed answer under the active scenario label.
func FormatAnswer(meta domain.ScenarioMeta, ans advisor.Answer) string {
	var b strings.Builder
	b.WriteString(ans.Text)
	b.WriteString("\n\n")

	label, ok := sourceLabels[ans.Source]
	if !ok {
		label = string(ans.Source)
	}
	footer := meta.Icon + " " + meta.Name + " · " + label
	if ans.Category != "" {
		footer += " · " + string(ans.Category)
	}
	b.WriteString(Dim(footer))
	return b.String()
}

// FormatHistory lists recent questions, newest first.
func FormatHistory(records []domain.QueryHistoryRecord) string {
	if len(records) == 0 {
		return Dim("暂无提问记录。")
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(HumanTimestamp(r.CreatedAt)),
			Excerpt(r.Question, 24),
			Dim(Excerpt(firstLine(r.Response), 30)),
			Dim(r.Category),
		})
	}
	return RenderBox("提问记录", RenderTable([]string{"时间", "问题", "回答", "来源"}, rows))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

package formatter

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/haven/internal/llm"
)

// FormatModelList renders the model catalogue with key and selection state.
func FormatModelList(models []llm.ModelStatus) string {
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		marker := " "
		if m.Current {
			marker = StyleGreen.Render("●")
		}
		key := StyleGreen.Render("已设置")
		switch {
		case !m.Remote():
			key = Dim("无需")
		case !m.HasAPIKey:
			key = StyleYellow.Render("未设置")
		}
		rows = append(rows, []string{marker, m.Name, StylePurple.Render(string(m.ID)), Dim(m.ModelName), key})
	}
	return RenderBox("AI模型", RenderTable([]string{"", "名称", "ID", "模型", "API密钥"}, rows))
}

// FormatConnection renders a TestConnection outcome.
func FormatConnection(r llm.ConnectionResult) string {
	if r.OK {
		return StyleGreen.Render("✔ " + r.Message)
	}
	return StyleRed.Render("✖ " + r.Message)
}

// FormatUsage renders per-model request counters for this process.
func FormatUsage(stats map[llm.ModelID]llm.Usage) string {
	if len(stats) == 0 {
		return Dim("本次运行尚未调用任何模型。")
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		u := stats[llm.ModelID(id)]
		rows = append(rows, []string{id, fmt.Sprintf("%d", u.Requests), fmt.Sprintf("%d", u.Failures), fmt.Sprintf("%d", u.Tokens)})
	}
	return RenderTable([]string{"模型", "请求", "失败", "Tokens"}, rows)
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

const knowledgeExcerpt = 120

// FormatCategoryCounts renders every knowledge category with its entry count
// and, when given, the question keywords that route to it.
func FormatCategoryCounts(counts map[domain.Category]int, keywords map[domain.Category][]string) string {
	rows := make([][]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		n := counts[c]
		cell := fmt.Sprintf("%d", n)
		if n == 0 {
			cell = Dim(cell)
		}
		rows = append(rows, []string{string(c), cell, Dim(strings.Join(keywords[c], " "))})
	}
	return RenderBox("生存知识", RenderTable([]string{"分类", "条目", "提问关键词"}, rows)+"\n"+
		Dim("使用 'haven knowledge <分类>' 查看内容。"))
}

// FormatKnowledgeList renders knowledge entries with short excerpts.
func FormatKnowledgeList(title string, entries []domain.KnowledgeEntry) string {
	if len(entries) == 0 {
		return Dim("没有找到相关知识。")
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s  %s  %s\n", StyleBlue.Render("📖"), Bold(e.Title), Dim(string(e.Category)), Stars(e.Difficulty))
		b.WriteString("  " + Excerpt(e.Content, knowledgeExcerpt) + "\n")
		if len(e.Tags) > 0 {
			b.WriteString("  " + Dim("#"+strings.Join(e.Tags, " #")) + "\n")
		}
	}
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

// FormatScenarioKnowledge renders scenario-scoped knowledge entries.
func FormatScenarioKnowledge(s domain.Scenario, entries []domain.ScenarioKnowledge) string {
	plain := make([]domain.KnowledgeEntry, 0, len(entries))
	for _, e := range entries {
		plain = append(plain, e.KnowledgeEntry)
	}
	return FormatKnowledgeList(s.Meta().Name+" 专题知识", plain)
}

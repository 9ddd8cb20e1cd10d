package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/skills"
)

// FormatSkillCategories renders the built-in skill categories.
func FormatSkillCategories(stored []string) string {
	have := make(map[string]bool, len(stored))
	for _, s := range stored {
		have[s] = true
	}
	rows := make([][]string, 0, len(skills.Categories))
	for _, c := range skills.Categories {
		mark := Dim("—")
		if have[c.Name] {
			mark = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{c.Name, Dim(c.Slug), mark})
	}
	return RenderBox("技能分类", RenderTable([]string{"分类", "代号", "已收录"}, rows))
}

// FormatSkillList renders skills as a table.
func FormatSkillList(title string, list []skills.Skill) string {
	if len(list) == 0 {
		return Dim("没有找到相关技能。")
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", s.ID)),
			s.Name,
			s.Category,
			Stars(s.Difficulty),
			s.TimeDesc,
		})
	}
	return RenderBox(title, RenderTable([]string{"ID", "技能", "分类", "难度", "用时"}, rows))
}

// FormatStepGuide renders a skill with annotated steps, tips and prerequisites.
func FormatStepGuide(g *skills.StepGuide, prereqs []skills.Prerequisite) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n%s\n", Bold(g.Name), Dim(g.Category), Dim(g.Description))
	fmt.Fprintf(&b, "难度 %s %s · 预计 %s\n\n", Stars(g.Difficulty), Dim(g.DifficultyDesc), g.TimeDesc)

	if len(g.Materials) > 0 {
		b.WriteString(Section("所需材料", Bullets(g.Materials)))
	}
	b.WriteString(StyleBold.Render("步骤") + "\n")
	for _, st := range g.Steps {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", st.Number)), st.Instruction, Dim("("+st.EstimatedTime+")"))
		for _, kp := range st.KeyPoints {
			b.WriteString("     " + Dim("› "+kp) + "\n")
		}
	}
	b.WriteString("\n")
	if g.SafetyNotes != "" {
		b.WriteString(Section("安全注意", "  "+StyleYellow.Render(g.SafetyNotes)))
	}
	b.WriteString(Section("技巧", Bullets(g.Tips)))
	if len(prereqs) > 0 {
		lines := make([]string, 0, len(prereqs))
		for _, p := range prereqs {
			lines = append(lines, p.Name+" "+Dim(p.Reason))
		}
		b.WriteString(Section("建议先掌握", Bullets(lines)))
	}
	return RenderBox("技能指南", strings.TrimRight(b.String(), "\n"))
}

// FormatProgression renders a category's learning path.
func FormatProgression(category string, levels []skills.ProgressionLevel) string {
	if len(levels) == 0 {
		return Dim("该分类暂无技能。")
	}
	var b strings.Builder
	for _, l := range levels {
		fmt.Fprintf(&b, "%s %s %s\n", StyleBlue.Render(fmt.Sprintf("L%d", l.Level)), l.Name, Stars(l.Difficulty))
		if len(l.NextSkills) > 0 {
			b.WriteString("   " + Dim("↓ "+strings.Join(l.NextSkills, "、")) + "\n")
		}
	}
	return RenderBox(category+" 学习路径", strings.TrimRight(b.String(), "\n"))
}

// FormatRecommendations renders recommended skills with their reasons.
func FormatRecommendations(level int, recs []skills.Recommendation) string {
	if len(recs) == 0 {
		return Dim("暂无推荐技能。")
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{Dim(fmt.Sprintf("%d", r.ID)), r.Name, Stars(r.Difficulty), Dim(r.Reason)})
	}
	return RenderBox(fmt.Sprintf("推荐技能 (等级 %d)", level), RenderTable([]string{"ID", "技能", "难度", "理由"}, rows))
}

// FormatProgress renders a user's skill progress.
func FormatProgress(list []skills.Progress) string {
	if len(list) == 0 {
		return Dim("还没有学习记录。使用 'haven skills progress set <id> <百分比>' 记录进度。")
	}
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			p.SkillName,
			Dim(p.SkillCategory),
			RenderProgress(p.Progress, 12),
			Dim(p.Notes),
			Dim(HumanTimestamp(p.UpdatedAt)),
		})
	}
	return RenderBox("学习进度", RenderTable([]string{"技能", "分类", "进度", "备注", "更新"}, rows))
}

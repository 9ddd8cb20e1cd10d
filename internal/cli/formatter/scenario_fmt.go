package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/scenario"
)

// FormatScenarioList renders the six scenarios, marking the active one.
func FormatScenarioList(active domain.Scenario) string {
	rows := make([][]string, 0, len(domain.Scenarios))
	for _, s := range domain.Scenarios {
		meta := s.Meta()
		marker := " "
		if s == active {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{marker, meta.Icon + " " + meta.Name, StylePurple.Render(string(s)), Dim(meta.Description)})
	}
	return RenderBox("场景", RenderTable([]string{"", "名称", "ID", "说明"}, rows))
}

// FormatScenarioInfo renders catalogue and stored details of one scenario.
func FormatScenarioInfo(info scenario.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n%s\n\n", info.Icon, Bold(info.Name), StylePurple.Render(string(info.ID)), Dim(info.Description))
	if len(info.Topics) > 0 {
		labels := make([]string, len(info.Topics))
		for i, g := range info.Topics {
			labels[i] = g.Label()
		}
		fmt.Fprintf(&b, "%s %s\n\n", StyleBold.Render("专项问题:"), strings.Join(labels, " · "))
	}

	if info.Record == nil {
		b.WriteString(Dim("知识库中没有该场景的详细资料。"))
		return RenderBox("场景信息", b.String())
	}
	rec := info.Record
	fmt.Fprintf(&b, "%s %s\n\n", StyleBold.Render("基础威胁:"), DangerMeter(rec.BaseThreatLevel))
	b.WriteString(Section("特别注意", "  "+rec.SpecialConsiderations))
	b.WriteString(Section("推荐装备", Bullets(rec.Equipment)))
	b.WriteString(Section("生存提示", Bullets(rec.Tips)))
	return RenderBox("场景信息", strings.TrimRight(b.String(), "\n"))
}

// FormatThreats renders adjusted threats, most dangerous first.
func FormatThreats(s domain.Scenario, threats []domain.AdjustedThreat) string {
	meta := s.Meta()
	if len(threats) == 0 {
		return Dim(fmt.Sprintf("%s %s 暂无威胁记录。", meta.Icon, meta.Name))
	}
	var b strings.Builder
	for i, t := range threats {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", DangerMeter(t.AdjustedLevel), Bold(t.Name), Dim(t.Type))
		if t.AdjustedLevel != t.BaseDangerLevel {
			b.WriteString(Dim(fmt.Sprintf("  基础危险 %d，按环境调整为 %d\n", t.BaseDangerLevel, t.AdjustedLevel)))
		}
		writeField(&b, "描述", t.Description)
		writeField(&b, "识别", t.IdentificationSigns)
		writeField(&b, "应对", t.Countermeasures)
		writeField(&b, "规避", t.AvoidanceTips)
	}
	return RenderBox(meta.Name+" 威胁", strings.TrimRight(b.String(), "\n"))
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", StyleBlue.Render(label+":"), value)
}

// FormatRisk renders a risk assessment with its factor breakdown.
func FormatRisk(s domain.Scenario, r scenario.RiskAssessment) string {
	var b strings.Builder
	style := DangerStyle(r.Total / 2)
	fmt.Fprintf(&b, "%s %s\n\n", style.Render(fmt.Sprintf("%d/%d", r.Total, scenario.MaxRisk)), style.Render(r.Description))

	rows := [][]string{
		{"场景基础", signed(r.Factors.Base)},
		{"地点", signed(r.Factors.Location)},
		{"时间", signed(r.Factors.Time)},
		{"人数", signed(r.Factors.Group)},
		{"资源", signed(r.Factors.Resources)},
	}
	b.WriteString(RenderTable([]string{"因素", "分值"}, rows))
	b.WriteString("\n")
	b.WriteString(Section("建议", Bullets(r.Recommendations)))
	return RenderBox(s.Meta().Name+" 风险评估", strings.TrimRight(b.String(), "\n"))
}

func signed(v int) string {
	if v > 0 {
		return StyleRed.Render(fmt.Sprintf("+%d", v))
	}
	if v < 0 {
		return StyleGreen.Render(fmt.Sprintf("%d", v))
	}
	return Dim("0")
}

// FormatTips renders survival tips for a scenario.
func FormatTips(s domain.Scenario, tips []string) string {
	meta := s.Meta()
	if len(tips) == 0 {
		return Dim(fmt.Sprintf("%s %s 暂无生存提示。", meta.Icon, meta.Name))
	}
	return RenderBox(meta.Name+" 生存提示", strings.TrimRight(Numbered(tips), "\n"))
}

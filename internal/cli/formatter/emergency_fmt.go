package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/emergency"
)

// FormatAssessment renders a symptom assessment.
func FormatAssessment(a emergency.Assessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", SeverityIndicator(a.Level), Dim(fmt.Sprintf("评分 %d", a.Score)))
	b.WriteString(SeverityStyle(a.Level).Render(a.Recommendation) + "\n\n")
	if len(a.RiskFactors) > 0 {
		b.WriteString(Section("风险因素", Bullets(a.RiskFactors)))
	}
	if a.MonitoringRequired {
		b.WriteString(StyleYellow.Render("需要持续监测生命体征") + "\n")
	}
	return RenderBox("伤情评估", strings.TrimRight(b.String(), "\n"))
}

// FormatIdentification renders the guessed emergency type.
func FormatIdentification(id emergency.Identification, ok bool) string {
	if !ok {
		return Dim("无法识别紧急情况类型，请描述得更具体一些。") + "\n" +
			Dim("可识别类型: "+strings.Join(emergency.Types(), "、"))
	}
	return fmt.Sprintf("%s %s  %s  %s",
		StyleBold.Render("识别结果:"), Bold(id.Type),
		SeverityIndicator(id.Severity),
		Dim(fmt.Sprintf("置信度 %.0f%%", id.Confidence*100)))
}

// FormatQuickGuide renders the quick reference card for an emergency type.
func FormatQuickGuide(emergencyType string, g emergency.QuickGuide) string {
	var b strings.Builder
	b.WriteString(Section("优先行动", Bullets(g.PriorityActions)))
	b.WriteString(Section("避免", Bullets(g.AvoidActions)))
	b.WriteString(Section("出现以下情况立即求助", Bullets(g.CallForHelpIf)))
	return RenderBox(emergencyType+" 快速指南", strings.TrimRight(b.String(), "\n"))
}

// FormatResponse renders a full first-response procedure.
func FormatResponse(r emergency.Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %s\n", Bold(r.EmergencyType), DangerMeter(r.Severity), Dim(r.SeverityDescription))
	if r.Generic {
		b.WriteString(Dim("知识库中没有该类型的专门处理程序，以下为通用处理原则。") + "\n")
	}
	b.WriteString("\n" + StyleRed.Render("▶ "+r.ImmediateAction) + "\n\n")
	b.WriteString(Section("处理步骤", Numbered(r.Steps)))
	b.WriteString(Section("所需资源", Bullets(r.Resources)))
	b.WriteString(Section("警示信号", Bullets(r.WarningSigns)))
	b.WriteString(Section("何时求助", Bullets(r.WhenToSeekHelp)))
	if r.EstimatedTime != "" {
		fmt.Fprintf(&b, "%s %s\n\n", StyleBold.Render("预计处理时间:"), r.EstimatedTime)
	}
	b.WriteString(Section("后续护理", Bullets(r.FollowUpCare)))
	b.WriteString(Section("特殊人群", Bullets(r.SpecialConsiderations)))
	if r.PreventionTips != "" {
		b.WriteString(Section("预防", "  "+r.PreventionTips))
	}
	return RenderBox("紧急处理", strings.TrimRight(b.String(), "\n"))
}

// FormatContacts renders the emergency contact sheet.
func FormatContacts(c emergency.ContactSheet) string {
	rows := make([][]string, 0, len(c.Services)+2)
	for _, s := range append(append([]emergency.Contact{}, c.Services...), c.PoisonControl, c.MentalHealth) {
		rows = append(rows, []string{s.Name, StyleRed.Render(s.Number), Dim(s.Note)})
	}
	return RenderBox("紧急联系", RenderTable([]string{"服务", "电话", "说明"}, rows)+"\n"+
		Section("注意事项", Bullets(c.ImportantNotes)))
}

// FormatPlan renders an emergency preparation checklist.
func FormatPlan(p emergency.EmergencyPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s · %s %d\n\n", StyleBold.Render("地点:"), p.LocationType, StyleBold.Render("人数:"), p.GroupSize)
	b.WriteString(Section("准备", Bullets(p.Preparation)))
	b.WriteString(Section("通讯", Bullets(p.Communication)))
	b.WriteString(Section("物资", Bullets(p.Supplies)))
	b.WriteString(Section("分工", Bullets(p.Roles)))
	if len(p.Preparation)+len(p.Communication)+len(p.Supplies)+len(p.Roles) == 0 {
		b.WriteString(Dim("该地点暂无专门清单。"))
	}
	return RenderBox("应急预案", strings.TrimRight(b.String(), "\n"))
}

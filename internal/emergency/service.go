package emergency

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/repository"
)

// Response is a full first-response plan for one emergency type.
type Response struct {
	EmergencyType         string
	Severity              int
	SeverityDescription   string
	ImmediateAction       string
	Steps                 []string
	Resources             []string
	PreventionTips        string
	WarningSigns          []string
	WhenToSeekHelp        []string
	EstimatedTime         string
	FollowUpCare          []string
	SpecialConsiderations []string
	// Generic is set when no stored procedure matched.
	Generic bool
}

// Service assembles responses from stored procedures and the static tables.
type Service struct {
	procedures repository.ProcedureRepo
	logger     *slog.Logger
}

// NewService creates a Service. A nil logger discards store errors.
func NewService(procedures repository.ProcedureRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{procedures: procedures, logger: logger}
}

// Respond returns the highest-severity stored procedure for emergencyType,
// enriched with guidance tables and tailored by additionalInfo. A store
// failure or an unknown type yields the generic response.
func (s *Service) Respond(ctx context.Context, emergencyType, additionalInfo string) Response {
	procs, err := s.procedures.ListByType(ctx, emergencyType)
	if err != nil {
		s.logger.WarnContext(ctx, "emergency procedure lookup failed",
			"emergency_type", emergencyType, "error", err)
	}
	if err != nil || len(procs) == 0 {
		return genericResponse(emergencyType)
	}

	p := procs[0]
	resp := Response{
		EmergencyType:       p.EmergencyType,
		Severity:            p.Severity,
		SeverityDescription: SeverityDescription(p.Severity),
		ImmediateAction:     p.ImmediateAction,
		Steps:               p.Steps,
		Resources:           p.Resources,
		PreventionTips:      p.PreventionTips,
		WarningSigns:        lookupList(warningSigns, emergencyType, "情况恶化", "症状加重", "新症状出现"),
		WhenToSeekHelp:      lookupList(helpCriteria, emergencyType, "情况超出处理能力", "症状持续恶化", "不确定如何处理"),
		EstimatedTime:       "根据情况而定",
		FollowUpCare:        lookupList(followUpCare, emergencyType, "密切观察", "适当休息", "必要时就医"),
	}
	if t, ok := timeEstimates[emergencyType]; ok {
		resp.EstimatedTime = t
	}
	resp.SpecialConsiderations = specialConsiderations(additionalInfo)
	return resp
}

// Procedures lists stored procedures matching emergencyType. Store failures
// are logged and yield an empty list.
func (s *Service) Procedures(ctx context.Context, emergencyType string) []domain.EmergencyProcedure {
	procs, err := s.procedures.ListByType(ctx, emergencyType)
	if err != nil {
		s.logger.WarnContext(ctx, "emergency procedure listing failed", "error", err)
		return nil
	}
	return procs
}

type audience struct {
	markers []string
	notes   []string
}

var audiences = []audience{
	{[]string{"老人", "elderly"}, []string{"老年人恢复较慢", "注意并发症", "药物剂量调整"}},
	{[]string{"儿童", "child"}, []string{"儿童剂量不同", "家长陪同", "心理安慰重要"}},
	{[]string{"孕妇", "pregnant"}, []string{"避免某些药物", "特殊体位", "考虑胎儿安全"}},
}

// specialConsiderations collects notes for every audience mentioned in info.
func specialConsiderations(info string) []string {
	if info == "" {
		return nil
	}
	lower := strings.ToLower(info)
	var out []string
	for _, a := range audiences {
		for _, m := range a.markers {
			if strings.Contains(lower, m) {
				out = append(out, a.notes...)
				break
			}
		}
	}
	return out
}

func genericResponse(emergencyType string) Response {
	return Response{
		EmergencyType:       emergencyType,
		Severity:            2,
		SeverityDescription: SeverityDescription(2),
		ImmediateAction:     "保持冷静，评估情况，确保安全",
		Steps:               []string{"评估现场安全", "检查患者状况", "采取适当措施", "寻求专业帮助"},
		Resources:           []string{"急救包", "通讯设备", "清洁用品"},
		PreventionTips:      "提前学习急救知识，准备急救用品",
		WarningSigns:        []string{"情况恶化", "症状加重"},
		WhenToSeekHelp:      []string{"超出处理能力", "情况不明确"},
		EstimatedTime:       "根据具体情况而定",
		FollowUpCare:        []string{"密切观察", "适当休息"},
		Generic:             true,
	}
}

package scenario

import (
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

// MaxRisk caps the total of a risk assessment.
const MaxRisk = 10

var baseRisk = map[domain.Scenario]int{
	domain.ScenarioNormal:          2,
	domain.ScenarioZombie:          4,
	domain.ScenarioBiochemical:     4,
	domain.ScenarioNuclear:         4,
	domain.ScenarioAlien:           5,
	domain.ScenarioNaturalDisaster: 3,
}

var (
	highRiskPlaces     = []string{"城市", "医院", "学校", "商场", "机场"}
	mediumRiskPlaces   = []string{"郊区", "小镇", "工厂"}
	essentialResources = []string{"水", "食物", "医疗", "武器", "通讯"}
)

type RiskFactors struct {
	Location  string
	TimeOfDay string
	// GroupSize of zero or less is treated as one person alone.
	GroupSize int
	Resources []string
}

// RiskBreakdown holds the contribution of each factor.
type RiskBreakdown struct {
	Base      int
	Location  int
	Time      int
	Group     int
	Resources int
}

func (b RiskBreakdown) sum() int {
	return b.Base + b.Location + b.Time + b.Group + b.Resources
}

type RiskAssessment struct {
	Total           int
	Description     string
	Factors         RiskBreakdown
	Recommendations []string
}

// AssessRisk scores a situation in scenario s. The total is the sum of the
// factor contributions capped at MaxRisk. It is not floored, so a very safe
// situation can go below zero.
func AssessRisk(s domain.Scenario, f RiskFactors) RiskAssessment {
	base, ok := baseRisk[s]
	if !ok {
		base = baseRisk[domain.ScenarioNormal]
	}
	b := RiskBreakdown{
		Base:      base,
		Location:  placeRisk(f.Location),
		Time:      nightShift(s, f.TimeOfDay),
		Group:     groupRisk(f.GroupSize),
		Resources: resourceRisk(f.Resources),
	}
	total := min(b.sum(), MaxRisk)
	return RiskAssessment{
		Total:           total,
		Description:     RiskDescription(total),
		Factors:         b,
		Recommendations: riskRecommendations(total),
	}
}

func placeRisk(location string) int {
	switch {
	case location == "":
		return 0
	case containsAny(location, highRiskPlaces):
		return 2
	case containsAny(location, mediumRiskPlaces):
		return 1
	}
	// Remote places are safer than average.
	return -1
}

func groupRisk(size int) int {
	switch {
	case size <= 1:
		return 2
	case size <= 4:
		return -1
	case size <= 10:
		return 0
	}
	return 2
}

func resourceRisk(resources []string) int {
	if len(resources) == 0 {
		return 2
	}
	available := 0
	for _, essential := range essentialResources {
		for _, r := range resources {
			if r != "" && (strings.Contains(r, essential) || strings.Contains(essential, r)) {
				available++
				break
			}
		}
	}
	switch {
	case available >= 4:
		return -2
	case available >= 2:
		return -1
	case available >= 1:
		return 0
	}
	return 3
}

// RiskDescription labels a total risk score.
func RiskDescription(total int) string {
	switch {
	case total <= 2:
		return "低风险 - 相对安全"
	case total <= 4:
		return "中等风险 - 需要谨慎"
	case total <= 6:
		return "高风险 - 危险环境"
	case total <= 8:
		return "极高风险 - 生命危险"
	}
	return "致命风险 - 立即撤离"
}

func riskRecommendations(total int) []string {
	switch {
	case total <= 2:
		return []string{"保持警惕", "定期检查装备", "收集信息"}
	case total <= 4:
		return []string{"加强防护", "准备撤离计划", "团队行动"}
	case total <= 6:
		return []string{"立即加强防护", "寻找安全区域", "减少活动"}
	case total <= 8:
		return []string{"准备立即撤离", "启动紧急程序", "寻求支援"}
	}
	return []string{"立即撤离", "启动最高级别应急预案", "生存第一"}
}

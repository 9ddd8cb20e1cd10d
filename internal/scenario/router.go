// Package scenario holds the scenario-specific advice table, threat
// adjustment and the situational risk model.
package scenario

import (
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

// Group names the second-level branch a question was routed to.
type Group string

const (
	GroupGeneral       Group = "general"
	GroupBite          Group = "bite"
	GroupCombat        Group = "combat"
	GroupHiding        Group = "hiding"
	GroupForaging      Group = "foraging"
	GroupProtection    Group = "protection"
	GroupDecon         Group = "decontamination"
	GroupPoisoning     Group = "poisoning"
	GroupDetection     Group = "detection"
	GroupMedical       Group = "medical"
	GroupCommunication Group = "communication"
)

var groupLabels = map[Group]string{
	GroupGeneral:       "综合",
	GroupBite:          "咬伤感染",
	GroupCombat:        "战斗",
	GroupHiding:        "躲藏",
	GroupForaging:      "觅食补给",
	GroupProtection:    "防护",
	GroupDecon:         "洗消",
	GroupPoisoning:     "中毒",
	GroupDetection:     "检测",
	GroupMedical:       "医疗",
	GroupCommunication: "沟通",
}

// Label is the display name of g.
func (g Group) Label() string {
	if l, ok := groupLabels[g]; ok {
		return l
	}
	return string(g)
}

type answer struct {
	text   string
	threat domain.ThreatTag
	recs   []string
}

type branch struct {
	group    Group
	keywords []string
	answer   answer
}

// Routed is the outcome of a router dispatch. Text is empty when the
// scenario has no scenario-specific advice.
type Routed struct {
	Text            string
	Scenario        domain.Scenario
	Group           Group
	Threat          domain.ThreatTag
	Recommendations []string
}

// branches is ordered: the first branch whose keywords occur in the question
// wins. A branch with no keywords always matches and must come last.
var branches = map[domain.Scenario][]branch{
	domain.ScenarioZombie: {
		{GroupBite, []string{"咬伤", "感染", "被咬"}, zombieBite},
		{GroupCombat, []string{"武器", "战斗", "攻击"}, zombieCombat},
		{GroupHiding, []string{"躲藏", "隐蔽", "安全"}, zombieHiding},
		{GroupForaging, []string{"食物", "觅食", "补给"}, zombieForaging},
		{GroupGeneral, nil, zombieGeneral},
	},
	domain.ScenarioBiochemical: {
		{GroupProtection, []string{"防护", "防护服", "面具"}, bioProtection},
		{GroupDecon, []string{"去污", "清洗", "消毒"}, bioDecon},
		{GroupPoisoning, []string{"中毒", "症状", "治疗"}, bioPoisoning},
		{GroupGeneral, nil, bioGeneral},
	},
	domain.ScenarioNuclear: {
		{GroupDetection, []string{"辐射", "检测", "测量"}, nuclearDetection},
		{GroupProtection, []string{"防护", "屏蔽", "避难"}, nuclearProtection},
		{GroupMedical, []string{"碘片", "药物", "治疗"}, nuclearMedical},
		{GroupGeneral, nil, nuclearGeneral},
	},
	domain.ScenarioAlien: {
		{GroupHiding, []string{"隐蔽", "躲藏", "发现"}, alienHiding},
		{GroupCommunication, []string{"通讯", "信号", "联系"}, alienCommunication},
		{GroupCombat, []string{"武器", "对抗", "反击"}, alienCombat},
		{GroupGeneral, nil, alienGeneral},
	},
	domain.ScenarioNaturalDisaster: {
		{GroupGeneral, nil, disasterGeneral},
	},
	domain.ScenarioNormal: {
		{GroupGeneral, nil, answer{
			threat: domain.ThreatLow,
			recs:   []string{"基础生存技能", "环境适应", "资源管理"},
		}},
	},
}

// Router dispatches a question to the canned advice for a scenario.
type Router struct{}

func NewRouter() *Router { return &Router{} }

// Route picks the advice for question under scenario s. Unknown scenarios
// route as normal.
func (r *Router) Route(s domain.Scenario, question string) Routed {
	if !s.Valid() {
		s = domain.ScenarioNormal
	}
	q := strings.ToLower(question)
	for _, b := range branches[s] {
		if len(b.keywords) > 0 && !containsAny(q, b.keywords) {
			continue
		}
		return Routed{
			Text:            b.answer.text,
			Scenario:        s,
			Group:           b.group,
			Threat:          b.answer.threat,
			Recommendations: append([]string(nil), b.answer.recs...),
		}
	}
	return Routed{Scenario: s, Group: GroupGeneral, Threat: domain.ThreatLow}
}

// Groups lists the branch groups of s in dispatch order. The last one is
// always GroupGeneral.
func Groups(s domain.Scenario) []Group {
	out := make([]Group, 0, len(branches[s]))
	for _, b := range branches[s] {
		out = append(out, b.group)
	}
	return out
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

package llm

import "github.com/alexanderramin/haven/internal/domain"

const basePrompt = "你是一个专业的生存专家和AI助手，专门为用户提供各种生存场景下的专业建议和指导。"

var scenarioPrompts = map[domain.Scenario]string{
	domain.ScenarioNormal:          "当前场景是普通的野外生存环境。请提供实用的生存技巧和建议。",
	domain.ScenarioZombie:          "当前场景是僵尸末日。需要考虑僵尸威胁、资源稀缺、避难所安全等因素。",
	domain.ScenarioBiochemical:     "当前场景是生化危机。需要考虑生化污染、防护措施、净化处理等因素。",
	domain.ScenarioNuclear:         "当前场景是核辐射环境。需要考虑辐射防护、安全区域、去污处理等因素。",
	domain.ScenarioAlien:           "当前场景是外星人入侵。需要考虑未知威胁、隐蔽行动、通讯中断等因素。",
	domain.ScenarioNaturalDisaster: "当前场景是自然灾害。需要考虑地震、洪水、火灾等自然威胁。",
}

// SystemPrompt builds the system message for scenario s. Unknown scenarios
// use the normal prompt.
func SystemPrompt(s domain.Scenario) string {
	p, ok := scenarioPrompts[s]
	if !ok {
		p = scenarioPrompts[domain.ScenarioNormal]
	}
	return basePrompt + "\n\n" + p + "\n\n请用中文回答，提供具体可行的建议，包括步骤说明和注意事项。"
}

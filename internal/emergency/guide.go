package emergency

// QuickGuide is a short do/don't card for an emergency type.
type QuickGuide struct {
	PriorityActions []string
	AvoidActions    []string
	CallForHelpIf   []string
}

var quickGuides = map[string]QuickGuide{
	"外伤出血": {
		PriorityActions: []string{"🚨 立即直接压迫伤口止血", "🤲 用干净布料或手直接按压", "📈 抬高受伤部位高于心脏", "🩹 持续压迫至少10-15分钟"},
		AvoidActions:    []string{"❌ 不要移除已插入的异物", "❌ 不要使用止血带（除非专业训练）", "❌ 不要频繁查看伤口"},
		CallForHelpIf:   []string{"出血无法控制", "伤口很深或很大", "有异物插入", "患者意识模糊"},
	},
	"骨折": {
		PriorityActions: []string{"🛑 不要移动患者", "🏥 立即固定受伤部位", "❄️ 冰敷减轻疼痛和肿胀", "📞 尽快寻求医疗帮助"},
		AvoidActions:    []string{"❌ 不要试图复位骨折", "❌ 不要给患者食物或水", "❌ 不要移动受伤部位"},
		CallForHelpIf:   []string{"骨头穿破皮肤", "肢体变形严重", "患者休克症状", "无法感觉或移动肢体"},
	},
	"中毒": {
		PriorityActions: []string{"🚫 立即停止接触毒物", "💧 大量饮用清水稀释", "📝 记录毒物种类和时间", "👁️ 密切观察生命体征"},
		AvoidActions:    []string{"❌ 不要催吐（除非确认安全）", "❌ 不要给昏迷患者喝水", "❌ 不要使用民间偏方"},
		CallForHelpIf:   []string{"患者意识不清", "呼吸困难", "持续呕吐", "皮肤发青或发白"},
	},
	"溺水": {
		PriorityActions: []string{"🏊 确保自身安全后施救", "🫁 立即检查呼吸和脉搏", "💨 如无呼吸立即人工呼吸", "💓 必要时进行心肺复苏"},
		AvoidActions:    []string{"❌ 不要贸然下水救人", "❌ 不要试图控水", "❌ 不要放弃抢救"},
		CallForHelpIf:   []string{"患者无意识", "无呼吸或脉搏", "呛水严重", "体温过低"},
	},
}

var genericGuide = QuickGuide{
	PriorityActions: []string{"🚨 保持冷静", "📞 寻求专业帮助", "🛡️ 确保安全"},
	AvoidActions:    []string{"❌ 不要恐慌", "❌ 不要盲目行动"},
	CallForHelpIf:   []string{"情况严重", "不确定如何处理"},
}

// GuideFor returns the quick guide for emergencyType, or a generic one.
func GuideFor(emergencyType string) QuickGuide {
	if g, ok := quickGuides[emergencyType]; ok {
		return g
	}
	return genericGuide
}

var warningSigns = map[string][]string{
	"外伤出血": {"出血不止", "伤口很深", "有异物插入", "患者面色苍白", "意识模糊"},
	"骨折":   {"骨头外露", "肢体变形", "无法移动", "剧烈疼痛", "肿胀严重"},
	"中毒":   {"意识不清", "呼吸困难", "皮肤发青", "持续呕吐", "抽搐"},
	"烧伤":   {"烧伤面积大", "深度烧伤", "呼吸道烧伤", "电击伤", "化学烧伤"},
}

var helpCriteria = map[string][]string{
	"外伤出血": {"无法止血", "伤口很深", "失血过多", "感染迹象"},
	"骨折":   {"开放性骨折", "神经血管损伤", "多处骨折", "脊柱损伤可能"},
	"中毒":   {"不明毒物", "症状严重", "意识改变", "呼吸心跳异常"},
	"烧伤":   {"三度烧伤", "面积超过手掌大小", "特殊部位烧伤", "吸入性损伤"},
}

var timeEstimates = map[string]string{
	"外伤出血": "立即开始，持续10-20分钟",
	"骨折":   "立即固定，等待专业救助",
	"中毒":   "立即处理，观察2-4小时",
	"烧伤":   "立即冷却，持续处理",
	"溺水":   "立即抢救，黄金4-6分钟",
}

var followUpCare = map[string][]string{
	"外伤出血": {"定期更换敷料", "观察感染迹象", "保持伤口清洁", "适当休息"},
	"骨折":   {"遵医嘱固定", "定期复查", "适当功能锻炼", "营养补充"},
	"中毒":   {"继续观察症状", "多饮水促进排毒", "清淡饮食", "避免再次接触"},
	"烧伤":   {"保持创面清洁", "预防感染", "适当营养", "避免阳光直射"},
}

func lookupList(table map[string][]string, key string, fallback ...string) []string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

var severityDescriptions = map[int]string{
	1: "轻微 - 可自行处理",
	2: "中等 - 需要注意",
	3: "严重 - 立即处理",
	4: "危急 - 生命危险",
}

// SeverityDescription describes a stored procedure severity (1-4).
func SeverityDescription(level int) string {
	if d, ok := severityDescriptions[level]; ok {
		return d
	}
	return "未知程度"
}

package emergency

// Contact is a named phone line.
type Contact struct {
	Name   string
	Number string
	Note   string
}

// ContactSheet is the static emergency contact card.
type ContactSheet struct {
	Services       []Contact
	PoisonControl  Contact
	MentalHealth   Contact
	ImportantNotes []string
}

// Contacts returns the built-in contact sheet.
func Contacts() ContactSheet {
	return ContactSheet{
		Services: []Contact{
			{Name: "急救", Number: "120", Note: "中国急救"},
			{Name: "消防", Number: "119"},
			{Name: "报警", Number: "110"},
			{Name: "国际紧急", Number: "112", Note: "国际通用"},
		},
		PoisonControl: Contact{Name: "中毒急救咨询", Number: "400-161-9999", Note: "24小时中毒急救咨询热线"},
		MentalHealth:  Contact{Name: "心理危机干预", Number: "400-161-9995", Note: "心理危机干预和自杀预防"},
		ImportantNotes: []string{
			"拨打急救电话时保持冷静",
			"准确描述位置和情况",
			"按照调度员指示操作",
			"不要挂断电话直到被告知可以",
		},
	}
}

// LocationWilderness is the location type with a full preparation checklist.
const LocationWilderness = "野外"

// EmergencyPlan is a preparation checklist for a location and group.
type EmergencyPlan struct {
	LocationType  string
	GroupSize     int
	Preparation   []string
	Communication []string
	Supplies      []string
	Roles         []string
}

// Plan builds a checklist. Only the wilderness location carries preparation,
// communication and supply lists; roles are assigned when more than one
// person is involved.
func Plan(locationType string, groupSize int) EmergencyPlan {
	plan := EmergencyPlan{LocationType: locationType, GroupSize: groupSize}
	if locationType == LocationWilderness {
		plan.Preparation = []string{"告知他人行程计划", "携带通讯设备", "准备急救包", "学习基本急救技能", "了解当地紧急情况"}
		plan.Communication = []string{"定时报告位置", "设置紧急联系人", "准备信号设备（哨子、镜子）", "学会发送求救信号"}
		plan.Supplies = []string{"急救包和常用药品", "额外的食物和水", "保暖用品", "照明设备", "多功能工具"}
	}
	if groupSize > 1 {
		plan.Roles = []string{"指定团队领导者", "分配急救责任人", "指定通讯联络员", "安排物资管理员"}
	}
	return plan
}

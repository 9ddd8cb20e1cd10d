package skills

import (
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

// Category is a skill grouping with a stable slug.
type Category struct {
	Name string
	Slug string
}

// Categories is the skill taxonomy in display order.
var Categories = []Category{
	{"生火", "fire_making"},
	{"水源", "water_source"},
	{"食物获取", "food_gathering"},
	{"庇护所建造", "shelter_building"},
	{"工具制作", "tool_making"},
	{"导航定位", "navigation"},
	{"急救医疗", "first_aid"},
	{"信号求救", "signaling"},
}

var categoryTips = map[string][]string{
	"生火": {
		"干燥的材料是成功生火的关键",
		"准备充足的引火物和燃料",
		"选择避风但通风良好的位置",
		"练习不同的生火方法",
		"始终准备灭火材料",
	},
	"水源": {
		"永远不要直接饮用未处理的自然水源",
		"多种净化方法结合使用效果更好",
		"储存净化后的水要使用清洁容器",
		"学会识别水质的基本方法",
		"节约用水，合理分配",
	},
	"食物获取": {
		"不确定的食物绝对不要食用",
		"学会基本的可食性测试方法",
		"优先选择熟悉的食物来源",
		"合理搭配营养，避免单一食物",
		"注意食物的保存和处理",
	},
	"庇护所建造": {
		"位置选择比建造技巧更重要",
		"保温、防水、通风三者缺一不可",
		"就地取材，充分利用自然资源",
		"考虑长期使用的舒适性",
		"定期检查和维护结构",
	},
	"工具制作": {
		"安全使用工具，避免意外伤害",
		"选择合适的材料很关键",
		"简单实用比复杂精美更重要",
		"定期保养和维护工具",
		"学会多种工具的制作方法",
	},
	"导航定位": {
		"多种导航方法结合使用",
		"定期确认方向，避免偏离路线",
		"标记重要地点和路径",
		"学会读懂自然界的方向指示",
		"保持冷静，避免恐慌性行动",
	},
}

var defaultTips = []string{
	"多练习，熟能生巧",
	"安全第一，谨慎操作",
	"学会观察和思考",
	"准备充分，有备无患",
}

// Tips returns the practice tips for a skill category.
func Tips(category string) []string {
	if t, ok := categoryTips[category]; ok {
		return t
	}
	return defaultTips
}

type keyPointRule struct {
	markers []string
	points  []string
}

// keyPointRules is checked in order per category; the first rule whose
// marker appears in the step wins.
var keyPointRules = map[string][]keyPointRule{
	string(domain.CategoryFire): {
		{[]string{"准备", "收集"}, []string{"确保材料干燥", "准备不同粗细的燃料", "选择避风位置"}},
		{[]string{"点燃"}, []string{"从小到大逐步添加燃料", "保持适当通风", "准备备用引火物"}},
	},
	string(domain.CategoryWater): {
		{[]string{"过滤"}, []string{"多层过滤效果更好", "定期更换过滤材料", "过滤后仍需消毒"}},
		{[]string{"煮沸"}, []string{"持续煮沸5-10分钟", "使用清洁容器", "冷却后密封保存"}},
	},
	string(domain.CategoryShelter): {
		{[]string{"选择", "位置"}, []string{"避开低洼积水区", "考虑风向和日照", "靠近水源但保持安全距离"}},
		{[]string{"搭建"}, []string{"确保结构稳固", "预留通风口", "做好排水措施"}},
	},
}

var genericKeyPoints = []string{"仔细观察周围环境", "确保安全第一", "如有疑问请寻求帮助"}

// KeyPoints returns the things to watch for while performing step.
func KeyPoints(category, step string) []string {
	for _, r := range keyPointRules[category] {
		for _, m := range r.markers {
			if strings.Contains(step, m) {
				return r.points
			}
		}
	}
	return genericKeyPoints
}

var essentialCategories = map[string]bool{
	string(domain.CategoryWater):   true,
	string(domain.CategoryShelter): true,
	string(domain.CategoryFire):    true,
}

// RecommendationReason explains why s suits a user at level.
func RecommendationReason(s domain.SkillEntry, level int) string {
	var reasons []string
	switch {
	case s.Difficulty == level:
		reasons = append(reasons, "适合您当前的技能水平")
	case s.Difficulty < level:
		reasons = append(reasons, "基础技能，建议优先掌握")
	}
	if essentialCategories[s.Category] {
		reasons = append(reasons, "生存必备技能")
	}
	if s.EstimatedMinutes <= 60 {
		reasons = append(reasons, "学习时间较短，容易掌握")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "实用的生存技能")
	}
	return strings.Join(reasons, "、")
}

package advisor

import (
	"math/rand/v2"

	"github.com/alexanderramin/haven/internal/domain"
)

type templateKind string

const (
	tmplGreeting templateKind = "greeting"
	tmplWater    templateKind = "water_advice"
	tmplFood     templateKind = "food_advice"
	tmplShelter  templateKind = "shelter_advice"
	tmplMedical  templateKind = "medical_advice"
	tmplFire     templateKind = "fire_advice"
	tmplNoMatch  templateKind = "no_match"
)

const defaultTemplate = "我会尽力帮助您解决问题。"

var templates = map[templateKind][]string{
	tmplGreeting: {
		"您好！我是您的AI生存向导，很高兴为您服务！🎯",
		"欢迎使用AI末日生存求生向导！我将为您提供专业的生存建议。💪",
		"您好！请告诉我您遇到的生存问题，我会尽力帮助您。🔥",
	},
	tmplWater: {
		"关于水源问题，这是生存中最重要的需求之一。💧",
		"水是生命之源，让我为您提供寻找和净化水源的建议。🌊",
		"在野外获取安全饮用水是关键技能，以下是一些方法：💦",
	},
	tmplFood: {
		"关于食物获取，我来为您介绍一些野外觅食的方法。🍖",
		"在野外寻找食物需要谨慎，让我分享一些安全的方法。🌿",
		"食物是维持体力的重要来源，以下是一些获取方法：🥜",
	},
	tmplShelter: {
		"搭建庇护所是保护自己免受恶劣天气影响的重要技能。🏠",
		"一个好的庇护所能够保命，让我教您如何搭建。⛺",
		"庇护所的选择和搭建有很多要点需要注意：🛡️",
	},
	tmplMedical: {
		"医疗急救知识在紧急情况下非常重要。🏥",
		"处理伤口和急救是生存技能的重要组成部分。💊",
		"让我为您介绍一些基础的急救处理方法：🩹",
	},
	tmplFire: {
		"生火是野外生存的基本技能之一。🔥",
		"火能提供温暖、烹饪食物和信号求救。🔥",
		"掌握生火技巧对野外生存至关重要：🔥",
	},
	tmplNoMatch: {
		"抱歉，我没有完全理解您的问题。请尝试更具体地描述您的情况。🤔",
		"您的问题很有趣，但我需要更多信息才能给出准确建议。💭",
		"请尝试用不同的方式描述您的问题，或者查看其他选项卡中的内容。📚",
	},
}

// categoryTemplates maps a category to its advice sentences. Categories
// without an entry use defaultTemplate.
var categoryTemplates = map[domain.Category]templateKind{
	domain.CategoryWater:   tmplWater,
	domain.CategoryFood:    tmplFood,
	domain.CategoryShelter: tmplShelter,
	domain.CategoryMedical: tmplMedical,
	domain.CategoryFire:    tmplFire,
}

// Picker returns an index in [0, n). Tests inject a fixed picker.
type Picker func(n int) int

// FirstPicker always picks the first template.
func FirstPicker(int) int { return 0 }

func randomPicker(n int) int { return rand.IntN(n) }

func (p Picker) pick(kind templateKind) string {
	list := templates[kind]
	if len(list) == 0 {
		return defaultTemplate
	}
	i := p(len(list))
	if i < 0 || i >= len(list) {
		i = 0
	}
	return list[i]
}

func (p Picker) forCategory(c domain.Category) string {
	kind, ok := categoryTemplates[c]
	if !ok {
		return defaultTemplate
	}
	return p.pick(kind)
}

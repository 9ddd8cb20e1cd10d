package emergency

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/haven/internal/domain"
)

type emergencyType struct {
	name     string
	keywords []string
	severity domain.SeverityLevel
}

// Ties resolve to the earlier entry.
var emergencyTypes = []emergencyType{
	{"外伤出血", []string{"出血", "流血", "伤口", "割伤", "划伤", "外伤"}, domain.SeverityHigh},
	{"骨折", []string{"骨折", "断骨", "骨头断了", "骨裂", "脱臼"}, domain.SeverityHigh},
	{"烧伤", []string{"烧伤", "烫伤", "灼伤", "火烧", "热水烫"}, domain.SeverityMedium},
	{"中毒", []string{"中毒", "食物中毒", "误食", "恶心", "呕吐", "腹泻"}, domain.SeverityHigh},
	{"失温", []string{"失温", "体温过低", "冻伤", "寒冷", "发抖"}, domain.SeverityHigh},
	{"中暑", []string{"中暑", "热射病", "体温过高", "头晕", "脱水"}, domain.SeverityHigh},
	{"迷路", []string{"迷路", "走失", "找不到路", "方向不明"}, domain.SeverityMedium},
	{"野兽攻击", []string{"野兽", "动物攻击", "咬伤", "抓伤", "熊", "狼", "蛇咬"}, domain.SeverityCritical},
	{"溺水", []string{"溺水", "掉水里", "不会游泳", "呛水"}, domain.SeverityCritical},
	{"窒息", []string{"窒息", "呼吸困难", "喉咙卡住", "气道阻塞"}, domain.SeverityCritical},
	{"心脏病发作", []string{"心脏病", "胸痛", "心绞痛", "心脏不适"}, domain.SeverityCritical},
	{"过敏反应", []string{"过敏", "皮疹", "红肿", "呼吸急促", "过敏性休克"}, domain.SeverityHigh},
}

// Identification is the best-matching emergency type for a description.
type Identification struct {
	Type       string
	Severity   domain.SeverityLevel
	Confidence float64
}

// Identify scores every emergency type by the summed rune length of its
// keywords found in description. Confidence is min(score/10, 1).
func Identify(description string) (Identification, bool) {
	text := strings.ToLower(description)
	var (
		best      *emergencyType
		bestScore int
	)
	for i := range emergencyTypes {
		et := &emergencyTypes[i]
		score := 0
		for _, kw := range et.keywords {
			if strings.Contains(text, kw) {
				score += utf8.RuneCountInString(kw)
			}
		}
		if score > bestScore {
			best, bestScore = et, score
		}
	}
	if best == nil {
		return Identification{}, false
	}
	return Identification{
		Type:       best.name,
		Severity:   best.severity,
		Confidence: math.Min(float64(bestScore)/10, 1),
	}, true
}

// Types lists the known emergency type names in declaration order.
func Types() []string {
	out := make([]string, len(emergencyTypes))
	for i, et := range emergencyTypes {
		out[i] = et.name
	}
	return out
}

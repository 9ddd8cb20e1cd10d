package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/haven/internal/domain"
)

type categoryKeywords struct {
	category domain.Category
	keywords []string
}

// defaultKeywords is ordered; ties resolve to the earlier category.
var defaultKeywords = []categoryKeywords{
	{domain.CategoryWater, []string{"水", "饮水", "净水", "水源", "喝水", "缺水", "找水", "取水"}},
	{domain.CategoryFood, []string{"食物", "吃", "饥饿", "觅食", "狩猎", "采集", "植物", "果实", "肉类"}},
	{domain.CategoryShelter, []string{"庇护所", "帐篷", "住所", "避难", "搭建", "房屋", "遮蔽", "过夜"}},
	{domain.CategoryMedical, []string{"医疗", "受伤", "伤口", "急救", "治疗", "药物", "包扎", "止血", "骨折"}},
	{domain.CategoryFire, []string{"生火", "火", "点火", "取暖", "烹饪", "火堆", "燃料", "打火机"}},
	{domain.CategoryNavigation, []string{"导航", "方向", "迷路", "指南针", "定位", "路线", "地图", "北方"}},
	{domain.CategoryTools, []string{"工具", "制作", "武器", "刀具", "绳索", "容器", "陷阱"}},
	{domain.CategoryWeather, []string{"天气", "下雨", "寒冷", "炎热", "风暴", "雪", "温度"}},
	{domain.CategoryDanger, []string{"危险", "野兽", "毒蛇", "有毒", "攻击", "防御", "逃跑"}},
}

// Classifier maps a question to the knowledge category whose keywords cover
// the most characters of it.
type Classifier struct {
	table []categoryKeywords
}

// NewClassifier returns a Classifier over the built-in keyword table.
func NewClassifier() *Classifier {
	return &Classifier{table: defaultKeywords}
}

// Score is the per-category keyword weight of one question.
type Score struct {
	Category domain.Category
	Weight   int
}

// Scores returns the weight of every category in declaration order. The
// weight is the summed rune length of each keyword found as a substring.
func (c *Classifier) Scores(text string) []Score {
	normalized := Normalize(text)
	out := make([]Score, 0, len(c.table))
	for _, entry := range c.table {
		weight := 0
		for _, kw := range entry.keywords {
			if strings.Contains(normalized, kw) {
				weight += utf8.RuneCountInString(kw)
			}
		}
		out = append(out, Score{Category: entry.category, Weight: weight})
	}
	return out
}

// Classify returns the category with the strictly highest positive weight.
func (c *Classifier) Classify(text string) (domain.Category, bool) {
	var (
		best    domain.Category
		bestVal int
	)
	for _, s := range c.Scores(text) {
		if s.Weight > bestVal {
			best, bestVal = s.Category, s.Weight
		}
	}
	return best, bestVal > 0
}

// Keywords returns the keyword list of a category, or nil when unknown.
func (c *Classifier) Keywords(category domain.Category) []string {
	for _, entry := range c.table {
		if entry.category == category {
			return append([]string(nil), entry.keywords...)
		}
	}
	return nil
}

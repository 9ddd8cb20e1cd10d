package matcher

import (
	"regexp"

	"github.com/alexanderramin/haven/internal/domain"
)

type rule struct {
	re     *regexp.Regexp
	intent domain.Intent
}

// Declaration order is priority. Greeting rules must stay first.
var defaultRules = []rule{
	{regexp.MustCompile(`(你好|您好|hi|hello)`), domain.IntentGreeting},
	{regexp.MustCompile(`(帮助|help)`), domain.IntentGreeting},

	{regexp.MustCompile(`.*(怎么|如何|怎样).*(找|寻找|获得|取得).*(水|水源)`), domain.IntentWaterSearch},
	{regexp.MustCompile(`.*(净化|过滤|消毒).*(水|水源)`), domain.IntentWaterPurify},
	{regexp.MustCompile(`.*(缺水|没水|渴)`), domain.IntentWaterShortage},

	{regexp.MustCompile(`.*(怎么|如何|怎样).*(找|寻找|获得|捕获).*(食物|吃的)`), domain.IntentFoodSearch},
	{regexp.MustCompile(`.*(可以吃|能吃|食用).*(什么|哪些)`), domain.IntentEdibleFood},
	{regexp.MustCompile(`.*(植物|果实|野菜)`), domain.IntentEdiblePlants},

	{regexp.MustCompile(`.*(怎么|如何|怎样).*(搭建|建造|做).*(庇护所|帐篷|住所)`), domain.IntentShelterBuild},
	{regexp.MustCompile(`.*(过夜|睡觉|休息).*(哪里|地方)`), domain.IntentShelterLocation},

	{regexp.MustCompile(`.*(受伤|伤口|出血|骨折)`), domain.IntentMedicalInjury},
	{regexp.MustCompile(`.*(急救|治疗|处理).*(伤口|外伤)`), domain.IntentMedicalTreatment},
	{regexp.MustCompile(`.*(中毒|食物中毒)`), domain.IntentMedicalPoisoning},

	{regexp.MustCompile(`.*(怎么|如何|怎样).*(生火|点火|取火)`), domain.IntentFireMaking},
	{regexp.MustCompile(`.*(没有|缺少).*(打火机|火柴)`), domain.IntentFireNoTools},

	{regexp.MustCompile(`.*(迷路|找不到|方向)`), domain.IntentNavigationLost},
	{regexp.MustCompile(`.*(怎么|如何).*(辨别|识别).*(方向|东南西北)`), domain.IntentNavigationDirection},

	{regexp.MustCompile(`.*(野兽|动物|蛇|毒蛇).*(攻击|咬|遇到)`), domain.IntentDangerAnimals},
	{regexp.MustCompile(`.*(有毒|毒性).*(植物|蘑菇)`), domain.IntentDangerPlants},
}

// PatternMatcher assigns an intent using the first rule that matches.
type PatternMatcher struct {
	rules []rule
}

// NewPatternMatcher returns a matcher over the built-in rule list.
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{rules: defaultRules}
}

// Match normalizes text and returns the intent of the first matching rule.
func (m *PatternMatcher) Match(text string) (domain.Intent, bool) {
	normalized := Normalize(text)
	for _, r := range m.rules {
		if r.re.MatchString(normalized) {
			return r.intent, true
		}
	}
	return "", false
}

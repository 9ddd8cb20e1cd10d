package matcher

import (
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMatch_GreetingWinsOverDomainRules(t *testing.T) {
	m := NewPatternMatcher()

	got, ok := m.Match("你好")
	assert.True(t, ok)
	assert.Equal(t, domain.IntentGreeting, got)

	got, ok = m.Match("你好，我受伤了，伤口还在出血")
	assert.True(t, ok)
	assert.Equal(t, domain.IntentGreeting, got)
}

func TestMatch_Intents(t *testing.T) {
	m := NewPatternMatcher()
	cases := []struct {
		question string
		want     domain.Intent
	}{
		{"如何寻找水源？", domain.IntentWaterSearch},
		{"怎样净化河里的水", domain.IntentWaterPurify},
		{"我好渴", domain.IntentWaterShortage},
		{"怎么找到食物", domain.IntentFoodSearch},
		{"野外可以吃什么", domain.IntentEdibleFood},
		{"这种果实", domain.IntentEdiblePlants},
		{"如何搭建庇护所", domain.IntentShelterBuild},
		{"过夜选什么地方", domain.IntentShelterLocation},
		{"腿骨折了", domain.IntentMedicalInjury},
		{"急救处理外伤", domain.IntentMedicalTreatment},
		{"好像食物中毒", domain.IntentMedicalPoisoning},
		{"怎么生火", domain.IntentFireMaking},
		{"没有打火机", domain.IntentFireNoTools},
		{"我迷路了", domain.IntentNavigationLost},
		{"如何辨别东南西北", domain.IntentNavigationDirection},
		{"遇到野兽攻击", domain.IntentDangerAnimals},
		{"这蘑菇有毒性吗 蘑菇", domain.IntentDangerPlants},
	}
	for _, tc := range cases {
		t.Run(tc.question, func(t *testing.T) {
			got, ok := m.Match(tc.question)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatch_DeclarationOrderDecidesOverlaps(t *testing.T) {
	m := NewPatternMatcher()

	// Matches both the water-search and water-shortage rules; search is declared first.
	got, _ := m.Match("缺水了，怎么找水")
	assert.Equal(t, domain.IntentWaterSearch, got)
}

func TestMatch_NoRule(t *testing.T) {
	_, ok := NewPatternMatcher().Match("天气怎么样")
	assert.False(t, ok)
}

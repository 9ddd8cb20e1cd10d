package matcher

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "如何找水", Normalize("  如何找水？！ "))
	assert.Equal(t, "hello world", Normalize("Hello, World!"))
	assert.Equal(t, "生火", Normalize("🔥生火"))
}

func TestClassify_LongerKeywordsOutweighShorter(t *testing.T) {
	c := NewClassifier()

	// water: 饮水(2) + 水(1) = 3; shelter: 庇护所(3) + 搭建(2) = 5
	got, ok := c.Classify("饮水 庇护所搭建")
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryShelter, got)
}

func TestClassify_TieGoesToEarlierCategory(t *testing.T) {
	c := NewClassifier()

	// 水 (water, 1) and 吃 (food, 1)
	got, ok := c.Classify("水 吃")
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryWater, got)
}

func TestClassify_NoMatch(t *testing.T) {
	got, ok := NewClassifier().Classify("今天心情不错")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestClassify_IsCaseInsensitiveForLatinInput(t *testing.T) {
	c := NewClassifier()
	a, okA := c.Classify("FIRE 生火")
	b, okB := c.Classify("fire 生火")
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
}

func TestScores_PropertyWeightIsSumOfMatchedKeywordLengths(t *testing.T) {
	c := NewClassifier()
	rapid.Check(t, func(rt *rapid.T) {
		idx := rapid.IntRange(0, len(defaultKeywords)-1).Draw(rt, "category")
		entry := defaultKeywords[idx]
		kw := rapid.SampledFrom(entry.keywords).Draw(rt, "keyword")

		before := weightOf(c.Scores("空白"), entry.category)
		after := weightOf(c.Scores("空白"+kw), entry.category)
		if after < before+utf8.RuneCountInString(kw) {
			rt.Fatalf("adding %q raised %s only from %d to %d", kw, entry.category, before, after)
		}
	})
}

func TestClassify_PropertyWinnerHasMaximalWeight(t *testing.T) {
	c := NewClassifier()
	var all []string
	for _, e := range defaultKeywords {
		all = append(all, e.keywords...)
	}
	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.SliceOfN(rapid.SampledFrom(all), 1, 5).Draw(rt, "words")
		text := strings.Join(words, " ")

		got, ok := c.Classify(text)
		if !ok {
			rt.Fatalf("text %q built from keywords did not classify", text)
		}
		scores := c.Scores(text)
		best := weightOf(scores, got)
		for _, s := range scores {
			if s.Weight > best {
				rt.Fatalf("%s scored %d above winner %s (%d)", s.Category, s.Weight, got, best)
			}
			if s.Category == got {
				break
			}
			if s.Weight == best {
				rt.Fatalf("earlier category %s tied winner %s", s.Category, got)
			}
		}
	})
}

func TestKeywords(t *testing.T) {
	c := NewClassifier()
	assert.Contains(t, c.Keywords(domain.CategoryFire), "打火机")
	assert.Nil(t, c.Keywords(domain.Category("未知")))
}

func weightOf(scores []Score, cat domain.Category) int {
	for _, s := range scores {
		if s.Category == cat {
			return s.Weight
		}
	}
	return 0
}

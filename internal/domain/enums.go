package domain

// Scenario identifies one of the fixed survival settings. Exactly one is
// active per session.
type Scenario string

const (
	ScenarioNormal          Scenario = "normal"
	ScenarioZombie          Scenario = "zombie"
	ScenarioBiochemical     Scenario = "biochemical"
	ScenarioNuclear         Scenario = "nuclear"
	ScenarioAlien           Scenario = "alien"
	ScenarioNaturalDisaster Scenario = "natural_disaster"
)

// Scenarios lists every scenario in catalogue order.
var Scenarios = []Scenario{
	ScenarioNormal,
	ScenarioZombie,
	ScenarioBiochemical,
	ScenarioNuclear,
	ScenarioAlien,
	ScenarioNaturalDisaster,
}

// Valid reports whether s is one of the known scenarios.
func (s Scenario) Valid() bool {
	for _, known := range Scenarios {
		if s == known {
			return true
		}
	}
	return false
}

// ParseScenario maps a stored or user-supplied id to a Scenario.
func ParseScenario(id string) (Scenario, bool) {
	s := Scenario(id)
	return s, s.Valid()
}

// ScenarioOrDefault returns the scenario for id, or ScenarioNormal when id is
// empty or unknown.
func ScenarioOrDefault(id string) Scenario {
	if s, ok := ParseScenario(id); ok {
		return s
	}
	return ScenarioNormal
}

// Category is a knowledge category. Values are the labels stored in the
// knowledge base.
type Category string

const (
	CategoryWater      Category = "水源"
	CategoryFood       Category = "食物"
	CategoryShelter    Category = "庇护所"
	CategoryMedical    Category = "医疗"
	CategoryFire       Category = "生火"
	CategoryNavigation Category = "导航"
	CategoryTools      Category = "工具"
	CategoryWeather    Category = "天气"
	CategoryDanger     Category = "危险"
)

// Categories lists every category in declaration order. Classification ties
// resolve to the earliest entry.
var Categories = []Category{
	CategoryWater,
	CategoryFood,
	CategoryShelter,
	CategoryMedical,
	CategoryFire,
	CategoryNavigation,
	CategoryTools,
	CategoryWeather,
	CategoryDanger,
}

// Intent is the tag a pattern rule assigns to a question.
type Intent string

const (
	IntentGreeting            Intent = "greeting"
	IntentWaterSearch         Intent = "water_search"
	IntentWaterPurify         Intent = "water_purify"
	IntentWaterShortage       Intent = "water_shortage"
	IntentFoodSearch          Intent = "food_search"
	IntentEdibleFood          Intent = "edible_food"
	IntentEdiblePlants        Intent = "edible_plants"
	IntentShelterBuild        Intent = "shelter_build"
	IntentShelterLocation     Intent = "shelter_location"
	IntentMedicalInjury       Intent = "medical_injury"
	IntentMedicalTreatment    Intent = "medical_treatment"
	IntentMedicalPoisoning    Intent = "medical_poisoning"
	IntentFireMaking          Intent = "fire_making"
	IntentFireNoTools         Intent = "fire_no_tools"
	IntentNavigationLost      Intent = "navigation_lost"
	IntentNavigationDirection Intent = "navigation_direction"
	IntentDangerAnimals       Intent = "danger_animals"
	IntentDangerPlants        Intent = "danger_plants"
)

// ThreatTag is the coarse threat label attached to a routed scenario answer.
type ThreatTag string

const (
	ThreatLow      ThreatTag = "low"
	ThreatMedium   ThreatTag = "medium"
	ThreatHigh     ThreatTag = "high"
	ThreatCritical ThreatTag = "critical"
	ThreatExtreme  ThreatTag = "extreme"
)

// SeverityLevel is the outcome of an emergency assessment.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "LOW"
	SeverityMedium   SeverityLevel = "MEDIUM"
	SeverityHigh     SeverityLevel = "HIGH"
	SeverityCritical SeverityLevel = "CRITICAL"
)

// AnswerSource records which strategy produced an answer.
type AnswerSource string

const (
	SourceEmpty    AnswerSource = "empty"
	SourceScenario AnswerSource = "scenario"
	SourceRemote   AnswerSource = "remote"
	SourcePattern  AnswerSource = "pattern"
	SourceCategory AnswerSource = "category"
	SourceSearch   AnswerSource = "search"
	SourceNoMatch  AnswerSource = "no_match"
)

// Clamp bounds v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package emergency

import (
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestAssess_SingleCriticalIsHigh(t *testing.T) {
	for _, phrase := range criticalSymptoms {
		got := Assess([]string{"患者" + phrase}, nil)
		assert.Equal(t, 10, got.Score, phrase)
		assert.Equal(t, domain.SeverityHigh, got.Level, phrase)
		assert.True(t, got.MonitoringRequired)
	}
}

func TestAssess_TwoCriticalIsCritical(t *testing.T) {
	got := Assess([]string{"意识不清", "大量出血"}, nil)

	assert.Equal(t, 20, got.Score)
	assert.Equal(t, domain.SeverityCritical, got.Level)
	require.Len(t, got.RiskFactors, 2)
	assert.Equal(t, "危急症状：意识不清", got.RiskFactors[0])
	assert.Equal(t, "立即寻求专业医疗救助！", got.Recommendation)
}

func TestAssess_ThresholdBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		symptoms []string
		vitals   *domain.VitalSigns
		score    int
		level    domain.SeverityLevel
	}{
		{"nothing", nil, nil, 0, domain.SeverityLow},
		{"temperature only", nil, &domain.VitalSigns{Temperature: floatPtr(40)}, 3, domain.SeverityLow},
		{"one high-risk", []string{"高烧"}, nil, 5, domain.SeverityMedium},
		{"two high-risk", []string{"高烧", "抽搐"}, nil, 10, domain.SeverityHigh},
		{"three high-risk", []string{"高烧", "抽搐", "持续呕吐"}, nil, 15, domain.SeverityCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Assess(tc.symptoms, tc.vitals)
			assert.Equal(t, tc.score, got.Score)
			assert.Equal(t, tc.level, got.Level)
			assert.Equal(t, tc.score >= 5, got.MonitoringRequired)
		})
	}
}

func TestAssess_Vitals(t *testing.T) {
	normal := &domain.VitalSigns{HeartRate: intPtr(80), BreathingRate: intPtr(16), Temperature: floatPtr(36.5)}
	assert.Zero(t, Assess(nil, normal).Score)

	abnormal := &domain.VitalSigns{HeartRate: intPtr(130), BreathingRate: intPtr(8), Temperature: floatPtr(34)}
	got := Assess(nil, abnormal)
	assert.Equal(t, 13, got.Score)
	assert.Equal(t, []string{"心率异常", "呼吸频率异常", "体温异常"}, got.RiskFactors)

	// Edges of the normal ranges are not abnormal.
	edges := &domain.VitalSigns{HeartRate: intPtr(50), BreathingRate: intPtr(30), Temperature: floatPtr(39)}
	assert.Zero(t, Assess(nil, edges).Score)
}

func TestAssess_MissingVitalsAreSkipped(t *testing.T) {
	got := Assess(nil, &domain.VitalSigns{HeartRate: intPtr(40)})
	assert.Equal(t, 5, got.Score)
	assert.Equal(t, []string{"心率异常"}, got.RiskFactors)
}

func TestAssess_ScoreIsUncappedAndLevelSaturates(t *testing.T) {
	got := Assess(criticalSymptoms, nil)
	assert.Greater(t, got.Score, 20)
	assert.Equal(t, domain.SeverityCritical, got.Level)
}

func TestAssess_PropertyAdditive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		crit := rapid.SliceOf(rapid.SampledFrom(criticalSymptoms)).Draw(rt, "critical")
		high := rapid.SliceOf(rapid.SampledFrom(highRiskSymptoms)).Draw(rt, "high")

		symptoms := append(append([]string{}, crit...), high...)
		got := Assess(symptoms, nil)

		// No phrase contains another, so each pick adds exactly its own weight.
		want := 10*len(crit) + 5*len(high)
		if got.Score != want {
			rt.Fatalf("score %d, want %d for %v", got.Score, want, symptoms)
		}
		if len(got.RiskFactors) != len(crit)+len(high) {
			rt.Fatalf("risk factors %v for %v", got.RiskFactors, symptoms)
		}
		if got.Level != LevelForScore(want) {
			rt.Fatalf("level %s for score %d", got.Level, want)
		}
	})
}

func TestAssess_PropertyOrderIndependent(t *testing.T) {
	all := append(append([]string{}, criticalSymptoms...), highRiskSymptoms...)
	rapid.Check(t, func(rt *rapid.T) {
		symptoms := rapid.SliceOf(rapid.SampledFrom(all)).Draw(rt, "symptoms")
		reversed := make([]string, len(symptoms))
		for i, s := range symptoms {
			reversed[len(symptoms)-1-i] = s
		}
		if a, b := Assess(symptoms, nil).Score, Assess(reversed, nil).Score; a != b {
			rt.Fatalf("score changed with order: %d vs %d", a, b)
		}
	})
}

// Package emergency scores symptoms, identifies emergency types from free
// text and assembles first-response guidance.
package emergency

import (
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

const (
	criticalWeight  = 10
	highRiskWeight  = 5
	pulseWeight     = 5
	breathingWeight = 5
	tempWeight      = 3
)

var criticalSymptoms = []string{
	"意识不清", "无呼吸", "无脉搏", "大量出血", "休克",
	"严重呼吸困难", "胸痛", "严重过敏反应",
}

var highRiskSymptoms = []string{
	"持续呕吐", "高烧", "严重疼痛", "呼吸急促",
	"皮肤发青", "意识模糊", "抽搐",
}

var recommendations = map[domain.SeverityLevel]string{
	domain.SeverityCritical: "立即寻求专业医疗救助！",
	domain.SeverityHigh:     "需要紧急处理，尽快寻求医疗帮助",
	domain.SeverityMedium:   "需要关注和处理，建议寻求医疗建议",
	domain.SeverityLow:      "可以自行处理，但要密切观察",
}

// Assessment is the result of scoring a set of symptoms.
type Assessment struct {
	// Score is uncapped; Level saturates at CRITICAL.
	Score              int
	Level              domain.SeverityLevel
	RiskFactors        []string
	Recommendation     string
	MonitoringRequired bool
}

// Assess scores symptoms and optional vitals. Every phrase contained in a
// symptom adds its fixed weight, so the score does not depend on order.
func Assess(symptoms []string, vitals *domain.VitalSigns) Assessment {
	score := 0
	var factors []string

	for _, symptom := range symptoms {
		s := strings.ToLower(symptom)
		for _, phrase := range criticalSymptoms {
			if strings.Contains(s, phrase) {
				score += criticalWeight
				factors = append(factors, "危急症状："+phrase)
			}
		}
		for _, phrase := range highRiskSymptoms {
			if strings.Contains(s, phrase) {
				score += highRiskWeight
				factors = append(factors, "高危症状："+phrase)
			}
		}
	}

	if vitals != nil {
		if v := vitals.HeartRate; v != nil && (*v < 50 || *v > 120) {
			score += pulseWeight
			factors = append(factors, "心率异常")
		}
		if v := vitals.BreathingRate; v != nil && (*v < 10 || *v > 30) {
			score += breathingWeight
			factors = append(factors, "呼吸频率异常")
		}
		if v := vitals.Temperature; v != nil && (*v < 35 || *v > 39) {
			score += tempWeight
			factors = append(factors, "体温异常")
		}
	}

	level := LevelForScore(score)
	return Assessment{
		Score:              score,
		Level:              level,
		RiskFactors:        factors,
		Recommendation:     recommendations[level],
		MonitoringRequired: score >= 5,
	}
}

// LevelForScore maps a score onto the fixed 5/10/15 cut points.
func LevelForScore(score int) domain.SeverityLevel {
	switch {
	case score >= 15:
		return domain.SeverityCritical
	case score >= 10:
		return domain.SeverityHigh
	case score >= 5:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

package domain

import "time"

// SkillEntry is a stored survival skill with ordered steps.
type SkillEntry struct {
	ID               int64
	Name             string
	Description      string
	Category         string
	Steps            []string
	Materials        []string
	Difficulty       int
	EstimatedMinutes int
	SafetyNotes      string
}

// SkillProgress tracks a user's progress on one skill.
type SkillProgress struct {
	UserID          string
	SkillID         int64
	SkillName       string
	SkillCategory   string
	SkillDifficulty int
	Progress        int
	Notes           string
	UpdatedAt       time.Time
}

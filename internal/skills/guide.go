// Package skills is the step-by-step survival skill guide.
package skills

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/repository"
)

const maxRecommendations = 10

// Skill is a stored skill with its display descriptions.
type Skill struct {
	domain.SkillEntry
	DifficultyDesc string
	TimeDesc       string
}

func describe(s domain.SkillEntry) Skill {
	return Skill{
		SkillEntry:     s,
		DifficultyDesc: DifficultyDescription(s.Difficulty),
		TimeDesc:       FormatMinutes(s.EstimatedMinutes),
	}
}

type Step struct {
	Number        int
	Instruction   string
	EstimatedTime string
	KeyPoints     []string
}

// StepGuide is a skill broken into timed, annotated steps.
type StepGuide struct {
	Skill
	Steps []Step
	Tips  []string
}

type Prerequisite struct {
	Skill
	Reason string
}

// ProgressionLevel is one rung of a category's learning path.
type ProgressionLevel struct {
	Level int
	Skill
	IsPrerequisite bool
	NextSkills     []string
}

type Recommendation struct {
	Skill
	Reason string
}

type Progress struct {
	domain.SkillProgress
	DifficultyDesc string
}

// Guide serves skill lookups. Listing operations log store failures and
// return empty results.
type Guide struct {
	skills   repository.SkillRepo
	progress repository.ProgressRepo
	logger   *slog.Logger
}

func NewGuide(skills repository.SkillRepo, progress repository.ProgressRepo, logger *slog.Logger) *Guide {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Guide{skills: skills, progress: progress, logger: logger}
}

// StoredCategories lists the categories that have at least one skill.
func (g *Guide) StoredCategories(ctx context.Context) []string {
	cats, err := g.skills.Categories(ctx)
	if err != nil {
		g.logger.WarnContext(ctx, "skill category lookup failed", "error", err)
		return nil
	}
	return cats
}

func (g *Guide) ByCategory(ctx context.Context, category string) []Skill {
	entries, err := g.skills.ListByCategory(ctx, category)
	if err != nil {
		g.logger.WarnContext(ctx, "skill lookup failed", "category", category, "error", err)
		return nil
	}
	return describeAll(entries)
}

// Detail returns one skill. A missing id yields repository.ErrNotFound.
func (g *Guide) Detail(ctx context.Context, id int64) (*Skill, error) {
	entry, err := g.skills.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading skill: %w", err)
	}
	s := describe(*entry)
	return &s, nil
}

// StepByStep annotates each step of skill id with a time estimate and key points.
func (g *Guide) StepByStep(ctx context.Context, id int64) (*StepGuide, error) {
	s, err := g.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	guide := &StepGuide{Skill: *s, Tips: Tips(s.Category)}
	for i, instruction := range s.Steps {
		n := i + 1
		guide.Steps = append(guide.Steps, Step{
			Number:        n,
			Instruction:   instruction,
			EstimatedTime: StepTime(s.EstimatedMinutes, len(s.Steps), n),
			KeyPoints:     KeyPoints(s.Category, instruction),
		})
	}
	return guide, nil
}

// Prerequisites lists easier skills of the same category, easiest first.
func (g *Guide) Prerequisites(ctx context.Context, id int64) ([]Prerequisite, error) {
	s, err := g.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Difficulty <= 1 {
		return nil, nil
	}
	easier, err := g.skills.ListEasierInCategory(ctx, s.Category, s.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("loading prerequisites: %w", err)
	}
	out := make([]Prerequisite, 0, len(easier))
	for _, e := range easier {
		out = append(out, Prerequisite{
			Skill:  describe(e),
			Reason: fmt.Sprintf("掌握%s有助于学习%s", e.Name, s.Name),
		})
	}
	return out, nil
}

// Progression orders a category by difficulty and links each skill to the next.
func (g *Guide) Progression(ctx context.Context, category string) []ProgressionLevel {
	list := g.ByCategory(ctx, category)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Difficulty < list[j].Difficulty })

	out := make([]ProgressionLevel, 0, len(list))
	for i, s := range list {
		lvl := ProgressionLevel{Level: i + 1, Skill: s}
		if i < len(list)-1 {
			lvl.IsPrerequisite = true
			lvl.NextSkills = []string{list[i+1].Name}
		}
		out = append(out, lvl)
	}
	return out
}

// Search matches keyword against name and description. maxDifficulty <= 0
// disables the difficulty filter.
func (g *Guide) Search(ctx context.Context, keyword string, maxDifficulty int) []Skill {
	entries, err := g.skills.Search(ctx, keyword, maxDifficulty)
	if err != nil {
		g.logger.WarnContext(ctx, "skill search failed", "keyword", keyword, "error", err)
		return nil
	}
	return describeAll(entries)
}

// Recommend suggests up to ten skills no harder than level.
func (g *Guide) Recommend(ctx context.Context, level int) []Recommendation {
	level = domain.Clamp(level, 1, 5)
	entries, err := g.skills.ListUpToDifficulty(ctx, level, maxRecommendations)
	if err != nil {
		g.logger.WarnContext(ctx, "skill recommendation failed", "level", level, "error", err)
		return nil
	}
	out := make([]Recommendation, 0, len(entries))
	for _, e := range entries {
		out = append(out, Recommendation{Skill: describe(e), Reason: RecommendationReason(e, level)})
	}
	return out
}

// RecordProgress upserts the user's progress on a skill. Progress is clamped
// to [0,100].
func (g *Guide) RecordProgress(ctx context.Context, userID string, skillID int64, progress int, notes string) error {
	if _, err := g.skills.GetByID(ctx, skillID); err != nil {
		return fmt.Errorf("recording progress: %w", err)
	}
	return g.progress.Upsert(ctx, &domain.SkillProgress{
		UserID:   userID,
		SkillID:  skillID,
		Progress: progress,
		Notes:    notes,
	})
}

// ProgressFor lists the user's progress, most recently updated first.
func (g *Guide) ProgressFor(ctx context.Context, userID string) []Progress {
	list, err := g.progress.ListByUser(ctx, userID)
	if err != nil {
		g.logger.WarnContext(ctx, "skill progress lookup failed", "user_id", userID, "error", err)
		return nil
	}
	out := make([]Progress, 0, len(list))
	for _, p := range list {
		out = append(out, Progress{SkillProgress: p, DifficultyDesc: DifficultyDescription(p.SkillDifficulty)})
	}
	return out
}

func describeAll(entries []domain.SkillEntry) []Skill {
	out := make([]Skill, 0, len(entries))
	for _, e := range entries {
		out = append(out, describe(e))
	}
	return out
}

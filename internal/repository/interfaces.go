package repository

import (
	"context"

	"github.com/alexanderramin/haven/internal/domain"
)

type KnowledgeRepo interface {
	ListByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.KnowledgeEntry, error)
	// Search matches keyword as a substring of title, content or tags.
	// An empty category searches every category.
	Search(ctx context.Context, keyword string, category domain.Category) ([]domain.KnowledgeEntry, error)
	CountByCategory(ctx context.Context) (map[domain.Category]int, error)
}

type SkillRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.SkillEntry, error)
	ListByCategory(ctx context.Context, category string) ([]domain.SkillEntry, error)
	ListEasierInCategory(ctx context.Context, category string, belowDifficulty int) ([]domain.SkillEntry, error)
	// Search matches name or description. maxDifficulty <= 0 disables the filter.
	Search(ctx context.Context, keyword string, maxDifficulty int) ([]domain.SkillEntry, error)
	ListUpToDifficulty(ctx context.Context, maxDifficulty, limit int) ([]domain.SkillEntry, error)
	Categories(ctx context.Context) ([]string, error)
}

type ProcedureRepo interface {
	// ListByType matches emergencyType as a substring, highest severity first.
	// An empty type lists every procedure.
	ListByType(ctx context.Context, emergencyType string) ([]domain.EmergencyProcedure, error)
}

type ScenarioRepo interface {
	Get(ctx context.Context, s domain.Scenario) (*domain.ScenarioRecord, error)
	ListThreats(ctx context.Context, s domain.Scenario) ([]domain.ThreatRecord, error)
	ListKnowledge(ctx context.Context, s domain.Scenario, category string) ([]domain.ScenarioKnowledge, error)
	SearchKnowledge(ctx context.Context, s domain.Scenario, keyword string) ([]domain.ScenarioKnowledge, error)
	SearchThreats(ctx context.Context, s domain.Scenario, keyword string) ([]domain.ThreatRecord, error)
}

type HistoryRepo interface {
	Append(ctx context.Context, rec *domain.QueryHistoryRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.QueryHistoryRecord, error)
}

type ProgressRepo interface {
	Upsert(ctx context.Context, p *domain.SkillProgress) error
	ListByUser(ctx context.Context, userID string) ([]domain.SkillProgress, error)
}

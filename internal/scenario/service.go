package scenario

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/repository"
)

// Info merges the static catalogue entry with the stored record. Record is
// nil when the store has no row for the scenario. Topics are the question
// groups the scenario answers specifically, general excluded.
type Info struct {
	domain.ScenarioMeta
	Record *domain.ScenarioRecord
	Topics []Group
}

var situationTips = []struct {
	marker string
	tip    string
}{
	{"受伤", "优先处理伤口，避免感染"},
	{"缺水", "寻找安全水源，净化后饮用"},
	{"缺食", "合理分配食物，寻找补给"},
	{"迷路", "标记路径，寻找地标"},
}

// Service answers store-backed scenario queries. Store failures are logged
// and degrade to empty results.
type Service struct {
	repo   repository.ScenarioRepo
	logger *slog.Logger
}

func NewService(repo repository.ScenarioRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Info(ctx context.Context, id domain.Scenario) Info {
	info := Info{ScenarioMeta: id.Meta()}
	for _, g := range Groups(info.ID) {
		if g != GroupGeneral {
			info.Topics = append(info.Topics, g)
		}
	}
	rec, err := s.repo.Get(ctx, info.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		s.logger.WarnContext(ctx, "scenario lookup failed", "scenario", info.ID, "error", err)
	default:
		info.Record = rec
	}
	return info
}

// Threats returns the stored threats of id with their danger adjusted for
// location and time of day, most dangerous first.
func (s *Service) Threats(ctx context.Context, id domain.Scenario, location, timeOfDay string) []domain.AdjustedThreat {
	threats, err := s.repo.ListThreats(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "threat lookup failed", "scenario", id, "error", err)
		return nil
	}
	out := make([]domain.AdjustedThreat, 0, len(threats))
	for _, t := range threats {
		out = append(out, domain.AdjustedThreat{
			ThreatRecord:  t,
			AdjustedLevel: AdjustThreat(t.BaseDangerLevel, id, location, timeOfDay),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AdjustedLevel > out[j].AdjustedLevel
	})
	return out
}

// SurvivalTips returns the stored tips of id followed by tips for any
// situation markers found in situation.
func (s *Service) SurvivalTips(ctx context.Context, id domain.Scenario, situation string) []string {
	var tips []string
	if rec := s.Info(ctx, id).Record; rec != nil {
		tips = append(tips, rec.Tips...)
	}
	for _, st := range situationTips {
		if strings.Contains(situation, st.marker) {
			tips = append(tips, st.tip)
		}
	}
	return tips
}

// Knowledge lists scenario-specific entries, optionally narrowed to a category.
func (s *Service) Knowledge(ctx context.Context, id domain.Scenario, category string) []domain.ScenarioKnowledge {
	entries, err := s.repo.ListKnowledge(ctx, id, category)
	if err != nil {
		s.logger.WarnContext(ctx, "scenario knowledge lookup failed", "scenario", id, "error", err)
		return nil
	}
	return entries
}

// Search matches keyword against scenario knowledge and threats.
func (s *Service) Search(ctx context.Context, id domain.Scenario, keyword string) ([]domain.ScenarioKnowledge, []domain.ThreatRecord) {
	entries, err := s.repo.SearchKnowledge(ctx, id, keyword)
	if err != nil {
		s.logger.WarnContext(ctx, "scenario knowledge search failed", "scenario", id, "error", err)
	}
	threats, err := s.repo.SearchThreats(ctx, id, keyword)
	if err != nil {
		s.logger.WarnContext(ctx, "threat search failed", "scenario", id, "error", err)
	}
	return entries, threats
}

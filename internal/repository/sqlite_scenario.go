package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/domain"
)

// SQLiteScenarioRepo implements ScenarioRepo using a SQLite database.
type SQLiteScenarioRepo struct {
	db db.DBTX
}

// NewSQLiteScenarioRepo creates a new SQLiteScenarioRepo.
func NewSQLiteScenarioRepo(conn db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: conn}
}

func (r *SQLiteScenarioRepo) Get(ctx context.Context, s domain.Scenario) (*domain.ScenarioRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT scenario_id, name, description, base_threat_level,
		special_considerations, equipment_json, tips FROM scenarios WHERE scenario_id = ?`, string(s))

	var (
		rec             domain.ScenarioRecord
		id              string
		equipment, tips string
	)
	err := row.Scan(&id, &rec.Name, &rec.Description, &rec.BaseThreatLevel,
		&rec.SpecialConsiderations, &equipment, &tips)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("scenario %s: %w", s, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}
	rec.Scenario = domain.ScenarioOrDefault(id)
	rec.BaseThreatLevel = clampLevel(rec.BaseThreatLevel)
	rec.Equipment = decodeList(equipment)
	rec.Tips = splitEnumeration(tips)
	return &rec, nil
}

const threatColumns = `id, scenario_id, threat_name, threat_type, danger_level, description,
	identification_signs, countermeasures, avoidance_tips`

func (r *SQLiteScenarioRepo) ListThreats(ctx context.Context, s domain.Scenario) ([]domain.ThreatRecord, error) {
	return r.threats(ctx, `WHERE scenario_id = ? ORDER BY danger_level DESC, id ASC`, string(s))
}

func (r *SQLiteScenarioRepo) SearchThreats(ctx context.Context, s domain.Scenario, keyword string) ([]domain.ThreatRecord, error) {
	pattern := likePattern(keyword)
	return r.threats(ctx, `WHERE scenario_id = ? AND (threat_name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')
		ORDER BY danger_level DESC, id ASC`, string(s), pattern, pattern)
}

func (r *SQLiteScenarioRepo) threats(ctx context.Context, clause string, args ...any) ([]domain.ThreatRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+threatColumns+` FROM scenario_threats `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("listing threats: %w", err)
	}
	defer rows.Close()

	var out []domain.ThreatRecord
	for rows.Next() {
		var (
			t  domain.ThreatRecord
			id string
		)
		if err := rows.Scan(&t.ID, &id, &t.Name, &t.Type, &t.BaseDangerLevel, &t.Description,
			&t.IdentificationSigns, &t.Countermeasures, &t.AvoidanceTips); err != nil {
			return nil, fmt.Errorf("scanning threat: %w", err)
		}
		t.Scenario = domain.ScenarioOrDefault(id)
		t.BaseDangerLevel = clampLevel(t.BaseDangerLevel)
		out = append(out, t)
	}
	return out, rows.Err()
}

const scenarioKnowledgeColumns = `id, scenario_id, category, title, content, difficulty, priority, tags`

func (r *SQLiteScenarioRepo) ListKnowledge(ctx context.Context, s domain.Scenario, category string) ([]domain.ScenarioKnowledge, error) {
	clause := `WHERE scenario_id = ?`
	args := []any{string(s)}
	if category != "" {
		clause += ` AND category = ?`
		args = append(args, category)
	}
	return r.knowledge(ctx, clause+` ORDER BY priority DESC, difficulty ASC, id ASC`, args...)
}

func (r *SQLiteScenarioRepo) SearchKnowledge(ctx context.Context, s domain.Scenario, keyword string) ([]domain.ScenarioKnowledge, error) {
	pattern := likePattern(keyword)
	return r.knowledge(ctx, `WHERE scenario_id = ? AND (title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\' OR tags LIKE ? ESCAPE '\')
		ORDER BY priority DESC, id ASC`, string(s), pattern, pattern, pattern)
}

func (r *SQLiteScenarioRepo) knowledge(ctx context.Context, clause string, args ...any) ([]domain.ScenarioKnowledge, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+scenarioKnowledgeColumns+` FROM scenario_knowledge `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("listing scenario knowledge: %w", err)
	}
	defer rows.Close()

	var out []domain.ScenarioKnowledge
	for rows.Next() {
		var (
			k             domain.ScenarioKnowledge
			id, cat, tags string
		)
		if err := rows.Scan(&k.ID, &id, &cat, &k.Title, &k.Content, &k.Difficulty, &k.Priority, &tags); err != nil {
			return nil, fmt.Errorf("scanning scenario knowledge: %w", err)
		}
		k.Scenario = domain.ScenarioOrDefault(id)
		k.Category = domain.Category(cat)
		k.Difficulty = clampLevel(k.Difficulty)
		k.Priority = clampLevel(k.Priority)
		k.Tags = splitTags(tags)
		out = append(out, k)
	}
	return out, rows.Err()
}

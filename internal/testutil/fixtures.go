package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alexanderramin/haven/internal/domain"
)

// Knowledge options
type KnowledgeOption func(*domain.KnowledgeEntry)

func WithDifficulty(d int) KnowledgeOption {
	return func(e *domain.KnowledgeEntry) { e.Difficulty = d }
}

func WithPriority(p int) KnowledgeOption {
	return func(e *domain.KnowledgeEntry) { e.Priority = p }
}

func WithTags(tags ...string) KnowledgeOption {
	return func(e *domain.KnowledgeEntry) { e.Tags = tags }
}

func WithContent(c string) KnowledgeOption {
	return func(e *domain.KnowledgeEntry) { e.Content = c }
}

// InsertKnowledge adds a knowledge row and returns it with its ID set.
func InsertKnowledge(t *testing.T, db *sql.DB, category domain.Category, title string, opts ...KnowledgeOption) domain.KnowledgeEntry {
	t.Helper()
	e := domain.KnowledgeEntry{
		Category:   category,
		Title:      title,
		Content:    title + "的详细内容",
		Difficulty: 1,
		Priority:   1,
	}
	for _, o := range opts {
		o(&e)
	}
	res, err := db.ExecContext(context.Background(),
		`INSERT INTO knowledge_entries (category, title, content, difficulty, priority, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, '2026-01-01T00:00:00Z')`,
		string(e.Category), e.Title, e.Content, e.Difficulty, e.Priority, strings.Join(e.Tags, ","))
	if err != nil {
		t.Fatalf("inserting knowledge: %v", err)
	}
	e.ID, _ = res.LastInsertId()
	return e
}

// InsertSkill adds a skill row and returns its ID.
func InsertSkill(t *testing.T, db *sql.DB, name, category string, difficulty, minutes int, steps ...string) int64 {
	t.Helper()
	if steps == nil {
		steps = []string{}
	}
	stepsJSON, _ := json.Marshal(steps)
	res, err := db.ExecContext(context.Background(),
		`INSERT INTO skills (name, description, category, steps_json, difficulty, estimated_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, '2026-01-01T00:00:00Z')`,
		name, name+"说明", category, string(stepsJSON), difficulty, minutes)
	if err != nil {
		t.Fatalf("inserting skill: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// InsertScenario adds a scenario row.
func InsertScenario(t *testing.T, db *sql.DB, s domain.Scenario, name string, threat int, tips string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO scenarios (scenario_id, name, base_threat_level, tips) VALUES (?, ?, ?, ?)`,
		string(s), name, threat, tips)
	if err != nil {
		t.Fatalf("inserting scenario: %v", err)
	}
}

// InsertThreat adds a threat row. The owning scenario row must exist.
func InsertThreat(t *testing.T, db *sql.DB, s domain.Scenario, name string, danger int) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO scenario_threats (scenario_id, threat_name, threat_type, danger_level, description)
		VALUES (?, ?, '测试', ?, ?)`,
		string(s), name, danger, name+"描述")
	if err != nil {
		t.Fatalf("inserting threat: %v", err)
	}
}

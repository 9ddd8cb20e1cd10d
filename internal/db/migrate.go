package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS knowledge_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		difficulty INTEGER NOT NULL DEFAULT 1 CHECK(difficulty BETWEEN 1 AND 5),
		priority INTEGER NOT NULL DEFAULT 1 CHECK(priority BETWEEN 1 AND 5),
		tags TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		steps_json TEXT NOT NULL DEFAULT '[]',
		materials_json TEXT NOT NULL DEFAULT '[]',
		difficulty INTEGER NOT NULL DEFAULT 1 CHECK(difficulty BETWEEN 1 AND 5),
		estimated_minutes INTEGER NOT NULL DEFAULT 0 CHECK(estimated_minutes >= 0),
		safety_notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS emergency_procedures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		emergency_type TEXT NOT NULL,
		severity INTEGER NOT NULL CHECK(severity BETWEEN 1 AND 4),
		immediate_action TEXT NOT NULL,
		steps_json TEXT NOT NULL DEFAULT '[]',
		resources_json TEXT NOT NULL DEFAULT '[]',
		prevention_tips TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scenarios (
		scenario_id TEXT PRIMARY KEY CHECK(scenario_id IN ('normal','zombie','biochemical','nuclear','alien','natural_disaster')),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		base_threat_level INTEGER NOT NULL DEFAULT 1 CHECK(base_threat_level BETWEEN 1 AND 5),
		special_considerations TEXT NOT NULL DEFAULT '',
		equipment_json TEXT NOT NULL DEFAULT '[]',
		tips TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS scenario_knowledge (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scenario_id TEXT NOT NULL REFERENCES scenarios(scenario_id),
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		difficulty INTEGER NOT NULL DEFAULT 1 CHECK(difficulty BETWEEN 1 AND 5),
		priority INTEGER NOT NULL DEFAULT 1 CHECK(priority BETWEEN 1 AND 5),
		tags TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS scenario_threats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scenario_id TEXT NOT NULL REFERENCES scenarios(scenario_id),
		threat_name TEXT NOT NULL,
		threat_type TEXT NOT NULL,
		danger_level INTEGER NOT NULL CHECK(danger_level BETWEEN 1 AND 5),
		description TEXT NOT NULL DEFAULT '',
		identification_signs TEXT NOT NULL DEFAULT '',
		countermeasures TEXT NOT NULL DEFAULT '',
		avoidance_tips TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS query_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		response TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS skill_progress (
		user_id TEXT NOT NULL,
		skill_id INTEGER NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		progress INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		notes TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, skill_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_knowledge_category ON knowledge_entries(category)`,
	`CREATE INDEX IF NOT EXISTS idx_skills_category ON skills(category)`,
	`CREATE INDEX IF NOT EXISTS idx_procedures_type ON emergency_procedures(emergency_type)`,
	`CREATE INDEX IF NOT EXISTS idx_threats_scenario ON scenario_threats(scenario_id)`,
	`CREATE INDEX IF NOT EXISTS idx_scenario_knowledge_scenario ON scenario_knowledge(scenario_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_created ON query_history(created_at)`,
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/domain"
)

// SQLiteSkillRepo implements SkillRepo using a SQLite database.
type SQLiteSkillRepo struct {
	db db.DBTX
}

// NewSQLiteSkillRepo creates a new SQLiteSkillRepo.
func NewSQLiteSkillRepo(conn db.DBTX) *SQLiteSkillRepo {
	return &SQLiteSkillRepo{db: conn}
}

const skillColumns = `id, name, description, category, steps_json, materials_json,
	difficulty, estimated_minutes, safety_notes`

func (r *SQLiteSkillRepo) GetByID(ctx context.Context, id int64) (*domain.SkillEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = ?`, id)
	s, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("skill %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning skill: %w", err)
	}
	return s, nil
}

func (r *SQLiteSkillRepo) ListByCategory(ctx context.Context, category string) ([]domain.SkillEntry, error) {
	return r.list(ctx, `WHERE category = ? ORDER BY difficulty ASC, id ASC`, category)
}

func (r *SQLiteSkillRepo) ListEasierInCategory(ctx context.Context, category string, belowDifficulty int) ([]domain.SkillEntry, error) {
	return r.list(ctx, `WHERE category = ? AND difficulty < ? ORDER BY difficulty ASC, id ASC`, category, belowDifficulty)
}

func (r *SQLiteSkillRepo) Search(ctx context.Context, keyword string, maxDifficulty int) ([]domain.SkillEntry, error) {
	pattern := likePattern(keyword)
	clause := `WHERE (name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`
	args := []any{pattern, pattern}
	if maxDifficulty > 0 {
		clause += ` AND difficulty <= ?`
		args = append(args, maxDifficulty)
	}
	clause += ` ORDER BY difficulty ASC, estimated_minutes ASC, id ASC`
	return r.list(ctx, clause, args...)
}

func (r *SQLiteSkillRepo) ListUpToDifficulty(ctx context.Context, maxDifficulty, limit int) ([]domain.SkillEntry, error) {
	return r.list(ctx, `WHERE difficulty <= ? ORDER BY difficulty ASC, id ASC LIMIT ?`, maxDifficulty, limit)
}

func (r *SQLiteSkillRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM skills ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("listing skill categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning skill category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteSkillRepo) list(ctx context.Context, clause string, args ...any) ([]domain.SkillEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+skillColumns+` FROM skills `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	var out []domain.SkillEntry
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSkill(row scanner) (*domain.SkillEntry, error) {
	var (
		s                domain.SkillEntry
		steps, materials string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &steps, &materials,
		&s.Difficulty, &s.EstimatedMinutes, &s.SafetyNotes); err != nil {
		return nil, err
	}
	s.Steps = decodeList(steps)
	s.Materials = decodeList(materials)
	s.Difficulty = clampLevel(s.Difficulty)
	return &s, nil
}

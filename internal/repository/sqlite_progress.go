package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, p *domain.SkillProgress) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO skill_progress (user_id, skill_id, progress, notes, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, skill_id) DO UPDATE SET
			progress = excluded.progress,
			notes = excluded.notes,
			updated_at = excluded.updated_at`,
		p.UserID, p.SkillID, domain.Clamp(p.Progress, 0, 100), p.Notes, now)
	if err != nil {
		return fmt.Errorf("upserting skill progress: %w", err)
	}
	p.UpdatedAt = parseTime(now)
	return nil
}

func (r *SQLiteProgressRepo) ListByUser(ctx context.Context, userID string) ([]domain.SkillProgress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.user_id, p.skill_id, s.name, s.category, s.difficulty, p.progress, p.notes, p.updated_at
		FROM skill_progress p
		JOIN skills s ON s.id = p.skill_id
		WHERE p.user_id = ?
		ORDER BY p.updated_at DESC, p.skill_id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing skill progress: %w", err)
	}
	defer rows.Close()

	var out []domain.SkillProgress
	for rows.Next() {
		var (
			p       domain.SkillProgress
			updated string
		)
		if err := rows.Scan(&p.UserID, &p.SkillID, &p.SkillName, &p.SkillCategory, &p.SkillDifficulty,
			&p.Progress, &p.Notes, &updated); err != nil {
			return nil, fmt.Errorf("scanning skill progress: %w", err)
		}
		p.UpdatedAt = parseTime(updated)
		out = append(out, p)
	}
	return out, rows.Err()
}

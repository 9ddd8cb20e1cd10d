package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

// Append stores rec and fills in its ID and CreatedAt. The response is stored
// as given; callers truncate it with domain.HistoryExcerpt.
func (r *SQLiteHistoryRepo) Append(ctx context.Context, rec *domain.QueryHistoryRecord) error {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO query_history (question, response, category, created_at) VALUES (?, ?, ?, ?)`,
		rec.Question, rec.Response, rec.Category, now)
	if err != nil {
		return fmt.Errorf("inserting query history: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	rec.CreatedAt = parseTime(now)
	return nil
}

func (r *SQLiteHistoryRepo) ListRecent(ctx context.Context, limit int) ([]domain.QueryHistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question, response, category, created_at FROM query_history
		ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing query history: %w", err)
	}
	defer rows.Close()

	var out []domain.QueryHistoryRecord
	for rows.Next() {
		var (
			rec     domain.QueryHistoryRecord
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.Question, &rec.Response, &rec.Category, &created); err != nil {
			return nil, fmt.Errorf("scanning query history: %w", err)
		}
		rec.CreatedAt = parseTime(created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

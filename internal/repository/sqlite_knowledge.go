package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/domain"
)

// SQLiteKnowledgeRepo implements KnowledgeRepo using a SQLite database.
type SQLiteKnowledgeRepo struct {
	db db.DBTX
}

// NewSQLiteKnowledgeRepo creates a new SQLiteKnowledgeRepo.
func NewSQLiteKnowledgeRepo(conn db.DBTX) *SQLiteKnowledgeRepo {
	return &SQLiteKnowledgeRepo{db: conn}
}

const knowledgeColumns = `id, category, title, content, difficulty, priority, tags`

func (r *SQLiteKnowledgeRepo) ListByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.KnowledgeEntry, error) {
	query := `SELECT ` + knowledgeColumns + ` FROM knowledge_entries
		WHERE category = ? ORDER BY priority DESC, difficulty ASC, id ASC`
	args := []any{string(category)}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing knowledge by category: %w", err)
	}
	defer rows.Close()
	return scanKnowledge(rows)
}

func (r *SQLiteKnowledgeRepo) Search(ctx context.Context, keyword string, category domain.Category) ([]domain.KnowledgeEntry, error) {
	pattern := likePattern(keyword)
	query := `SELECT ` + knowledgeColumns + ` FROM knowledge_entries
		WHERE (title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\' OR tags LIKE ? ESCAPE '\')`
	args := []any{pattern, pattern, pattern}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY priority DESC, difficulty ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching knowledge: %w", err)
	}
	defer rows.Close()
	return scanKnowledge(rows)
}

func (r *SQLiteKnowledgeRepo) CountByCategory(ctx context.Context) (map[domain.Category]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM knowledge_entries GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("counting knowledge: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Category]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("scanning knowledge count: %w", err)
		}
		counts[domain.Category(cat)] = n
	}
	return counts, rows.Err()
}

func scanKnowledge(rows *sql.Rows) ([]domain.KnowledgeEntry, error) {
	var out []domain.KnowledgeEntry
	for rows.Next() {
		var (
			e        domain.KnowledgeEntry
			category string
			tags     string
		)
		if err := rows.Scan(&e.ID, &category, &e.Title, &e.Content, &e.Difficulty, &e.Priority, &tags); err != nil {
			return nil, fmt.Errorf("scanning knowledge entry: %w", err)
		}
		e.Category = domain.Category(category)
		e.Difficulty = clampLevel(e.Difficulty)
		e.Priority = clampLevel(e.Priority)
		e.Tags = splitTags(tags)
		out = append(out, e)
	}
	return out, rows.Err()
}

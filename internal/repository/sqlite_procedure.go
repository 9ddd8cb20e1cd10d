package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/domain"
)

// SQLiteProcedureRepo implements ProcedureRepo using a SQLite database.
type SQLiteProcedureRepo struct {
	db db.DBTX
}

// NewSQLiteProcedureRepo creates a new SQLiteProcedureRepo.
func NewSQLiteProcedureRepo(conn db.DBTX) *SQLiteProcedureRepo {
	return &SQLiteProcedureRepo{db: conn}
}

func (r *SQLiteProcedureRepo) ListByType(ctx context.Context, emergencyType string) ([]domain.EmergencyProcedure, error) {
	query := `SELECT id, emergency_type, severity, immediate_action, steps_json, resources_json, prevention_tips
		FROM emergency_procedures`
	var args []any
	if emergencyType != "" {
		query += ` WHERE emergency_type LIKE ? ESCAPE '\'`
		args = append(args, likePattern(emergencyType))
	}
	query += ` ORDER BY severity DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing emergency procedures: %w", err)
	}
	defer rows.Close()

	var out []domain.EmergencyProcedure
	for rows.Next() {
		var (
			p                domain.EmergencyProcedure
			steps, resources string
		)
		if err := rows.Scan(&p.ID, &p.EmergencyType, &p.Severity, &p.ImmediateAction, &steps, &resources, &p.PreventionTips); err != nil {
			return nil, fmt.Errorf("scanning emergency procedure: %w", err)
		}
		p.Severity = domain.Clamp(p.Severity, 1, 4)
		p.Steps = decodeList(steps)
		p.Resources = decodeList(resources)
		out = append(out, p)
	}
	return out, rows.Err()
}

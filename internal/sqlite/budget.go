package sqlite

import (
	"context"
	"fmt"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
)

// BudgetRepository implements repository.BudgetRepository for SQLite
type BudgetRepository struct {
	db *DB
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(db *DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// ListForMonth returns all project budgets for a fiscal year and month
func (r *BudgetRepository) ListForMonth(ctx context.Context, fiscalYear string, month int) ([]earnedvalue.MonthlyBudget, error) {
	query := `
		SELECT project_id, fiscal_year, month, estimated_hours
		FROM monthly_budgets
		WHERE fiscal_year = ? AND month = ?
		ORDER BY project_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, fiscalYear, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly budgets: %w", err)
	}
	defer rows.Close()

	var budgets []earnedvalue.MonthlyBudget
	for rows.Next() {
		var budget earnedvalue.MonthlyBudget
		err := rows.Scan(
			&budget.ProjectID,
			&budget.FiscalYear,
			&budget.Month,
			&budget.EstimatedHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly budget: %w", err)
		}
		budgets = append(budgets, budget)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	return budgets, nil
}

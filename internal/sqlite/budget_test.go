package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBudgetRepository_ListForMonth(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apollo", "active-delivery", true)
	insertProject(t, db, "p2", "Borealis", "indirect", true)

	budgets := []struct {
		projectID, fy string
		month         int
		hours         float64
	}{
		{"p1", "FY25", 4, 100},
		{"p2", "FY25", 4, 40},
		{"p1", "FY25", 5, 80},  // other month
		{"p1", "FY24", 4, 120}, // other fiscal year
	}
	for _, b := range budgets {
		_, err := db.Exec(
			`INSERT INTO monthly_budgets (project_id, fiscal_year, month, estimated_hours) VALUES (?, ?, ?, ?)`,
			b.projectID, b.fy, b.month, b.hours)
		require.NoError(t, err)
	}

	repo := NewBudgetRepository(db)
	got, err := repo.ListForMonth(ctx, "FY25", 4)
	require.NoError(t, err)

	require.Len(t, got, 2)
	require.Equal(t, "p1", got[0].ProjectID)
	require.InDelta(t, 100.0, got[0].EstimatedHours, 1e-9)
	require.Equal(t, "p2", got[1].ProjectID)
	require.InDelta(t, 40.0, got[1].EstimatedHours, 1e-9)
}

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// insertProject inserts a project row for tests
func insertProject(t *testing.T, db *DB, id, name, workType string, active bool) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO projects (id, name, work_type, active) VALUES (?, ?, ?, ?)`,
		id, name, workType, active)
	require.NoError(t, err)
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"projects",
		"wbs_items",
		"time_entries",
		"entry_allocations",
		"fixed_tasks",
		"monthly_budgets",
		"holidays",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestHolidayKindConstraint verifies the holiday kind check constraint
func TestHolidayKindConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO holidays (holiday_date, kind) VALUES (?, ?)`,
		"2025-04-29", "public")
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO holidays (holiday_date, kind) VALUES (?, ?)`,
		"2025-04-30", "vacation")
	require.Error(t, err, "should fail with invalid kind")
}

// TestBudgetMonthConstraint verifies the month range check constraint
func TestBudgetMonthConstraint(t *testing.T) {
	db := NewTestDB(t)
	insertProject(t, db, "p1", "Test Project", "active-delivery", true)

	_, err := db.Exec(
		`INSERT INTO monthly_budgets (project_id, fiscal_year, month, estimated_hours) VALUES (?, ?, ?, ?)`,
		"p1", "FY25", 13, 10.0)
	require.Error(t, err, "should fail with month out of range")
}

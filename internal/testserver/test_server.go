// Package testserver spins up a fully wired HTTP server over a seeded
// in-memory database for end-to-end tests.
package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
	"github.com/kdaisho/evetrack/internal/sqlite"
	"github.com/kdaisho/evetrack/internal/transport"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB

	t *testing.T
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	svc := earnedvalue.NewService(
		sqlite.NewProjectRepository(db),
		sqlite.NewTimeEntryRepository(db),
		sqlite.NewFixedTaskRepository(db),
		sqlite.NewBudgetRepository(db),
		sqlite.NewHolidayRepository(db),
		nil,
	)

	server := httptest.NewServer(transport.NewServer(svc, nil, true))

	ts := &TestServer{
		Server: server,
		DB:     db,
		t:      t,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// SeedProject inserts a project and returns its generated ID.
func (ts *TestServer) SeedProject(name string, workType earnedvalue.WorkType) string {
	ts.t.Helper()

	id := uuid.NewString()
	_, err := ts.DB.Exec(
		`INSERT INTO projects (id, name, work_type, active) VALUES (?, ?, ?, 1)`,
		id, name, string(workType))
	require.NoError(ts.t, err)
	return id
}

// SeedEntry inserts a completed time entry attributed to one project.
func (ts *TestServer) SeedEntry(projectID string, started time.Time, durationSec int64) string {
	ts.t.Helper()

	id := uuid.NewString()
	ended := started.Add(time.Duration(durationSec) * time.Second)
	_, err := ts.DB.Exec(
		`INSERT INTO time_entries (id, project_id, started_at, ended_at, duration_sec) VALUES (?, ?, ?, ?, ?)`,
		id, projectID, started.UTC(), ended.UTC(), durationSec)
	require.NoError(ts.t, err)
	return id
}

// SeedAllocation adds a percentage split to an entry.
func (ts *TestServer) SeedAllocation(entryID, projectID string, percent float64) {
	ts.t.Helper()

	_, err := ts.DB.Exec(
		`INSERT INTO entry_allocations (entry_id, project_id, percent) VALUES (?, ?, ?)`,
		entryID, projectID, percent)
	require.NoError(ts.t, err)
}

// SeedFixedTask inserts a date-pinned planned task.
func (ts *TestServer) SeedFixedTask(projectID, date string, estimatedMin int) {
	ts.t.Helper()

	_, err := ts.DB.Exec(
		`INSERT INTO fixed_tasks (id, project_id, task_date, estimated_min, title) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), projectID, date, estimatedMin, "seeded task")
	require.NoError(ts.t, err)
}

// SeedBudget inserts a monthly budget row.
func (ts *TestServer) SeedBudget(projectID, fiscalYear string, month int, hours float64) {
	ts.t.Helper()

	_, err := ts.DB.Exec(
		`INSERT INTO monthly_budgets (project_id, fiscal_year, month, estimated_hours) VALUES (?, ?, ?, ?)`,
		projectID, fiscalYear, month, hours)
	require.NoError(ts.t, err)
}

// SeedHoliday inserts a non-working date.
func (ts *TestServer) SeedHoliday(date string, kind earnedvalue.HolidayKind) {
	ts.t.Helper()

	_, err := ts.DB.Exec(
		`INSERT INTO holidays (holiday_date, kind) VALUES (?, ?)`,
		date, string(kind))
	require.NoError(ts.t, err)
}

package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the record-store schema. The report engine only
// reads these tables; writers (importers, trackers) live elsewhere.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table
CREATE TABLE projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    work_type TEXT NOT NULL DEFAULT 'active-delivery',
    active INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_projects_active ON projects(active);

-- Work breakdown structure items
CREATE TABLE wbs_items (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    name TEXT NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_wbs_project ON wbs_items(project_id);

-- Tracked time entries; ended_at is NULL while running
CREATE TABLE time_entries (
    id TEXT PRIMARY KEY,
    project_id TEXT,
    wbs_id TEXT,
    started_at TIMESTAMP NOT NULL,
    ended_at TIMESTAMP,
    duration_sec INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (project_id) REFERENCES projects(id),
    FOREIGN KEY (wbs_id) REFERENCES wbs_items(id)
);
CREATE INDEX idx_entries_started ON time_entries(started_at);
CREATE INDEX idx_entries_project ON time_entries(project_id);

-- Percentage splits of an entry across projects
CREATE TABLE entry_allocations (
    entry_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    wbs_id TEXT,
    percent REAL NOT NULL,
    PRIMARY KEY (entry_id, project_id),
    FOREIGN KEY (entry_id) REFERENCES time_entries(id),
    FOREIGN KEY (project_id) REFERENCES projects(id),
    FOREIGN KEY (wbs_id) REFERENCES wbs_items(id)
);

-- Planned tasks pinned to a calendar date
CREATE TABLE fixed_tasks (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    task_date TEXT NOT NULL,
    estimated_min INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_fixed_tasks_date ON fixed_tasks(task_date);

-- Monthly budget per project, fiscal year and calendar month
CREATE TABLE monthly_budgets (
    project_id TEXT NOT NULL,
    fiscal_year TEXT NOT NULL,
    month INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
    estimated_hours REAL NOT NULL,
    PRIMARY KEY (project_id, fiscal_year, month),
    FOREIGN KEY (project_id) REFERENCES projects(id)
);

-- Non-working dates
CREATE TABLE holidays (
    holiday_date TEXT PRIMARY KEY,
    kind TEXT NOT NULL CHECK(kind IN ('public', 'weekend', 'closure', 'paid_leave'))
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

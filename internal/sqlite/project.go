package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
	"github.com/kdaisho/evetrack/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListActive returns all active projects ordered by name
func (r *ProjectRepository) ListActive(ctx context.Context) ([]earnedvalue.Project, error) {
	query := `
		SELECT id, name, work_type, active
		FROM projects
		WHERE active = 1
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []earnedvalue.Project
	for rows.Next() {
		var proj earnedvalue.Project
		if err := rows.Scan(&proj.ID, &proj.Name, &proj.WorkType, &proj.Active); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*earnedvalue.Project, error) {
	query := `
		SELECT id, name, work_type, active
		FROM projects
		WHERE id = ?
	`

	var proj earnedvalue.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.Name,
		&proj.WorkType,
		&proj.Active,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &proj, nil
}

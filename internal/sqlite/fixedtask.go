package sqlite

import (
	"context"
	"fmt"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
)

// FixedTaskRepository implements repository.FixedTaskRepository for SQLite
type FixedTaskRepository struct {
	db *DB
}

// NewFixedTaskRepository creates a new FixedTaskRepository
func NewFixedTaskRepository(db *DB) *FixedTaskRepository {
	return &FixedTaskRepository{db: db}
}

// ListBetween returns tasks whose date falls in [from, to), day keys.
func (r *FixedTaskRepository) ListBetween(ctx context.Context, from, to string) ([]earnedvalue.FixedTask, error) {
	query := `
		SELECT id, project_id, task_date, estimated_min, title
		FROM fixed_tasks
		WHERE task_date >= ? AND task_date < ?
		ORDER BY task_date ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed tasks: %w", err)
	}
	defer rows.Close()

	var tasks []earnedvalue.FixedTask
	for rows.Next() {
		var task earnedvalue.FixedTask
		err := rows.Scan(
			&task.ID,
			&task.ProjectID,
			&task.Date,
			&task.EstimatedMin,
			&task.Title,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed task rows: %w", err)
	}

	return tasks, nil
}

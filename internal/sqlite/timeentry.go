package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
)

// TimeEntryRepository implements repository.TimeEntryRepository for SQLite
type TimeEntryRepository struct {
	db *DB
}

// NewTimeEntryRepository creates a new TimeEntryRepository
func NewTimeEntryRepository(db *DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// ListStartedBetween returns entries whose start time falls in [from, to),
// with their allocations attached.
func (r *TimeEntryRepository) ListStartedBetween(ctx context.Context, from, to time.Time) ([]earnedvalue.TimeEntry, error) {
	query := `
		SELECT id, project_id, wbs_id, started_at, ended_at, duration_sec
		FROM time_entries
		WHERE started_at >= ? AND started_at < ?
		ORDER BY started_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []earnedvalue.TimeEntry
	index := make(map[string]int)
	for rows.Next() {
		var entry earnedvalue.TimeEntry
		var projectID, wbsID sql.NullString
		var endedAt sql.NullTime
		err := rows.Scan(
			&entry.ID,
			&projectID,
			&wbsID,
			&entry.StartedAt,
			&endedAt,
			&entry.DurationSec,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		if projectID.Valid {
			entry.ProjectID = &projectID.String
		}
		if wbsID.Valid {
			entry.WBSID = &wbsID.String
		}
		if endedAt.Valid {
			t := endedAt.Time
			entry.EndedAt = &t
		}
		index[entry.ID] = len(entries)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", err)
	}

	if err := r.attachAllocations(ctx, from, to, entries, index); err != nil {
		return nil, err
	}

	return entries, nil
}

// attachAllocations loads the percentage splits for the window's entries.
func (r *TimeEntryRepository) attachAllocations(ctx context.Context, from, to time.Time, entries []earnedvalue.TimeEntry, index map[string]int) error {
	query := `
		SELECT a.entry_id, a.project_id, a.wbs_id, a.percent
		FROM entry_allocations a
		JOIN time_entries e ON e.id = a.entry_id
		WHERE e.started_at >= ? AND e.started_at < ?
		ORDER BY a.entry_id, a.project_id
	`

	rows, err := r.db.QueryContext(ctx, query, from.UTC(), to.UTC())
	if err != nil {
		return fmt.Errorf("failed to list entry allocations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID string
		var alloc earnedvalue.Allocation
		var wbsID sql.NullString
		if err := rows.Scan(&entryID, &alloc.ProjectID, &wbsID, &alloc.Percent); err != nil {
			return fmt.Errorf("failed to scan allocation: %w", err)
		}
		if wbsID.Valid {
			alloc.WBSID = &wbsID.String
		}
		if i, ok := index[entryID]; ok {
			entries[i].Allocations = append(entries[i].Allocations, alloc)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating allocation rows: %w", err)
	}

	return nil
}

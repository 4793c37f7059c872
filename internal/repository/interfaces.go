package repository

import (
	"context"
	"time"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
)

// The report engine is read-only: repositories expose queries over a
// snapshot of the records and never mutate them.

// ProjectRepository manages project reads
type ProjectRepository interface {
	ListActive(ctx context.Context) ([]earnedvalue.Project, error)
	Get(ctx context.Context, id string) (*earnedvalue.Project, error)
}

// TimeEntryRepository manages time entry reads
type TimeEntryRepository interface {
	// ListStartedBetween returns entries whose start time falls in
	// [from, to), with allocations attached.
	ListStartedBetween(ctx context.Context, from, to time.Time) ([]earnedvalue.TimeEntry, error)
}

// FixedTaskRepository manages fixed task reads
type FixedTaskRepository interface {
	// ListBetween returns tasks whose date falls in [from, to), day keys.
	ListBetween(ctx context.Context, from, to string) ([]earnedvalue.FixedTask, error)
}

// BudgetRepository manages monthly budget reads
type BudgetRepository interface {
	ListForMonth(ctx context.Context, fiscalYear string, month int) ([]earnedvalue.MonthlyBudget, error)
}

// HolidayRepository manages holiday reads
type HolidayRepository interface {
	// ListBetween returns holidays whose date falls in [from, to), day keys.
	ListBetween(ctx context.Context, from, to string) ([]earnedvalue.Holiday, error)
}

package earnedvalue

import (
	"context"
	"time"
)

// ProjectRepository provides read access to projects.
type ProjectRepository interface {
	ListActive(ctx context.Context) ([]Project, error)
}

// TimeEntryRepository provides read access to tracked time entries.
type TimeEntryRepository interface {
	// ListStartedBetween returns entries whose start time falls in
	// [from, to), with allocations attached.
	ListStartedBetween(ctx context.Context, from, to time.Time) ([]TimeEntry, error)
}

// FixedTaskRepository provides read access to date-pinned planned tasks.
type FixedTaskRepository interface {
	// ListBetween returns tasks whose date falls in [from, to), day keys.
	ListBetween(ctx context.Context, from, to string) ([]FixedTask, error)
}

// BudgetRepository provides read access to monthly budgets.
type BudgetRepository interface {
	ListForMonth(ctx context.Context, fiscalYear string, month int) ([]MonthlyBudget, error)
}

// HolidayRepository provides read access to non-working dates.
type HolidayRepository interface {
	// ListBetween returns holidays whose date falls in [from, to), day keys.
	ListBetween(ctx context.Context, from, to string) ([]Holiday, error)
}

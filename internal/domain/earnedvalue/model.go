package earnedvalue

import "time"

// WorkType classifies a project for rollup reporting.
type WorkType string

const (
	WorkTypeActiveDelivery WorkType = "active-delivery"
	WorkTypeTransfer       WorkType = "transfer-engagement"
	WorkTypeIndirect       WorkType = "indirect"
)

// AllWorkTypes returns the fixed classification buckets in report order.
func AllWorkTypes() []WorkType {
	return []WorkType{WorkTypeActiveDelivery, WorkTypeTransfer, WorkTypeIndirect}
}

// Normalize maps unknown or missing classifications to the default bucket.
func (w WorkType) Normalize() WorkType {
	switch w {
	case WorkTypeActiveDelivery, WorkTypeTransfer, WorkTypeIndirect:
		return w
	default:
		return WorkTypeActiveDelivery
	}
}

// Label returns the display name for a classification.
func (w WorkType) Label() string {
	switch w.Normalize() {
	case WorkTypeTransfer:
		return "Transfer Engagement"
	case WorkTypeIndirect:
		return "Indirect"
	default:
		return "Active Delivery"
	}
}

// Project is a container work is tracked against.
type Project struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	WorkType WorkType `json:"work_type"`
	Active   bool     `json:"active"`
}

// Allocation splits a time entry's cost across projects by percentage.
type Allocation struct {
	ProjectID string  `json:"project_id"`
	WBSID     *string `json:"wbs_id,omitempty"`
	Percent   float64 `json:"percent"`
}

// TimeEntry is a tracked interval. Either ProjectID attributes the whole
// entry, or Allocations split it; allocations take precedence when present.
// A nil EndedAt means the entry is still running.
type TimeEntry struct {
	ID          string       `json:"id"`
	ProjectID   *string      `json:"project_id,omitempty"`
	WBSID       *string      `json:"wbs_id,omitempty"`
	StartedAt   time.Time    `json:"started_at"`
	EndedAt     *time.Time   `json:"ended_at,omitempty"`
	DurationSec int64        `json:"duration_sec"`
	Allocations []Allocation `json:"allocations,omitempty"`
}

// FixedTask is planned work pinned to a single calendar date.
type FixedTask struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	Date         string `json:"date"` // day key, calendar.DayFormat
	EstimatedMin int    `json:"estimated_min"`
	Title        string `json:"title"`
}

// MonthlyBudget is a project's budget-at-completion contribution for one
// month of a fiscal year, in hours.
type MonthlyBudget struct {
	ProjectID      string  `json:"project_id"`
	FiscalYear     string  `json:"fiscal_year"`
	Month          int     `json:"month"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// HolidayKind tags why a date is non-working.
type HolidayKind string

const (
	HolidayPublic    HolidayKind = "public"
	HolidayWeekend   HolidayKind = "weekend"
	HolidayClosure   HolidayKind = "closure"
	HolidayPaidLeave HolidayKind = "paid_leave"
)

// Holiday is a non-working calendar date.
type Holiday struct {
	Date string      `json:"date"` // day key, calendar.DayFormat
	Kind HolidayKind `json:"kind"`
}

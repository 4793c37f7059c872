package earnedvalue

import "github.com/kdaisho/evetrack/internal/domain/calendar"

// FixedHours sums pre-planned task minutes into per-project daily hours.
// Fixed tasks are deterministic planned work (recurring meetings and the
// like); they are never smoothed.
func FixedHours(m calendar.Month, tasks []FixedTask) *SeriesSet {
	set := NewSeriesSet(m.Days)
	for _, task := range tasks {
		set.Add(task.ProjectID, task.Date, float64(task.EstimatedMin)/60)
	}
	return set
}

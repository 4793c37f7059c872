package earnedvalue

import "github.com/kdaisho/evetrack/internal/domain/calendar"

// ActualHours folds tracked time entries into per-project daily hours.
//
// An entry is attributed entirely to the day it started on, even when it
// spans midnight. That is a documented policy, not a rounding shortcut:
// changing it would silently alter historical totals.
//
// Entries still running (nil end time) are excluded from cost accounting.
// When allocations are present they take precedence over the direct
// project attribution; percentages are applied as-is without
// re-validation, so a record whose percentages do not sum to 100 produces
// a proportionally skewed figure rather than an error.
func ActualHours(m calendar.Month, entries []TimeEntry) *SeriesSet {
	set := NewSeriesSet(m.Days)
	for _, entry := range entries {
		if entry.EndedAt == nil {
			continue
		}
		day := entry.StartedAt.UTC().Format(calendar.DayFormat)
		hours := float64(entry.DurationSec) / 3600

		if len(entry.Allocations) > 0 {
			for _, alloc := range entry.Allocations {
				set.Add(alloc.ProjectID, day, hours*alloc.Percent/100)
			}
			continue
		}
		if entry.ProjectID != nil {
			set.Add(*entry.ProjectID, day, hours)
		}
		// Entries with neither project nor allocations are valid
		// uncategorized time and contribute to no project.
	}
	return set
}

package earnedvalue

import "github.com/kdaisho/evetrack/internal/domain/calendar"

// PlannedHours spreads each project's unconsumed monthly budget evenly
// across the month's working days, on top of that day's fixed-task hours.
//
//	remaining  = max(estimated - fixedTotal, 0)
//	dailyAlloc = remaining / workingDayCount (0 when no working days)
//	PV(day)    = fixed(day) + dailyAlloc on working days, fixed(day) otherwise
//
// Budgeting is month-local: a prior month's overrun or shortfall does not
// carry forward into this month's remaining budget.
func PlannedHours(m calendar.Month, nonWorking calendar.DaySet, fixed *SeriesSet, estimated map[string]float64) *SeriesSet {
	workingDays := m.WorkingDayCount(nonWorking)

	pv := NewSeriesSet(m.Days)

	// Projects with fixed tasks, budgets, or both are all in scope.
	seen := make(map[string]struct{})
	for _, id := range fixed.ProjectIDs() {
		seen[id] = struct{}{}
	}
	for id := range estimated {
		seen[id] = struct{}{}
	}

	for id := range seen {
		fixedTotal := fixed.Total(id)
		remaining := estimated[id] - fixedTotal
		if remaining < 0 {
			remaining = 0
		}

		var dailyAlloc float64
		if workingDays > 0 {
			dailyAlloc = remaining / float64(workingDays)
		}

		for _, day := range m.Days {
			v := fixed.At(id, day)
			if !nonWorking.Contains(day) {
				v += dailyAlloc
			}
			pv.Add(id, day, v)
		}
	}

	return pv
}

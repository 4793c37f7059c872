// Package calendar resolves reporting months: ordered day keys, fiscal-year
// labels, and non-working day sets.
package calendar

import (
	"fmt"
	"time"
)

// DayFormat is the canonical day key layout.
const DayFormat = "2006-01-02"

// fiscalStartMonth is the calendar month a fiscal year begins in.
const fiscalStartMonth = 4

// Month is a resolved reporting month.
type Month struct {
	Year       int
	Month      int
	Start      time.Time // first day of the month, midnight UTC
	End        time.Time // first day of the next month, midnight UTC
	Days       []string  // one key per calendar day, chronological
	FiscalYear string
}

// DaySet is a set of day keys.
type DaySet map[string]struct{}

// Contains reports whether the day key is in the set.
func (s DaySet) Contains(day string) bool {
	_, ok := s[day]
	return ok
}

// Resolve produces the reporting month for a year and 1-based month.
// Any valid calendar month is accepted; months are resolved independently.
func Resolve(year, month int) Month {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	days := make([]string, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}

	return Month{
		Year:       year,
		Month:      month,
		Start:      start,
		End:        end,
		Days:       days,
		FiscalYear: FiscalLabel(year, month),
	}
}

// FiscalLabel returns the fiscal-year label for a calendar year and month.
// A fiscal year starts in April; the label carries the last two digits of
// the calendar year it starts in, e.g. March 2025 -> "FY24".
func FiscalLabel(year, month int) string {
	fy := year
	if month < fiscalStartMonth {
		fy = year - 1
	}
	return fmt.Sprintf("FY%02d", fy%100)
}

// NonWorking collects the given day keys that fall inside the month.
// Callers pass holiday dates; duplicates and out-of-month keys are dropped.
func (m Month) NonWorking(days []string) DaySet {
	set := make(DaySet, len(days))
	for _, day := range days {
		t, err := time.ParseInLocation(DayFormat, day, time.UTC)
		if err != nil {
			continue
		}
		if t.Before(m.Start) || !t.Before(m.End) {
			continue
		}
		set[day] = struct{}{}
	}
	return set
}

// WorkingDayCount returns the number of days in the month not covered by
// the non-working set.
func (m Month) WorkingDayCount(nonWorking DaySet) int {
	count := 0
	for _, day := range m.Days {
		if !nonWorking.Contains(day) {
			count++
		}
	}
	return count
}

package earnedvalue_test

import (
	"testing"

	"github.com/kdaisho/evetrack/internal/domain/calendar"
	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
	"github.com/stretchr/testify/require"
)

func TestFixedHours_MinutesToHours(t *testing.T) {
	m := calendar.Resolve(2025, 4)

	fixed := earnedvalue.FixedHours(m, []earnedvalue.FixedTask{
		{ID: "t1", ProjectID: "pA", Date: "2025-04-01", EstimatedMin: 90},
		{ID: "t2", ProjectID: "pA", Date: "2025-04-01", EstimatedMin: 30},
		{ID: "t3", ProjectID: "pA", Date: "2025-04-02", EstimatedMin: 60},
	})

	require.InDelta(t, 2.0, fixed.At("pA", "2025-04-01"), 1e-9)
	require.InDelta(t, 1.0, fixed.At("pA", "2025-04-02"), 1e-9)
	require.InDelta(t, 3.0, fixed.Total("pA"), 1e-9)
}

func TestFixedHours_TotalOverAllDays(t *testing.T) {
	m := calendar.Resolve(2025, 4)

	fixed := earnedvalue.FixedHours(m, nil)

	// Every (project, day) pair has a defined value, defaulting to zero.
	series := fixed.Series("unknown")
	require.Len(t, series, 30)
	for _, v := range series {
		require.Zero(t, v)
	}
}

func TestFixedHours_OutOfMonthIgnored(t *testing.T) {
	m := calendar.Resolve(2025, 4)

	fixed := earnedvalue.FixedHours(m, []earnedvalue.FixedTask{
		{ID: "t1", ProjectID: "pA", Date: "2025-03-31", EstimatedMin: 60},
		{ID: "t2", ProjectID: "pA", Date: "2025-05-01", EstimatedMin: 60},
	})

	require.Zero(t, fixed.Total("pA"))
}

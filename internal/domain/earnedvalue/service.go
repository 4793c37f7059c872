package earnedvalue

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kdaisho/evetrack/internal/domain/calendar"
	"golang.org/x/sync/errgroup"
)

// Service computes earned-value reports. It is stateless: each request
// reads a snapshot of the records and derives series from it; nothing is
// cached or mutated between requests.
type Service struct {
	projects ProjectRepository
	entries  TimeEntryRepository
	tasks    FixedTaskRepository
	budgets  BudgetRepository
	holidays HolidayRepository
	logger   *slog.Logger
}

// NewService creates an earned-value service.
func NewService(projects ProjectRepository, entries TimeEntryRepository, tasks FixedTaskRepository, budgets BudgetRepository, holidays HolidayRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		projects: projects,
		entries:  entries,
		tasks:    tasks,
		budgets:  budgets,
		holidays: holidays,
		logger:   logger,
	}
}

// Period is the reported date range, inclusive day keys.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Totals sums a project's month.
type Totals struct {
	PVHours        float64 `json:"pvHours"`
	ACHours        float64 `json:"acHours"`
	FixedHours     float64 `json:"fixedHours"`
	EstimatedHours float64 `json:"estimatedHours"`
}

// ProjectSeries is one project's daily PV/AC for the month.
type ProjectSeries struct {
	ProjectID   string    `json:"projectId"`
	ProjectName string    `json:"projectName"`
	PVSeries    []float64 `json:"pvSeries"`
	ACSeries    []float64 `json:"acSeries"`
	Totals      Totals    `json:"totals"`
}

// ProjectReport is the per-project series response.
type ProjectReport struct {
	Period   Period          `json:"period"`
	Days     []string        `json:"days"`
	Projects []ProjectSeries `json:"projects"`
}

// TypeRollup is one classification bucket's series for the month.
type TypeRollup struct {
	WorkType      WorkType  `json:"workType"`
	Label         string    `json:"label"`
	PVDaily       []float64 `json:"pvDaily"`
	ACDaily       []float64 `json:"acDaily"`
	BACTotal      float64   `json:"bacTotal"`
	PVRatio       []float64 `json:"pvRatio"`
	ACRatio       []float64 `json:"acRatio"`
	BACRatio      []float64 `json:"bacRatio"`
	ForecastRatio []float64 `json:"forecastRatio"`
}

// WorkTypeReport is the classification rollup response.
type WorkTypeReport struct {
	Period Period       `json:"period"`
	Days   []string     `json:"days"`
	Types  []TypeRollup `json:"types"`
}

// inputs is one month's record snapshot.
type inputs struct {
	month      calendar.Month
	nonWorking calendar.DaySet
	projects   []Project
	fixed      *SeriesSet
	actual     *SeriesSet
	estimated  map[string]float64
}

// load fetches the month's records. The five reads are independent, so
// they are issued concurrently.
func (s *Service) load(ctx context.Context, year, month int) (*inputs, error) {
	m := calendar.Resolve(year, month)
	dayFrom := m.Start.Format(calendar.DayFormat)
	dayTo := m.End.Format(calendar.DayFormat)

	var (
		projects []Project
		entries  []TimeEntry
		tasks    []FixedTask
		budgets  []MonthlyBudget
		holidays []Holiday
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = s.projects.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		entries, err = s.entries.ListStartedBetween(gctx, m.Start, m.End)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.tasks.ListBetween(gctx, dayFrom, dayTo)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.budgets.ListForMonth(gctx, m.FiscalYear, month)
		return err
	})
	g.Go(func() (err error) {
		holidays, err = s.holidays.ListBetween(gctx, dayFrom, dayTo)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading report inputs: %w", err)
	}

	holidayDays := make([]string, 0, len(holidays))
	for _, h := range holidays {
		holidayDays = append(holidayDays, h.Date)
	}
	nonWorking := m.NonWorking(holidayDays)

	estimated := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		estimated[b.ProjectID] += b.EstimatedHours
	}

	fixed := FixedHours(m, tasks)

	return &inputs{
		month:      m,
		nonWorking: nonWorking,
		projects:   projects,
		fixed:      fixed,
		actual:     ActualHours(m, entries),
		estimated:  estimated,
	}, nil
}

// ProjectReport computes daily PV/AC series per project for a month.
// projectID narrows the response to a single project when non-empty.
func (s *Service) ProjectReport(ctx context.Context, year, month int, projectID string) (*ProjectReport, error) {
	in, err := s.load(ctx, year, month)
	if err != nil {
		return nil, err
	}

	pv := PlannedHours(in.month, in.nonWorking, in.fixed, in.estimated)

	report := &ProjectReport{
		Period: Period{
			Start: in.month.Days[0],
			End:   in.month.Days[len(in.month.Days)-1],
		},
		Days:     in.month.Days,
		Projects: make([]ProjectSeries, 0, len(in.projects)),
	}

	for _, proj := range in.projects {
		if projectID != "" && proj.ID != projectID {
			continue
		}
		pvSeries := pv.Series(proj.ID)
		acSeries := in.actual.Series(proj.ID)
		report.Projects = append(report.Projects, ProjectSeries{
			ProjectID:   proj.ID,
			ProjectName: proj.Name,
			PVSeries:    pvSeries,
			ACSeries:    acSeries,
			Totals: Totals{
				PVHours:        sum(pvSeries),
				ACHours:        sum(acSeries),
				FixedHours:     in.fixed.Total(proj.ID),
				EstimatedHours: in.estimated[proj.ID],
			},
		})
	}

	s.logger.Debug("computed project report",
		"year", year, "month", month, "projects", len(report.Projects))
	return report, nil
}

// WorkTypeReport rolls projects up into the three classification buckets
// with ratio and run-rate forecast series.
func (s *Service) WorkTypeReport(ctx context.Context, year, month int) (*WorkTypeReport, error) {
	in, err := s.load(ctx, year, month)
	if err != nil {
		return nil, err
	}

	pv := PlannedHours(in.month, in.nonWorking, in.fixed, in.estimated)
	buckets := ByWorkType(in.projects, in.month.Days, pv, in.actual, in.estimated)
	ratios := Ratios(buckets, len(in.month.Days))

	report := &WorkTypeReport{
		Period: Period{
			Start: in.month.Days[0],
			End:   in.month.Days[len(in.month.Days)-1],
		},
		Days:  in.month.Days,
		Types: make([]TypeRollup, 0, len(buckets)),
	}

	for i, bucket := range buckets {
		report.Types = append(report.Types, TypeRollup{
			WorkType:      bucket.WorkType,
			Label:         bucket.WorkType.Label(),
			PVDaily:       bucket.PVDaily,
			ACDaily:       bucket.ACDaily,
			BACTotal:      bucket.BACTotal,
			PVRatio:       ratios[i].PVRatio,
			ACRatio:       ratios[i].ACRatio,
			BACRatio:      ratios[i].BACRatio,
			ForecastRatio: ratios[i].ForecastRatio,
		})
	}

	s.logger.Debug("computed work-type report", "year", year, "month", month)
	return report, nil
}

func sum(series []float64) float64 {
	var total float64
	for _, v := range series {
		total += v
	}
	return total
}

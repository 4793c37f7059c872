package earnedvalue

import "sort"

// SeriesSet holds per-project daily hour series aligned to a month's day
// keys. Every (project, day) pair has a defined value, defaulting to zero.
type SeriesSet struct {
	days  []string
	index map[string]int
	data  map[string][]float64
}

// NewSeriesSet creates an empty set aligned to the given day keys.
func NewSeriesSet(days []string) *SeriesSet {
	index := make(map[string]int, len(days))
	for i, day := range days {
		index[day] = i
	}
	return &SeriesSet{
		days:  days,
		index: index,
		data:  make(map[string][]float64),
	}
}

// Add accumulates hours for a project on a day. Day keys outside the
// aligned range are ignored.
func (s *SeriesSet) Add(projectID, day string, hours float64) {
	i, ok := s.index[day]
	if !ok {
		return
	}
	series, ok := s.data[projectID]
	if !ok {
		series = make([]float64, len(s.days))
		s.data[projectID] = series
	}
	series[i] += hours
}

// Series returns the project's daily values, one per day key. Projects
// never seen yield an all-zero slice. The result is a copy.
func (s *SeriesSet) Series(projectID string) []float64 {
	out := make([]float64, len(s.days))
	copy(out, s.data[projectID])
	return out
}

// Total returns the sum of the project's daily values.
func (s *SeriesSet) Total(projectID string) float64 {
	var total float64
	for _, v := range s.data[projectID] {
		total += v
	}
	return total
}

// At returns the project's value on a single day, zero when unseen.
func (s *SeriesSet) At(projectID, day string) float64 {
	i, ok := s.index[day]
	if !ok {
		return 0
	}
	series, ok := s.data[projectID]
	if !ok {
		return 0
	}
	return series[i]
}

// ProjectIDs returns the projects with recorded values, sorted.
func (s *SeriesSet) ProjectIDs() []string {
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

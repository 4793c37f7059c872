package earnedvalue

// TypeBucket is the rollup of one classification for a month: daily PV/AC
// sums plus the bucket's total budget commitment. BACTotal is a scalar,
// not a series; it is the month's budget, not a day-by-day plan.
type TypeBucket struct {
	WorkType WorkType
	PVDaily  []float64
	ACDaily  []float64
	BACTotal float64
}

// ByWorkType partitions projects into the three fixed classification
// buckets and sums their series. Projects with an unknown or missing
// classification land in the active-delivery bucket. All buckets are
// always present, zero-filled when empty.
func ByWorkType(projects []Project, days []string, pv, ac *SeriesSet, estimated map[string]float64) []TypeBucket {
	byType := make(map[WorkType]*TypeBucket, 3)
	buckets := make([]TypeBucket, 0, 3)
	for _, wt := range AllWorkTypes() {
		buckets = append(buckets, TypeBucket{
			WorkType: wt,
			PVDaily:  make([]float64, len(days)),
			ACDaily:  make([]float64, len(days)),
		})
		byType[wt] = &buckets[len(buckets)-1]
	}

	for _, proj := range projects {
		bucket := byType[proj.WorkType.Normalize()]

		pvSeries := pv.Series(proj.ID)
		acSeries := ac.Series(proj.ID)
		for i := range days {
			bucket.PVDaily[i] += pvSeries[i]
			bucket.ACDaily[i] += acSeries[i]
		}
		bucket.BACTotal += estimated[proj.ID]
	}

	return buckets
}

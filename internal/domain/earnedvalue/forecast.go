package earnedvalue

// TypeRatios is one bucket's share-of-total series, in percent.
// BACRatio is constant across the month but emitted per day so every
// series lines up with the day axis.
type TypeRatios struct {
	WorkType      WorkType
	PVRatio       []float64
	ACRatio       []float64
	BACRatio      []float64
	ForecastRatio []float64
}

// Ratios converts bucket series into percentage-of-total series and a
// linear run-rate forecast share per bucket. Each bucket's numerator
// partitions the shared denominator, so on any day with a positive grand
// total the ratios across buckets sum to 100.
func Ratios(buckets []TypeBucket, dayCount int) []TypeRatios {
	totalPV := make([]float64, dayCount)
	totalAC := make([]float64, dayCount)
	var totalBAC float64
	for _, b := range buckets {
		for i := 0; i < dayCount; i++ {
			totalPV[i] += b.PVDaily[i]
			totalAC[i] += b.ACDaily[i]
		}
		totalBAC += b.BACTotal
	}

	out := make([]TypeRatios, 0, len(buckets))
	for _, b := range buckets {
		ratios := TypeRatios{
			WorkType:      b.WorkType,
			PVRatio:       make([]float64, dayCount),
			ACRatio:       make([]float64, dayCount),
			BACRatio:      make([]float64, dayCount),
			ForecastRatio: make([]float64, dayCount),
		}

		var bacRatio float64
		if totalBAC > 0 {
			bacRatio = b.BACTotal / totalBAC * 100
		}

		var cumAC, cumTotalAC float64
		for i := 0; i < dayCount; i++ {
			if totalPV[i] > 0 {
				ratios.PVRatio[i] = b.PVDaily[i] / totalPV[i] * 100
			}
			if totalAC[i] > 0 {
				ratios.ACRatio[i] = b.ACDaily[i] / totalAC[i] * 100
			}
			ratios.BACRatio[i] = bacRatio

			cumAC += b.ACDaily[i]
			cumTotalAC += totalAC[i]
			totalForecast := RunRateForecast(cumTotalAC, i, dayCount)
			if totalForecast > 0 {
				ratios.ForecastRatio[i] = RunRateForecast(cumAC, i, dayCount) / totalForecast * 100
			}
		}

		out = append(out, ratios)
	}

	return out
}

// RunRateForecast extrapolates a cumulative value through day index i
// (zero-based) linearly across the remaining days of the period: the
// average daily rate observed so far is assumed to continue. A zero
// cumulative forecasts zero.
func RunRateForecast(cum float64, dayIndex, totalDays int) float64 {
	if cum == 0 {
		return 0
	}
	elapsed := float64(dayIndex + 1)
	remaining := float64(totalDays) - elapsed
	return cum + cum/elapsed*remaining
}

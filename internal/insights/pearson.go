// Package insights mines the rolling activity event log for correlations
// between daily series and for simple time-of-day, day-of-week, and streak
// patterns.
package insights

import "math"

// DailyPoint is one value of a per-date series, keyed by date-key.
type DailyPoint struct {
	Date  string
	Value float64
}

// minAlignedPoints is the minimum number of date-aligned points required
// before a correlation is considered meaningful.
const minAlignedPoints = 3

// Pearson computes the Pearson coefficient between two daily series,
// aligned by date-key. Dates present in only one series contribute a zero
// to the other. Returns 0 when fewer than minAlignedPoints dates exist or
// either series has zero variance; otherwise the result is in [-1, 1].
func Pearson(a, b []DailyPoint) float64 {
	dates := map[string]struct{}{}
	av := map[string]float64{}
	bv := map[string]float64{}

	for _, p := range a {
		av[p.Date] = p.Value
		dates[p.Date] = struct{}{}
	}
	for _, p := range b {
		bv[p.Date] = p.Value
		dates[p.Date] = struct{}{}
	}

	if len(dates) < minAlignedPoints {
		return 0
	}

	var xs, ys []float64
	for date := range dates {
		xs = append(xs, av[date])
		ys = append(ys, bv[date])
	}

	n := float64(len(xs))
	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var sumXY, sumXX, sumYY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		sumXY += dx * dy
		sumXX += dx * dx
		sumYY += dy * dy
	}

	denom := math.Sqrt(sumXX * sumYY)
	if denom == 0 {
		return 0
	}
	return sumXY / denom
}

package analysis

import (
	"math"

	"awattar-dashboard/internal/model"
)

// Summarize computes avg/min/max over the series values. On an empty series
// every field stays nil: the statistics are undefined, not zero, and callers
// render them as missing.
func Summarize(series model.AggregatedSeries) model.Stats {
	if len(series) == 0 {
		return model.Stats{}
	}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, p := range series {
		v := p.AvgPriceCtPerKWh
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	avg := sum / float64(len(series))

	return model.Stats{Avg: &avg, Min: &minv, Max: &maxv}
}

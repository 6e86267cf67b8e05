package analysis

import (
	"sort"
	"time"

	"awattar-dashboard/internal/model"
)

// weekdayOrder is the fixed presentation order for the weekday pattern.
// time.Weekday starts at Sunday, so the table is built explicitly.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// HourlyPattern answers "which hour of the day tends to be expensive" over
// the FULL dataset. It deliberately ignores any date-range filter: the
// pattern describes all available history, not the user's selected window.
//
// Hours are the UTC hour component of StartTime. Only hours that occur in
// the data appear; output is sorted by hour ascending.
func HourlyPattern(ds model.Dataset) []model.HourAverage {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, r := range ds {
		h := r.StartTime.UTC().Hour()
		sums[h] += r.PriceCtPerKWh
		counts[h]++
	}

	out := make([]model.HourAverage, 0, len(sums))
	for h, sum := range sums {
		out = append(out, model.HourAverage{
			Hour:             h,
			AvgPriceCtPerKWh: sum / float64(counts[h]),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// WeekdayPattern computes the mean price per weekday over the FULL dataset.
// The result always has seven entries in Monday..Sunday order; a weekday
// absent from the data keeps its slot with a nil average rather than being
// dropped or zeroed.
func WeekdayPattern(ds model.Dataset) []model.WeekdayAverage {
	sums := map[time.Weekday]float64{}
	counts := map[time.Weekday]int{}
	for _, r := range ds {
		wd := r.StartTime.UTC().Weekday()
		sums[wd] += r.PriceCtPerKWh
		counts[wd]++
	}

	out := make([]model.WeekdayAverage, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		entry := model.WeekdayAverage{Weekday: wd.String()}
		if n := counts[wd]; n > 0 {
			avg := sums[wd] / float64(n)
			entry.AvgPriceCtPerKWh = &avg
		}
		out = append(out, entry)
	}
	return out
}

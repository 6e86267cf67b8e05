package analysis

import (
	"sort"
	"time"

	"awattar-dashboard/internal/model"
)

// FilterAndAggregate filters the dataset to the inclusive calendar-date range
// [startDate, endDate] (compared against the day of each record's StartTime)
// and buckets the result at the requested granularity.
//
// Hourly mode is a pass-through: one point per retained record, no averaging.
// Daily and monthly modes average price_ct_per_kwh per bucket; buckets without
// records simply do not appear. An inverted range yields an empty series, it
// is not an error.
//
// All bucketing happens in UTC, the epoch basis of the source timestamps.
func FilterAndAggregate(ds model.Dataset, startDate, endDate time.Time, mode model.AggMode) model.AggregatedSeries {
	start := truncateDay(startDate)
	end := truncateDay(endDate)
	if end.Before(start) {
		return model.AggregatedSeries{}
	}

	filtered := filterByDate(ds, start, end)
	if len(filtered) == 0 {
		return model.AggregatedSeries{}
	}

	if mode == model.AggHourly {
		series := make(model.AggregatedSeries, 0, len(filtered))
		for _, r := range filtered {
			series = append(series, model.SeriesPoint{
				BucketStart:      r.StartTime,
				AvgPriceCtPerKWh: r.PriceCtPerKWh,
			})
		}
		return series
	}

	type acc struct {
		sum   float64
		count int
	}
	buckets := map[time.Time]*acc{}
	for _, r := range filtered {
		key := bucketKey(r.StartTime, mode)
		a := buckets[key]
		if a == nil {
			a = &acc{}
			buckets[key] = a
		}
		a.sum += r.PriceCtPerKWh
		a.count++
	}

	series := make(model.AggregatedSeries, 0, len(buckets))
	for key, a := range buckets {
		series = append(series, model.SeriesPoint{
			BucketStart:      key,
			AvgPriceCtPerKWh: a.sum / float64(a.count),
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].BucketStart.Before(series[j].BucketStart)
	})
	return series
}

// filterByDate retains the records whose StartTime falls on a day within
// [start, end], both inclusive and day-aligned. Order is preserved.
func filterByDate(ds model.Dataset, start, end time.Time) model.Dataset {
	out := make(model.Dataset, 0, len(ds))
	for _, r := range ds {
		d := r.Date()
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func bucketKey(t time.Time, mode model.AggMode) time.Time {
	y, m, d := t.UTC().Date()
	switch mode {
	case model.AggMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	default: // daily
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package model

import (
	"fmt"
	"strings"
	"time"
)

// AggMode selects the bucket granularity for the price series.
type AggMode string

const (
	AggHourly  AggMode = "hourly"
	AggDaily   AggMode = "daily"
	AggMonthly AggMode = "monthly"
)

// ParseAggMode accepts the wire spelling of a mode ("hourly", "daily",
// "monthly"), case-insensitive. An empty string defaults to daily, matching
// the dashboard's default view.
func ParseAggMode(s string) (AggMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return AggDaily, nil
	case string(AggHourly):
		return AggHourly, nil
	case string(AggDaily):
		return AggDaily, nil
	case string(AggMonthly):
		return AggMonthly, nil
	}
	return "", fmt.Errorf("unknown aggregation mode %q (want hourly, daily or monthly)", s)
}

func (m AggMode) Valid() bool {
	switch m {
	case AggHourly, AggDaily, AggMonthly:
		return true
	}
	return false
}

// SeriesPoint is one bucket of the aggregated price series.
type SeriesPoint struct {
	BucketStart      time.Time `json:"bucket_start"`
	AvgPriceCtPerKWh float64   `json:"avg_price_ct_per_kwh"`
}

// AggregatedSeries is ordered by BucketStart ascending and sparse: a bucket
// with no contributing records is absent, never emitted as a zero row.
type AggregatedSeries []SeriesPoint

// Stats summarizes a series. All fields are nil when the series is empty;
// callers render that as missing ("N/A"), never as zero.
type Stats struct {
	Avg *float64 `json:"avg"`
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// HourAverage is the mean price for one hour-of-day slot across the full
// history. Only hours that occur in the data appear.
type HourAverage struct {
	Hour             int     `json:"hour"`
	AvgPriceCtPerKWh float64 `json:"avg_price_ct_per_kwh"`
}

// WeekdayAverage is the mean price for one weekday across the full history.
// The slice produced by the analyzer always holds seven entries in fixed
// Monday..Sunday order; a weekday with no data keeps its slot with a nil
// average.
type WeekdayAverage struct {
	Weekday          string   `json:"weekday"`
	AvgPriceCtPerKWh *float64 `json:"avg_price_ct_per_kwh"`
}

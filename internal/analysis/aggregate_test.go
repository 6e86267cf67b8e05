package analysis

import (
	"math"
	"testing"
	"time"

	"awattar-dashboard/internal/model"
)

func rec(start string, marketEURPerMWh float64) model.PriceRecord {
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		panic(err)
	}
	return model.PriceRecord{
		StartTime:            t,
		EndTime:              t.Add(time.Hour),
		MarketPriceEURPerMWh: marketEURPerMWh,
		PriceCtPerKWh:        marketEURPerMWh / 10,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFilterAndAggregate_DailyTwoRecords(t *testing.T) {
	ds := model.Dataset{
		rec("2024-01-01T00:00:00Z", 400),
		rec("2024-01-01T01:00:00Z", 200),
	}
	series := FilterAndAggregate(ds, day("2024-01-01"), day("2024-01-01"), model.AggDaily)
	if len(series) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(series))
	}
	if got := series[0].AvgPriceCtPerKWh; got != 30.0 {
		t.Errorf("expected avg 30.0 ct/kWh, got %v", got)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !series[0].BucketStart.Equal(want) {
		t.Errorf("expected midnight-aligned bucket %v, got %v", want, series[0].BucketStart)
	}
}

func TestFilterAndAggregate_HourlyPassThrough(t *testing.T) {
	ds := model.Dataset{
		rec("2024-01-01T00:00:00Z", 400),
		rec("2024-01-01T01:00:00Z", 200),
	}
	series := FilterAndAggregate(ds, day("2024-01-01"), day("2024-01-01"), model.AggHourly)
	if len(series) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(series))
	}
	if series[0].AvgPriceCtPerKWh != 40.0 || series[1].AvgPriceCtPerKWh != 20.0 {
		t.Errorf("expected unaggregated values 40.0 and 20.0, got %v and %v",
			series[0].AvgPriceCtPerKWh, series[1].AvgPriceCtPerKWh)
	}
	if !series[0].BucketStart.Equal(ds[0].StartTime) {
		t.Errorf("hourly bucket should carry the record's start time")
	}
}

func TestFilterAndAggregate_FilterBounds(t *testing.T) {
	ds := model.Dataset{
		rec("2024-01-31T23:00:00Z", 100),
		rec("2024-02-01T00:00:00Z", 200),
		rec("2024-02-15T12:00:00Z", 300),
		rec("2024-02-29T23:00:00Z", 400),
		rec("2024-03-01T00:00:00Z", 500),
	}
	series := FilterAndAggregate(ds, day("2024-02-01"), day("2024-02-29"), model.AggHourly)
	if len(series) != 3 {
		t.Fatalf("expected 3 records inside Feb, got %d", len(series))
	}
	for _, p := range series {
		if p.BucketStart.Before(day("2024-02-01")) || !p.BucketStart.Before(day("2024-03-01")) {
			t.Errorf("record %v outside filter range", p.BucketStart)
		}
	}
}

func TestFilterAndAggregate_BucketCompleteness(t *testing.T) {
	// 48 hourly records over two days; daily aggregation must account for
	// every record exactly once.
	ds := model.Dataset{}
	base, _ := time.Parse(time.RFC3339, "2024-06-01T00:00:00Z")
	for i := 0; i < 48; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		ds = append(ds, rec(start.Format(time.RFC3339), float64(i)))
	}
	series := FilterAndAggregate(ds, day("2024-06-01"), day("2024-06-02"), model.AggDaily)
	if len(series) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(series))
	}
	// Day 1 holds prices 0..23 EUR/MWh -> mean 11.5 -> 1.15 ct/kWh.
	if got := series[0].AvgPriceCtPerKWh; math.Abs(got-1.15) > 1e-9 {
		t.Errorf("day 1 avg: expected 1.15, got %v", got)
	}
	// Day 2 holds prices 24..47 -> mean 35.5 -> 3.55 ct/kWh.
	if got := series[1].AvgPriceCtPerKWh; math.Abs(got-3.55) > 1e-9 {
		t.Errorf("day 2 avg: expected 3.55, got %v", got)
	}
}

func TestFilterAndAggregate_SparseBuckets(t *testing.T) {
	// Records on Jan 1 and Jan 3 only; Jan 2 must not appear as a bucket.
	ds := model.Dataset{
		rec("2024-01-01T10:00:00Z", 100),
		rec("2024-01-03T10:00:00Z", 300),
	}
	series := FilterAndAggregate(ds, day("2024-01-01"), day("2024-01-03"), model.AggDaily)
	if len(series) != 2 {
		t.Fatalf("expected 2 sparse buckets, got %d", len(series))
	}
	for _, p := range series {
		if p.BucketStart.Day() == 2 {
			t.Errorf("empty day emitted as bucket: %v", p.BucketStart)
		}
	}
}

func TestFilterAndAggregate_MonthlyAlignment(t *testing.T) {
	ds := model.Dataset{
		rec("2024-01-05T10:00:00Z", 100),
		rec("2024-01-20T10:00:00Z", 300),
		rec("2024-02-10T10:00:00Z", 500),
	}
	series := FilterAndAggregate(ds, day("2024-01-01"), day("2024-02-29"), model.AggMonthly)
	if len(series) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(series))
	}
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !series[0].BucketStart.Equal(jan) {
		t.Errorf("expected first-of-month bucket %v, got %v", jan, series[0].BucketStart)
	}
	if got := series[0].AvgPriceCtPerKWh; got != 20.0 {
		t.Errorf("january avg: expected 20.0, got %v", got)
	}
	if got := series[1].AvgPriceCtPerKWh; got != 50.0 {
		t.Errorf("february avg: expected 50.0, got %v", got)
	}
}

func TestFilterAndAggregate_InvertedRange(t *testing.T) {
	ds := model.Dataset{rec("2024-01-01T00:00:00Z", 100)}
	series := FilterAndAggregate(ds, day("2024-02-01"), day("2024-01-01"), model.AggDaily)
	if len(series) != 0 {
		t.Errorf("inverted range should degrade to empty, got %d entries", len(series))
	}
}

func TestFilterAndAggregate_EmptyDataset(t *testing.T) {
	series := FilterAndAggregate(model.Dataset{}, day("2024-01-01"), day("2024-12-31"), model.AggDaily)
	if len(series) != 0 {
		t.Errorf("expected empty series, got %d entries", len(series))
	}
}

func TestFilterAndAggregate_OrderedAscending(t *testing.T) {
	ds := model.Dataset{
		rec("2024-03-01T10:00:00Z", 100),
		rec("2024-01-01T10:00:00Z", 200),
		rec("2024-02-01T10:00:00Z", 300),
	}
	series := FilterAndAggregate(ds, day("2024-01-01"), day("2024-12-31"), model.AggMonthly)
	for i := 1; i < len(series); i++ {
		if !series[i-1].BucketStart.Before(series[i].BucketStart) {
			t.Errorf("series not ascending at %d: %v >= %v",
				i, series[i-1].BucketStart, series[i].BucketStart)
		}
	}
}

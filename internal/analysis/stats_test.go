package analysis

import (
	"testing"
	"time"

	"awattar-dashboard/internal/model"
)

func TestSummarize(t *testing.T) {
	series := model.AggregatedSeries{
		{BucketStart: time.Now(), AvgPriceCtPerKWh: 10},
		{BucketStart: time.Now(), AvgPriceCtPerKWh: 30},
		{BucketStart: time.Now(), AvgPriceCtPerKWh: 20},
	}
	stats := Summarize(series)
	if stats.Avg == nil || stats.Min == nil || stats.Max == nil {
		t.Fatal("expected all stats set for non-empty series")
	}
	if *stats.Avg != 20 {
		t.Errorf("avg: expected 20, got %v", *stats.Avg)
	}
	if *stats.Min != 10 {
		t.Errorf("min: expected 10, got %v", *stats.Min)
	}
	if *stats.Max != 30 {
		t.Errorf("max: expected 30, got %v", *stats.Max)
	}
}

func TestSummarize_NegativePrices(t *testing.T) {
	// Day-ahead prices go negative; min must track below zero.
	series := model.AggregatedSeries{
		{AvgPriceCtPerKWh: -5},
		{AvgPriceCtPerKWh: 15},
	}
	stats := Summarize(series)
	if *stats.Min != -5 {
		t.Errorf("min: expected -5, got %v", *stats.Min)
	}
	if *stats.Avg != 5 {
		t.Errorf("avg: expected 5, got %v", *stats.Avg)
	}
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(model.AggregatedSeries{})
	if stats.Avg != nil || stats.Min != nil || stats.Max != nil {
		t.Errorf("expected all-nil stats on empty input, got %+v", stats)
	}
}

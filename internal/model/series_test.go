package model

import (
	"testing"
	"time"
)

func TestParseAggMode(t *testing.T) {
	cases := []struct {
		in      string
		want    AggMode
		wantErr bool
	}{
		{"hourly", AggHourly, false},
		{"Daily", AggDaily, false},
		{" MONTHLY ", AggMonthly, false},
		{"", AggDaily, false}, // dashboard default view
		{"weekly", "", true},
	}
	for _, c := range cases {
		got, err := ParseAggMode(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseAggMode(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAggMode(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseAggMode(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestPriceRecordDate(t *testing.T) {
	r := PriceRecord{
		StartTime: time.Date(2024, 5, 17, 23, 0, 0, 0, time.UTC),
	}
	want := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	if !r.Date().Equal(want) {
		t.Errorf("Date() = %v, want %v", r.Date(), want)
	}
}

func TestDatasetDateBounds(t *testing.T) {
	var empty Dataset
	if _, ok := empty.MinDate(); ok {
		t.Error("empty dataset must report no min date")
	}

	ds := Dataset{
		{StartTime: time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)},
		{StartTime: time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)},
	}
	minDate, ok := ds.MinDate()
	if !ok || !minDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected min date: %v", minDate)
	}
	maxDate, ok := ds.MaxDate()
	if !ok || !maxDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected max date: %v", maxDate)
	}
}

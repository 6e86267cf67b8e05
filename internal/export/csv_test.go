package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"awattar-dashboard/internal/model"
)

func TestWriteCSV(t *testing.T) {
	series := model.AggregatedSeries{
		{BucketStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), AvgPriceCtPerKWh: 40},
		{BucketStart: time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), AvgPriceCtPerKWh: 20},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, series); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `Zeitpunkt,Preis (ct/kWh)` {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2024-01-01T00:00:00Z,40.0000" {
		t.Errorf("unexpected row 1: %q", lines[1])
	}
	if lines[2] != "2024-01-01T01:00:00Z,20.0000" {
		t.Errorf("unexpected row 2: %q", lines[2])
	}
}

func TestWriteCSV_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}
}

func TestFileName(t *testing.T) {
	got := FileName(model.AggDaily,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		"csv")
	want := "awattar_daily_2024-01-01_2024-03-31.csv"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

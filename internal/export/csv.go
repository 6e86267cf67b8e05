package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"awattar-dashboard/internal/model"
)

// Column headers of the table download. German labels are part of the
// contract with the dashboard frontend.
const (
	colTimestamp = "Zeitpunkt"
	colPrice     = "Preis (ct/kWh)"
)

// WriteCSV writes the aggregated series as UTF-8 CSV: one row per bucket,
// columns Zeitpunkt (RFC3339) and Preis (ct/kWh).
func WriteCSV(w io.Writer, series model.AggregatedSeries) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{colTimestamp, colPrice}); err != nil {
		return err
	}
	for _, p := range series {
		row := []string{
			fmtTime(p.BucketStart),
			fmtFloat(p.AvgPriceCtPerKWh),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the series to a file at path.
func WriteCSVFile(path string, series model.AggregatedSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, series); err != nil {
		return err
	}
	return f.Close()
}

// FileName builds the download name from the active view, e.g.
// "awattar_daily_2024-01-01_2024-03-31.csv".
func FileName(mode model.AggMode, startDate, endDate time.Time, ext string) string {
	return fmt.Sprintf("awattar_%s_%s_%s.%s",
		mode,
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"),
		ext,
	)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}

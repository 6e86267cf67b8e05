package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"awattar-dashboard/internal/model"
)

// BuildPDF renders a one-page summary report followed by the price table.
func BuildPDF(series model.AggregatedSeries, stats model.Stats, tariffs []model.TariffLine, mode model.AggMode, startDate, endDate time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "aWATTar Strompreise - Tarifvergleich")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Ansicht: %s", mode))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Zeitraum: %s - %s",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Durchschnittspreis: %s ct/kWh", fmtOptional(stats.Avg)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Niedrigster Preis: %s ct/kWh", fmtOptional(stats.Min)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Hoechster Preis: %s ct/kWh", fmtOptional(stats.Max)))
	pdf.Ln(8)

	for _, t := range tariffs {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.2f ct/kWh", t.Name, t.PriceCtPerKWh))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, colTimestamp, "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, colPrice, "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, p := range series {
		pdf.CellFormat(70, 6, fmtTime(p.BucketStart), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.4f", p.AvgPriceCtPerKWh), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fmtOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

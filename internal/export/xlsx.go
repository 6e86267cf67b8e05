package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"awattar-dashboard/internal/model"
)

// BuildXLSX renders the filtered series plus a summary sheet as a workbook.
func BuildXLSX(series model.AggregatedSeries, stats model.Stats, tariffs []model.TariffLine, mode model.AggMode, startDate, endDate time.Time) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	pricesSheet := "prices"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(pricesSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "aWATTar Strompreise")
	_ = f.SetCellValue(summarySheet, "A3", "Ansicht")
	_ = f.SetCellValue(summarySheet, "B3", string(mode))
	_ = f.SetCellValue(summarySheet, "A4", "Von")
	_ = f.SetCellValue(summarySheet, "B4", startDate.Format("2006-01-02"))
	_ = f.SetCellValue(summarySheet, "A5", "Bis")
	_ = f.SetCellValue(summarySheet, "B5", endDate.Format("2006-01-02"))

	_ = f.SetCellValue(summarySheet, "A7", "Durchschnittspreis (ct/kWh)")
	setOptionalCell(f, summarySheet, "B7", stats.Avg)
	_ = f.SetCellValue(summarySheet, "A8", "Niedrigster Preis (ct/kWh)")
	setOptionalCell(f, summarySheet, "B8", stats.Min)
	_ = f.SetCellValue(summarySheet, "A9", "Höchster Preis (ct/kWh)")
	setOptionalCell(f, summarySheet, "B9", stats.Max)

	row := 11
	for _, t := range tariffs {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), t.Name)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), t.PriceCtPerKWh)
		row++
	}

	_ = f.SetCellValue(pricesSheet, "A1", colTimestamp)
	_ = f.SetCellValue(pricesSheet, "B1", colPrice)
	for i, p := range series {
		r := i + 2
		_ = f.SetCellValue(pricesSheet, fmt.Sprintf("A%d", r), fmtTime(p.BucketStart))
		_ = f.SetCellValue(pricesSheet, fmt.Sprintf("B%d", r), p.AvgPriceCtPerKWh)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setOptionalCell(f *excelize.File, sheet, cell string, v *float64) {
	if v == nil {
		_ = f.SetCellValue(sheet, cell, "N/A")
		return
	}
	_ = f.SetCellValue(sheet, cell, *v)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"awattar-dashboard/internal/analysis"
	"awattar-dashboard/internal/api/models"
	"awattar-dashboard/internal/data"
	"awattar-dashboard/internal/export"
	"awattar-dashboard/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "summary":
		cmdSummary(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	case "patterns":
		cmdPatterns(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli summary  --data strompreise_2024_2025.json --start 2024-01-01 --end 2024-12-31 --mode daily")
	fmt.Println("  cli export   --data strompreise_2024_2025.json --mode monthly --format csv --out results/prices.csv")
	fmt.Println("  cli patterns --data strompreise_2024_2025.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - summary prints avg/min/max (ct/kWh) plus the flat-rate tariff lines")
	fmt.Println("  - omitted --start/--end default to the full range of the data file")
	fmt.Println("  - patterns aggregates over the whole file, ignoring any date range")
}

func cmdSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	dataPath := fs.String("data", "strompreise_2024_2025.json", "Path to aWATTar JSON dump")
	startStr := fs.String("start", "", "Start date YYYY-MM-DD (default: first day in data)")
	endStr := fs.String("end", "", "End date YYYY-MM-DD (default: last day in data)")
	modeStr := fs.String("mode", "daily", "Aggregation: hourly, daily or monthly")
	_ = fs.Parse(args)

	ds, p := loadAndResolve(*dataPath, *startStr, *endStr, *modeStr)
	series := analysis.FilterAndAggregate(ds, p.StartDate, p.EndDate, p.Mode)
	stats := analysis.Summarize(series)

	fmt.Printf("Records: %d  Buckets: %d  Mode: %s  Range: %s..%s\n",
		len(ds), len(series), p.Mode,
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
	fmt.Printf("Durchschnittspreis: %s ct/kWh\n", fmtStat(stats.Avg))
	fmt.Printf("Niedrigster Preis:  %s ct/kWh\n", fmtStat(stats.Min))
	fmt.Printf("Hoechster Preis:    %s ct/kWh\n", fmtStat(stats.Max))
	fmt.Println()
	for _, t := range model.DefaultTariffs() {
		fmt.Printf("%s: %.2f ct/kWh\n", t.Name, t.PriceCtPerKWh)
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dataPath := fs.String("data", "strompreise_2024_2025.json", "Path to aWATTar JSON dump")
	startStr := fs.String("start", "", "Start date YYYY-MM-DD (default: first day in data)")
	endStr := fs.String("end", "", "End date YYYY-MM-DD (default: last day in data)")
	modeStr := fs.String("mode", "daily", "Aggregation: hourly, daily or monthly")
	format := fs.String("format", "csv", "Output format: csv, xlsx or pdf")
	outPath := fs.String("out", "", "Output path (default: awattar_<mode>_<start>_<end>.<format>)")
	_ = fs.Parse(args)

	ds, p := loadAndResolve(*dataPath, *startStr, *endStr, *modeStr)
	series := analysis.FilterAndAggregate(ds, p.StartDate, p.EndDate, p.Mode)
	stats := analysis.Summarize(series)

	out := *outPath
	if out == "" {
		out = export.FileName(p.Mode, p.StartDate, p.EndDate, *format)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
	}

	switch *format {
	case "csv":
		if err := export.WriteCSVFile(out, series); err != nil {
			panic(err)
		}
	case "xlsx":
		raw, err := export.BuildXLSX(series, stats, model.DefaultTariffs(), p.Mode, p.StartDate, p.EndDate)
		if err != nil {
			panic(err)
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			panic(err)
		}
	case "pdf":
		raw, err := export.BuildPDF(series, stats, model.DefaultTariffs(), p.Mode, p.StartDate, p.EndDate)
		if err != nil {
			panic(err)
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			panic(err)
		}
	default:
		fmt.Printf("unknown format %q (want csv, xlsx or pdf)\n", *format)
		os.Exit(2)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(series), out)
}

func cmdPatterns(args []string) {
	fs := flag.NewFlagSet("patterns", flag.ExitOnError)
	dataPath := fs.String("data", "strompreise_2024_2025.json", "Path to aWATTar JSON dump")
	_ = fs.Parse(args)

	ds, err := data.LoadAwattarJSON(*dataPath)
	if err != nil {
		panic(err)
	}

	fmt.Println("Durchschnittlicher Preis pro Stunde (ct/kWh):")
	for _, h := range analysis.HourlyPattern(ds) {
		fmt.Printf("  %02d:00  %7.3f\n", h.Hour, h.AvgPriceCtPerKWh)
	}
	fmt.Println()
	fmt.Println("Durchschnittlicher Preis pro Wochentag (ct/kWh):")
	for _, w := range analysis.WeekdayPattern(ds) {
		if w.AvgPriceCtPerKWh == nil {
			fmt.Printf("  %-9s   N/A\n", w.Weekday)
			continue
		}
		fmt.Printf("  %-9s %7.3f\n", w.Weekday, *w.AvgPriceCtPerKWh)
	}
}

// fmtStat renders an optional statistic, "N/A" when absent.
func fmtStat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// loadAndResolve loads the dump and resolves the query the same way the API
// does: missing bounds fall back to the edges of the data.
func loadAndResolve(dataPath, startStr, endStr, modeStr string) (model.Dataset, models.ParsedQuery) {
	ds, err := data.LoadAwattarJSON(dataPath)
	if err != nil {
		panic(err)
	}

	q := models.DashboardQuery{StartDate: startStr, EndDate: endStr, Mode: modeStr}
	p, err := q.Parse()
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	if !p.HasStart {
		if d, ok := ds.MinDate(); ok {
			p.StartDate = d
		}
	}
	if !p.HasEnd {
		if d, ok := ds.MaxDate(); ok {
			p.EndDate = d
		}
	}
	return ds, p
}

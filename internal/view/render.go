package view

import (
	"time"

	"awattar-dashboard/internal/analysis"
	"awattar-dashboard/internal/model"
)

// Controls are the session inputs of one render cycle: the selected date
// range (inclusive calendar dates) and the aggregation mode.
type Controls struct {
	StartDate time.Time
	EndDate   time.Time
	Mode      model.AggMode
}

// ViewModel is everything the presentation layer needs for one full page:
// the filtered/aggregated series for the time chart and table, the two
// pattern tables for the bar charts, summary statistics, and the tariff
// reference lines.
type ViewModel struct {
	Mode      model.AggMode          `json:"mode"`
	StartDate time.Time              `json:"start_date"`
	EndDate   time.Time              `json:"end_date"`
	Series    model.AggregatedSeries `json:"series"`
	ByHour    []model.HourAverage    `json:"by_hour"`
	ByWeekday []model.WeekdayAverage `json:"by_weekday"`
	Stats     model.Stats            `json:"stats"`
	Tariffs   []model.TariffLine     `json:"tariffs"`

	// Date-picker bounds, nil on an empty dataset.
	DataMinDate *time.Time `json:"data_min_date"`
	DataMaxDate *time.Time `json:"data_max_date"`
}

// Render runs the whole pipeline for one interaction: filter, aggregate,
// analyze patterns, summarize. It is pure; re-running with the same inputs
// produces the same ViewModel. The pattern tables always cover the full
// dataset regardless of the control's date range.
func Render(ds model.Dataset, controls Controls, tariffs []model.TariffLine) ViewModel {
	series := analysis.FilterAndAggregate(ds, controls.StartDate, controls.EndDate, controls.Mode)

	vm := ViewModel{
		Mode:      controls.Mode,
		StartDate: controls.StartDate,
		EndDate:   controls.EndDate,
		Series:    series,
		ByHour:    analysis.HourlyPattern(ds),
		ByWeekday: analysis.WeekdayPattern(ds),
		Stats:     analysis.Summarize(series),
		Tariffs:   tariffs,
	}
	if minDate, ok := ds.MinDate(); ok {
		vm.DataMinDate = &minDate
	}
	if maxDate, ok := ds.MaxDate(); ok {
		vm.DataMaxDate = &maxDate
	}
	return vm
}

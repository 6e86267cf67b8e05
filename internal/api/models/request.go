package models

import (
	"fmt"
	"time"

	"awattar-dashboard/internal/model"
)

// DashboardQuery carries the session inputs of one render cycle. Dates are
// inclusive calendar dates in YYYY-MM-DD; empty dates default to the full
// data range, an empty mode defaults to daily.
type DashboardQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Mode      string `form:"mode"`
}

// ExportQuery is DashboardQuery plus the download format.
type ExportQuery struct {
	DashboardQuery
	Format string `form:"format"`
}

// ParsedQuery is the validated form of a DashboardQuery.
type ParsedQuery struct {
	StartDate time.Time
	EndDate   time.Time
	// HasStart/HasEnd report whether the client supplied the bound or left
	// it to default to the edge of the dataset.
	HasStart bool
	HasEnd   bool
	Mode     model.AggMode
}

// Parse validates the raw query. An inverted range is NOT rejected here; it
// flows through the pipeline and degrades to an empty result.
func (q DashboardQuery) Parse() (ParsedQuery, error) {
	var p ParsedQuery

	mode, err := model.ParseAggMode(q.Mode)
	if err != nil {
		return p, err
	}
	p.Mode = mode

	if q.StartDate != "" {
		t, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return p, fmt.Errorf("start_date must be in YYYY-MM-DD format")
		}
		p.StartDate = t.UTC()
		p.HasStart = true
	}
	if q.EndDate != "" {
		t, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return p, fmt.Errorf("end_date must be in YYYY-MM-DD format")
		}
		p.EndDate = t.UTC()
		p.HasEnd = true
	}
	return p, nil
}

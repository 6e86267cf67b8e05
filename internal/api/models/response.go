package models

import (
	"time"

	"awattar-dashboard/internal/model"
)

// SeriesResponse is the payload of GET /api/v1/series.
type SeriesResponse struct {
	Mode      model.AggMode          `json:"mode"`
	StartDate time.Time              `json:"start_date"`
	EndDate   time.Time              `json:"end_date"`
	Count     int                    `json:"count"`
	Series    model.AggregatedSeries `json:"series"`
}

// PatternsResponse is the payload of GET /api/v1/patterns. Both tables cover
// the full dataset, never a filtered window.
type PatternsResponse struct {
	ByHour    []model.HourAverage    `json:"by_hour"`
	ByWeekday []model.WeekdayAverage `json:"by_weekday"`
}

// StatsResponse is the payload of GET /api/v1/stats. The fields of Stats are
// null when the filtered series is empty.
type StatsResponse struct {
	Mode      model.AggMode `json:"mode"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Stats     model.Stats   `json:"stats"`
}

// TariffsResponse is the payload of GET /api/v1/tariffs.
type TariffsResponse struct {
	Tariffs []model.TariffLine `json:"tariffs"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

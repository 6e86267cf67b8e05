package model

import "time"

// AwattarResponse matches the JSON shape of the aWATTar market data dump.
//
// Example:
// {
//   "object": "list",
//   "data": [ ... ]
// }
type AwattarResponse struct {
	Object string         `json:"object"`
	Data   []AwattarEntry `json:"data"`
}

// AwattarEntry is one raw hour slot from the aWATTar API dump.
// Timestamps are epoch milliseconds, UTC. Marketprice is EUR/MWh.
type AwattarEntry struct {
	StartTimestamp int64   `json:"start_timestamp"`
	EndTimestamp   int64   `json:"end_timestamp"`
	MarketPrice    float64 `json:"marketprice"`
	Unit           string  `json:"unit"`
}

// PriceRecord is one hour slot after conversion. All times are UTC, which is
// the epoch basis of the source data; hour and weekday extraction downstream
// use the same basis, no local-time shift anywhere.
type PriceRecord struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// MarketPriceEURPerMWh is the raw day-ahead price as published.
	MarketPriceEURPerMWh float64 `json:"market_price_eur_per_mwh"`

	// PriceCtPerKWh is MarketPriceEURPerMWh / 10.
	PriceCtPerKWh float64 `json:"price_ct_per_kwh"`
}

func (r PriceRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Date returns the calendar day of StartTime, midnight-aligned in UTC.
// Used as the filter key for date-range selection.
func (r PriceRecord) Date() time.Time {
	y, m, d := r.StartTime.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dataset is the loaded price history, ordered by StartTime ascending as
// delivered by the source. It is never re-sorted and never mutated after
// load; every consumer treats it as read-only.
type Dataset []PriceRecord

// MinDate returns the calendar day of the earliest record, ok=false on an
// empty dataset. Serves as the lower bound for date-range pickers.
func (ds Dataset) MinDate() (time.Time, bool) {
	if len(ds) == 0 {
		return time.Time{}, false
	}
	return ds[0].Date(), true
}

// MaxDate returns the calendar day of the latest record.
func (ds Dataset) MaxDate() (time.Time, bool) {
	if len(ds) == 0 {
		return time.Time{}, false
	}
	return ds[len(ds)-1].Date(), true
}

package data

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"awattar-dashboard/internal/model"
)

// LoadAwattarJSON reads an aWATTar market data dump from disk and converts it
// into a model.Dataset. Insertion order of the source array is preserved.
//
// A missing file returns the os.ReadFile error unchanged so callers can test
// it with errors.Is(err, fs.ErrNotExist). Anything structurally wrong with
// the content returns a *MalformedDataError.
func LoadAwattarJSON(path string) (model.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp model.AwattarResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &MalformedDataError{Path: path, Reason: err.Error()}
	}
	if resp.Data == nil {
		return nil, &MalformedDataError{Path: path, Reason: `missing "data" array`}
	}

	ds := make(model.Dataset, 0, len(resp.Data))
	for i, e := range resp.Data {
		rec, err := convertEntry(e)
		if err != nil {
			return nil, &MalformedDataError{
				Path:   path,
				Reason: fmt.Sprintf("data[%d]: %v", i, err),
			}
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

// convertEntry turns one raw slot into a PriceRecord: epoch ms -> UTC time,
// EUR/MWh -> ct/kWh (divide by 10).
func convertEntry(e model.AwattarEntry) (model.PriceRecord, error) {
	if e.StartTimestamp <= 0 || e.EndTimestamp <= 0 {
		return model.PriceRecord{}, fmt.Errorf("non-positive timestamp (start=%d end=%d)", e.StartTimestamp, e.EndTimestamp)
	}
	if e.StartTimestamp >= e.EndTimestamp {
		return model.PriceRecord{}, fmt.Errorf("start_timestamp %d not before end_timestamp %d", e.StartTimestamp, e.EndTimestamp)
	}
	return model.PriceRecord{
		StartTime:            time.UnixMilli(e.StartTimestamp).UTC(),
		EndTime:              time.UnixMilli(e.EndTimestamp).UTC(),
		MarketPriceEURPerMWh: e.MarketPrice,
		PriceCtPerKWh:        e.MarketPrice / 10,
	}, nil
}

package handlers

import (
	"errors"
	"io/fs"
	"net/http"

	"awattar-dashboard/internal/analysis"
	"awattar-dashboard/internal/api/models"
	"awattar-dashboard/internal/data"
	"awattar-dashboard/internal/model"
	"awattar-dashboard/internal/observability/metrics"
	"awattar-dashboard/internal/view"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the price dashboard endpoints. All endpoints run
// the same load -> filter -> aggregate pipeline per request; only the file
// read is memoized, everything else is cheap enough to recompute.
type DashboardHandler struct {
	cache    *data.DatasetCache
	dataFile string
	tariffs  []model.TariffLine
}

func NewDashboardHandler(cache *data.DatasetCache, dataFile string, tariffs []model.TariffLine) *DashboardHandler {
	return &DashboardHandler{
		cache:    cache,
		dataFile: dataFile,
		tariffs:  tariffs,
	}
}

// GetDashboard handles GET /api/v1/dashboard: the full view model for one
// render cycle.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ds, p, ok := h.loadAndParse(c)
	if !ok {
		return
	}
	vm := view.Render(ds, view.Controls{
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Mode:      p.Mode,
	}, h.tariffs)
	c.JSON(http.StatusOK, vm)
}

// GetSeries handles GET /api/v1/series.
func (h *DashboardHandler) GetSeries(c *gin.Context) {
	ds, p, ok := h.loadAndParse(c)
	if !ok {
		return
	}
	series := analysis.FilterAndAggregate(ds, p.StartDate, p.EndDate, p.Mode)
	c.JSON(http.StatusOK, models.SeriesResponse{
		Mode:      p.Mode,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Count:     len(series),
		Series:    series,
	})
}

// GetPatterns handles GET /api/v1/patterns. No query parameters: the
// patterns always cover the full history.
func (h *DashboardHandler) GetPatterns(c *gin.Context) {
	ds, ok := h.loadDataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.PatternsResponse{
		ByHour:    analysis.HourlyPattern(ds),
		ByWeekday: analysis.WeekdayPattern(ds),
	})
}

// GetStats handles GET /api/v1/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ds, p, ok := h.loadAndParse(c)
	if !ok {
		return
	}
	series := analysis.FilterAndAggregate(ds, p.StartDate, p.EndDate, p.Mode)
	c.JSON(http.StatusOK, models.StatsResponse{
		Mode:      p.Mode,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Stats:     analysis.Summarize(series),
	})
}

// GetTariffs handles GET /api/v1/tariffs.
func (h *DashboardHandler) GetTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, models.TariffsResponse{Tariffs: h.tariffs})
}

// Reload handles POST /api/v1/reload: the explicit cache invalidation hook.
func (h *DashboardHandler) Reload(c *gin.Context) {
	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

// loadDataset loads the dataset through the cache and writes the error
// response itself when that fails.
func (h *DashboardHandler) loadDataset(c *gin.Context) (model.Dataset, bool) {
	ds, err := h.cache.Load(h.dataFile)
	if err != nil {
		writeDataError(c, h.dataFile, err)
		return nil, false
	}
	metrics.SetDatasetRecords(len(ds))
	return ds, true
}

// loadAndParse combines dataset loading with query validation and fills
// missing range bounds from the edges of the dataset.
func (h *DashboardHandler) loadAndParse(c *gin.Context) (model.Dataset, models.ParsedQuery, bool) {
	var q models.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBadRequest(c, err.Error())
		return nil, models.ParsedQuery{}, false
	}
	p, err := q.Parse()
	if err != nil {
		writeBadRequest(c, err.Error())
		return nil, models.ParsedQuery{}, false
	}

	ds, ok := h.loadDataset(c)
	if !ok {
		return nil, models.ParsedQuery{}, false
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
	return ds, p, true
}

func writeBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: msg,
		},
	})
}

// writeDataError maps loader failures onto the error envelope. Both cases
// are terminal for the request; nothing is retried and no partial result is
// rendered.
func writeDataError(c *gin.Context, path string, err error) {
	var malformed *data.MalformedDataError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_UNAVAILABLE",
				Message: "price data file not found: " + path,
			},
		})
	case errors.As(err, &malformed):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_MALFORMED",
				Message: malformed.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_LOAD_ERROR",
				Message: err.Error(),
			},
		})
	}
}

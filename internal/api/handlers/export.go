package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"awattar-dashboard/internal/analysis"
	"awattar-dashboard/internal/api/models"
	"awattar-dashboard/internal/export"

	"github.com/gin-gonic/gin"
)

// Export handles GET /api/v1/export: the currently filtered/aggregated
// series as a downloadable file. Formats: csv (default), xlsx, pdf.
func (h *DashboardHandler) Export(c *gin.Context) {
	var q models.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	format := strings.ToLower(strings.TrimSpace(q.Format))
	if format == "" {
		format = "csv"
	}

	p, err := q.DashboardQuery.Parse()
	if err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	ds, ok := h.loadDataset(c)
	if !ok {
		return
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

	series := analysis.FilterAndAggregate(ds, p.StartDate, p.EndDate, p.Mode)
	stats := analysis.Summarize(series)

	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, series); err != nil {
			writeExportError(c, err)
			return
		}
		sendAttachment(c, "text/csv; charset=utf-8",
			export.FileName(p.Mode, p.StartDate, p.EndDate, "csv"), buf.Bytes())
	case "xlsx":
		raw, err := export.BuildXLSX(series, stats, h.tariffs, p.Mode, p.StartDate, p.EndDate)
		if err != nil {
			writeExportError(c, err)
			return
		}
		sendAttachment(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			export.FileName(p.Mode, p.StartDate, p.EndDate, "xlsx"), raw)
	case "pdf":
		raw, err := export.BuildPDF(series, stats, h.tariffs, p.Mode, p.StartDate, p.EndDate)
		if err != nil {
			writeExportError(c, err)
			return
		}
		sendAttachment(c, "application/pdf",
			export.FileName(p.Mode, p.StartDate, p.EndDate, "pdf"), raw)
	default:
		writeBadRequest(c, "format must be csv, xlsx or pdf")
	}
}

func sendAttachment(c *gin.Context, contentType, filename string, raw []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, raw)
}

func writeExportError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "EXPORT_ERROR",
			Message: err.Error(),
		},
	})
}

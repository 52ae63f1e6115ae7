package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Angger-Raka/aplikasi-absensi/internal/dto"
	"github.com/Angger-Raka/aplikasi-absensi/internal/service"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler report endpoints
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Recap per-employee totals
// GET /api/v1/reports/recap?start_date&end_date
func (h *ReportHandler) Recap(c *gin.Context) {
	req, ok := bindRange(c)
	if !ok {
		return
	}

	rows, err := h.reportSvc.Recap(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		handleReportError(c, err)
		return
	}

	response.OK(c, rows)
}

// Violations violation notes in a date range
// GET /api/v1/reports/violations?start_date&end_date
func (h *ReportHandler) Violations(c *gin.Context) {
	req, ok := bindRange(c)
	if !ok {
		return
	}

	rows, err := h.reportSvc.Violations(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		handleReportError(c, err)
		return
	}

	response.OK(c, rows)
}

// ExportRecap recap as an .xlsx download
// GET /api/v1/reports/recap/export?start_date&end_date
func (h *ReportHandler) ExportRecap(c *gin.Context) {
	req, ok := bindRange(c)
	if !ok {
		return
	}

	buf, filename, err := h.reportSvc.ExportRecap(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		handleReportError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func bindRange(c *gin.Context) (*dto.DateRangeRequest, bool) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "start_date dan end_date wajib diisi")
		return nil, false
	}
	return &req, true
}

func handleReportError(c *gin.Context, err error) {
	if handleDateError(c, err) {
		return
	}
	response.InternalError(c)
}

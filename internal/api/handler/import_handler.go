package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Angger-Raka/aplikasi-absensi/internal/dto"
	"github.com/Angger-Raka/aplikasi-absensi/internal/parser"
	"github.com/Angger-Raka/aplikasi-absensi/internal/service"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/response"
)

// ImportHandler attendance-log upload endpoints
type ImportHandler struct {
	importSvc service.ImportService
}

// NewImportHandler creates an ImportHandler
func NewImportHandler(importSvc service.ImportService) *ImportHandler {
	return &ImportHandler{importSvc: importSvc}
}

// Import synchronizes an uploaded log
// POST /api/v1/imports   multipart/form-data: file, attendance_date
func (h *ImportHandler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "ukuran file melebihi batas")
			return
		}
		response.BadRequest(c, 17000, "file log absensi wajib diunggah")
		return
	}
	defer file.Close()

	var req dto.ImportRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "attendance_date wajib diisi")
		return
	}

	result, err := h.importSvc.ImportFromReader(c.Request.Context(), file, header.Filename, req.AttendanceDate)
	if err != nil {
		handleImportError(c, err)
		return
	}

	response.Created(c, result)
}

// Preview extracts an uploaded log without saving it
// POST /api/v1/imports/preview   multipart/form-data: file
func (h *ImportHandler) Preview(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "ukuran file melebihi batas")
			return
		}
		response.BadRequest(c, 17000, "file log absensi wajib diunggah")
		return
	}
	defer file.Close()

	entries, err := h.importSvc.Preview(file, header.Filename)
	if err != nil {
		handleImportError(c, err)
		return
	}

	response.OK(c, gin.H{
		"columns": parser.Columns,
		"entries": entries,
	})
}

// ListImports recent import history
// GET /api/v1/imports?limit=20
func (h *ImportHandler) ListImports(c *gin.Context) {
	var req dto.ImportListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parameter tidak valid")
		return
	}

	batches, err := h.importSvc.ListImportBatches(c.Request.Context(), req.Limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, batches)
}

// handleImportError maps import failures; anything else is a rolled-back
// persistence failure and is reported verbatim.
func handleImportError(c *gin.Context, err error) {
	switch {
	case handleDateError(c, err):
	case errors.Is(err, parser.ErrUnsupportedFormat):
		response.BadRequest(c, 17005, "format file tidak didukung (gunakan .xls, .xlsx atau .csv)")
	case errors.Is(err, parser.ErrSourceUnreadable):
		response.UnprocessableEntity(c, 17006, "file log absensi tidak dapat dibaca", err.Error())
	case errors.Is(err, service.ErrNoEntries):
		response.UnprocessableEntity(c, 17002, "tidak ada data absensi dalam file", err.Error())
	case errors.Is(err, service.ErrMalformedEntry):
		response.UnprocessableEntity(c, 17003, "data absensi tidak lengkap, impor dibatalkan", err.Error())
	case errors.Is(err, service.ErrImportInProgress):
		response.Conflict(c, 17004, "impor untuk tanggal ini sedang berjalan")
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, 50001, "impor gagal, seluruh data dibatalkan", err.Error())
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Angger-Raka/aplikasi-absensi/internal/dto"
	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
	"github.com/Angger-Raka/aplikasi-absensi/internal/service"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/response"
)

// AttendanceHandler attendance record endpoints
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// ListRecords records in a date range
// GET /api/v1/attendance?start_date=2025-10-01&end_date=2025-10-31
func (h *AttendanceHandler) ListRecords(c *gin.Context) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "start_date dan end_date wajib diisi")
		return
	}

	rows, err := h.attendanceSvc.ListRecords(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, rows)
}

// Review sets the validation status and editor note
// PUT /api/v1/attendance/:id/review
func (h *AttendanceHandler) Review(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parameter tidak valid")
		return
	}

	rec, err := h.attendanceSvc.Review(c.Request.Context(), id, model.ValidationStatus(req.Status), req.Note)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, rec)
}

// AddViolation records a violation on one attendance record
// POST /api/v1/attendance/:id/violations
func (h *AttendanceHandler) AddViolation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parameter tidak valid")
		return
	}

	note, err := h.attendanceSvc.AddViolation(c.Request.Context(), id, &req)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.Created(c, note)
}

func handleAttendanceError(c *gin.Context, err error) {
	switch {
	case handleDateError(c, err):
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 18001, "catatan absensi tidak ditemukan")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 18002, "status validasi harus PENDING, VALID atau REJECTED")
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 18003, "waktu harus berformat HH:MM")
	default:
		response.InternalError(c)
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Angger-Raka/aplikasi-absensi/internal/service"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/response"
)

// Handler aggregates every handler
type Handler struct {
	Import     *ImportHandler
	Attendance *AttendanceHandler
	Report     *ReportHandler
	Department *DepartmentHandler
}

// NewHandler creates the Handler aggregate
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Import:     NewImportHandler(svc.Import),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Report:     NewReportHandler(svc.Report),
		Department: NewDepartmentHandler(svc.Department),
	}
}

// parseID reads the :id path parameter; writes 400 and returns false when invalid.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "id tidak valid")
		return 0, false
	}
	return uint(id), true
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// handleDateError maps shared date-range errors; returns false when err is not one of them.
func handleDateError(c *gin.Context, err error) bool {
	if errors.Is(err, service.ErrInvalidDate) {
		response.BadRequest(c, 17001, "tanggal harus berformat YYYY-MM-DD")
		return true
	}
	return false
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Angger-Raka/aplikasi-absensi/internal/service"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/response"
)

// DepartmentHandler department endpoints
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments departments with employee counts
// GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

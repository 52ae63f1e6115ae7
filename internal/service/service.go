package service

import (
	"go.uber.org/zap"

	"github.com/Angger-Raka/aplikasi-absensi/internal/parser"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
)

// Service aggregates every service
type Service struct {
	Import     ImportService
	Attendance AttendanceService
	Report     ReportService
	Department DepartmentService
}

// NewService wires the services over repo. locker guards concurrent imports per date.
func NewService(repo *repository.Repository, locker DateLocker, logger *zap.Logger) *Service {
	extractor := parser.NewExtractor(logger.Named("parser"))
	return &Service{
		Import:     NewImportService(repo, extractor, locker, logger),
		Attendance: NewAttendanceService(repo, logger),
		Report:     NewReportService(repo, logger),
		Department: NewDepartmentService(repo, logger),
	}
}

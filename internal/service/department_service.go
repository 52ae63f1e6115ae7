package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
)

// DepartmentService department queries. Departments are created by import only.
type DepartmentService interface {
	List(ctx context.Context) ([]model.DepartmentSummary, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService creates a DepartmentService
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) List(ctx context.Context) ([]model.DepartmentSummary, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", zap.Error(err))
		return nil, err
	}
	return depts, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every repository over one connection or transaction.
type Repository struct {
	db *gorm.DB

	Department  DepartmentRepository
	Employee    EmployeeRepository
	Attendance  AttendanceRepository
	Violation   ViolationRepository
	ImportBatch ImportBatchRepository
	Report      ReportRepository
}

// NewRepository builds the aggregate over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		Department:  NewDepartmentRepo(db),
		Employee:    NewEmployeeRepo(db),
		Attendance:  NewAttendanceRepo(db),
		Violation:   NewViolationRepo(db),
		ImportBatch: NewImportBatchRepo(db),
		Report:      NewReportRepo(db),
	}
}

// BeginTx starts a transaction. The caller owns Commit/Rollback.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx returns an aggregate whose repositories all run inside tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

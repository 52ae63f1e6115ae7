package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
)

// EmployeeRepository employee data access
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByWorkNo(ctx context.Context, workNo int) (*model.Employee, error)
	UpdateProfile(ctx context.Context, workNo int, name string, deptID *uint) error
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates an EmployeeRepository
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepo) GetByWorkNo(ctx context.Context, workNo int) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("work_no = ?", workNo).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateProfile overwrites name and department reference; a nil deptID clears it.
func (r *employeeRepo) UpdateProfile(ctx context.Context, workNo int, name string, deptID *uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("work_no = ?", workNo).
		Updates(map[string]interface{}{
			"nama_karyawan": name,
			"dept_id":       deptID,
		}).Error
}

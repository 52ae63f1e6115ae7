package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
)

// DepartmentRepository department data access
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByName(ctx context.Context, name string) (*model.Department, error)
	List(ctx context.Context) ([]model.DepartmentSummary, error)
}

type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo creates a DepartmentRepository
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

// GetByName matches the name exactly; returns gorm.ErrRecordNotFound when absent.
func (r *departmentRepo) GetByName(ctx context.Context, name string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Where("nama_departemen = ?", name).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// List returns every department by name with its employee count.
func (r *departmentRepo) List(ctx context.Context) ([]model.DepartmentSummary, error) {
	rows := make([]model.DepartmentSummary, 0)
	err := r.db.WithContext(ctx).
		Table("departemen AS d").
		Select("d.dept_id, d.nama_departemen, COUNT(k.work_no) AS jumlah_karyawan").
		Joins("LEFT JOIN karyawan AS k ON k.dept_id = d.dept_id").
		Group("d.dept_id, d.nama_departemen").
		Order("d.nama_departemen ASC").
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
)

// ReportRepository aggregate queries over attendance
type ReportRepository interface {
	Recap(ctx context.Context, start, end string) ([]model.RecapRow, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates a ReportRepository
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

// Recap counts records per employee with at least one record in [start, end].
func (r *reportRepo) Recap(ctx context.Context, start, end string) ([]model.RecapRow, error) {
	rows := make([]model.RecapRow, 0)
	err := r.db.WithContext(ctx).
		Table("catatan_absensi AS ca").
		Select(`k.work_no, k.nama_karyawan, d.nama_departemen,
			COUNT(ca.record_id) AS total_hari_masuk,
			SUM(CASE WHEN ca.status_validasi = ? THEN 1 ELSE 0 END) AS total_pending,
			SUM(CASE WHEN ca.waktu_anomali IS NOT NULL THEN 1 ELSE 0 END) AS total_anomali`,
			model.StatusPending).
		Joins("JOIN karyawan AS k ON k.work_no = ca.work_no").
		Joins("LEFT JOIN departemen AS d ON d.dept_id = k.dept_id").
		Where("ca.tanggal_absensi BETWEEN ? AND ?", start, end).
		Group("k.work_no, k.nama_karyawan, d.nama_departemen").
		Order("k.nama_karyawan ASC, k.work_no ASC").
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
)

// ViolationRepository violation note data access
type ViolationRepository interface {
	Create(ctx context.Context, note *model.ViolationNote) error
	ListByRecord(ctx context.Context, recordID uint) ([]model.ViolationNote, error)
	ListByDateRange(ctx context.Context, start, end string) ([]model.ViolationView, error)
}

type violationRepo struct {
	db *gorm.DB
}

// NewViolationRepo creates a ViolationRepository
func NewViolationRepo(db *gorm.DB) ViolationRepository {
	return &violationRepo{db: db}
}

func (r *violationRepo) Create(ctx context.Context, note *model.ViolationNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *violationRepo) ListByRecord(ctx context.Context, recordID uint) ([]model.ViolationNote, error) {
	notes := make([]model.ViolationNote, 0)
	err := r.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("pelanggaran_id ASC").
		Find(&notes).Error
	return notes, err
}

func (r *violationRepo) ListByDateRange(ctx context.Context, start, end string) ([]model.ViolationView, error) {
	rows := make([]model.ViolationView, 0)
	err := r.db.WithContext(ctx).
		Table("pelanggaran AS p").
		Select(`p.pelanggaran_id, p.record_id, ca.tanggal_absensi, ca.work_no, k.nama_karyawan,
			d.nama_departemen,
			COALESCE(p.waktu_mulai, '') AS waktu_mulai,
			COALESCE(p.waktu_selesai, '') AS waktu_selesai,
			COALESCE(p.catatan_pelanggaran, '') AS catatan_pelanggaran`).
		Joins("JOIN catatan_absensi AS ca ON ca.record_id = p.record_id").
		Joins("JOIN karyawan AS k ON k.work_no = ca.work_no").
		Joins("LEFT JOIN departemen AS d ON d.dept_id = k.dept_id").
		Where("ca.tanggal_absensi BETWEEN ? AND ?", start, end).
		Order("ca.tanggal_absensi ASC, k.nama_karyawan ASC, p.pelanggaran_id ASC").
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
)

// AttendanceRepository attendance record data access
type AttendanceRepository interface {
	Create(ctx context.Context, rec *model.AttendanceRecord) error
	GetByID(ctx context.Context, id uint) (*model.AttendanceRecord, error)
	FindByWorkNoAndDate(ctx context.Context, workNo int, date string) (*model.AttendanceRecord, error)
	UpdateTimes(ctx context.Context, rec *model.AttendanceRecord) error
	UpdateReview(ctx context.Context, id uint, status model.ValidationStatus, note *string) error
	ListByDateRange(ctx context.Context, start, end string) ([]model.AttendanceView, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *attendanceRepo) GetByID(ctx context.Context, id uint) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("record_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByWorkNoAndDate returns the lowest-id record for the pair, or gorm.ErrRecordNotFound.
func (r *attendanceRepo) FindByWorkNoAndDate(ctx context.Context, workNo int, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("work_no = ? AND tanggal_absensi = ?", workNo, date).
		Order("record_id ASC").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateTimes rewrites the imported fields and resets review status.
// The editor note is left alone.
func (r *attendanceRepo) UpdateTimes(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("record_id = ?", rec.RecordID).
		Updates(map[string]interface{}{
			"jam_masuk":       rec.ClockIn,
			"jam_pulang":      rec.ClockOut,
			"lembur_masuk":    rec.OvertimeIn,
			"lembur_pulang":   rec.OvertimeOut,
			"waktu_anomali":   rec.AnomalyTimes,
			"status_validasi": model.StatusPending,
		}).Error
}

// UpdateReview sets the review status. A nil note keeps the stored editor note.
func (r *attendanceRepo) UpdateReview(ctx context.Context, id uint, status model.ValidationStatus, note *string) error {
	updates := map[string]interface{}{"status_validasi": status}
	if note != nil {
		updates["catatan_editor"] = *note
	}
	return r.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("record_id = ?", id).
		Updates(updates).Error
}

// ListByDateRange returns records with start <= date <= end, ordered by date then employee name.
func (r *attendanceRepo) ListByDateRange(ctx context.Context, start, end string) ([]model.AttendanceView, error) {
	rows := make([]model.AttendanceView, 0)
	err := r.db.WithContext(ctx).
		Table("catatan_absensi AS ca").
		Select(`ca.record_id, ca.tanggal_absensi, ca.work_no, k.nama_karyawan, d.nama_departemen,
			ca.jam_masuk, ca.jam_pulang, ca.lembur_masuk, ca.lembur_pulang,
			ca.waktu_anomali, ca.status_validasi, ca.catatan_editor`).
		Joins("JOIN karyawan AS k ON k.work_no = ca.work_no").
		Joins("LEFT JOIN departemen AS d ON d.dept_id = k.dept_id").
		Where("ca.tanggal_absensi BETWEEN ? AND ?", start, end).
		Order("ca.tanggal_absensi ASC, k.nama_karyawan ASC, ca.record_id ASC").
		Scan(&rows).Error
	return rows, err
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/dto"
	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
)

// ── attendance errors ──

var (
	ErrRecordNotFound = errors.New("catatan absensi tidak ditemukan")
	ErrInvalidStatus  = errors.New("status validasi harus PENDING, VALID atau REJECTED")
	ErrInvalidTime    = errors.New("waktu harus berformat HH:MM")
)

// AttendanceService attendance queries and review operations
type AttendanceService interface {
	// ListRecords returns records in the inclusive range; unknown ranges yield an empty slice.
	ListRecords(ctx context.Context, start, end string) ([]model.AttendanceView, error)
	Review(ctx context.Context, recordID uint, status model.ValidationStatus, note *string) (*model.AttendanceRecord, error)
	AddViolation(ctx context.Context, recordID uint, req *dto.ViolationRequest) (*model.ViolationNote, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates an AttendanceService
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) ListRecords(ctx context.Context, start, end string) ([]model.AttendanceView, error) {
	ok, err := validateRange(start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.AttendanceView{}, nil
	}

	rows, err := s.repo.Attendance.ListByDateRange(ctx, start, end)
	if err != nil {
		s.logger.Error("failed to list attendance records",
			zap.String("start", start), zap.String("end", end), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *attendanceService) Review(ctx context.Context, recordID uint, status model.ValidationStatus, note *string) (*model.AttendanceRecord, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if _, err := s.getRecord(ctx, recordID); err != nil {
		return nil, err
	}

	if err := s.repo.Attendance.UpdateReview(ctx, recordID, status, note); err != nil {
		s.logger.Error("failed to review attendance record", zap.Uint("record_id", recordID), zap.Error(err))
		return nil, err
	}

	return s.getRecord(ctx, recordID)
}

func (s *attendanceService) AddViolation(ctx context.Context, recordID uint, req *dto.ViolationRequest) (*model.ViolationNote, error) {
	for _, v := range []string{req.StartTime, req.EndTime} {
		if _, err := time.Parse(timeLayout, v); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, v)
		}
	}
	if _, err := s.getRecord(ctx, recordID); err != nil {
		return nil, err
	}

	note := &model.ViolationNote{
		RecordID:  recordID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}
	if err := s.repo.Violation.Create(ctx, note); err != nil {
		s.logger.Error("failed to create violation note", zap.Uint("record_id", recordID), zap.Error(err))
		return nil, err
	}
	return note, nil
}

func (s *attendanceService) getRecord(ctx context.Context, id uint) (*model.AttendanceRecord, error) {
	rec, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("failed to load attendance record", zap.Uint("record_id", id), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

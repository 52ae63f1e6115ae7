package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/dto"
	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
	"github.com/Angger-Raka/aplikasi-absensi/internal/parser"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/checksum"
)

// ── import errors ──

var (
	ErrInvalidDate      = errors.New("tanggal harus berformat YYYY-MM-DD")
	ErrNoEntries        = errors.New("tidak ada data absensi yang dapat diekstrak dari file")
	ErrMalformedEntry   = errors.New("data absensi tidak lengkap")
	ErrImportInProgress = errors.New("impor untuk tanggal ini sedang berjalan")
)

const defaultBatchListLimit = 20

// ImportService synchronizes extracted attendance logs into the store.
//
// An import is all-or-nothing: every entry of one log is applied inside a
// single transaction, and re-importing the same log for the same date leaves
// row counts unchanged.
type ImportService interface {
	// Import applies already extracted entries for attendanceDate.
	Import(ctx context.Context, entries []parser.Entry, attendanceDate string) (*dto.ImportResult, error)
	// ImportFromFile extracts the log at path, then imports it.
	ImportFromFile(ctx context.Context, path, attendanceDate string) (*dto.ImportResult, error)
	// ImportFromReader is ImportFromFile for uploads; filename selects the format.
	ImportFromReader(ctx context.Context, r io.Reader, filename, attendanceDate string) (*dto.ImportResult, error)
	// Preview extracts without writing anything.
	Preview(r io.Reader, filename string) ([]parser.Entry, error)
	ListImportBatches(ctx context.Context, limit int) ([]model.ImportBatch, error)
}

type importService struct {
	repo      *repository.Repository
	extractor *parser.Extractor
	locker    DateLocker
	logger    *zap.Logger
}

// NewImportService creates an ImportService
func NewImportService(repo *repository.Repository, extractor *parser.Extractor, locker DateLocker, logger *zap.Logger) ImportService {
	return &importService{repo: repo, extractor: extractor, locker: locker, logger: logger}
}

// source describes where a batch came from, for the import history.
type source struct {
	name     string
	checksum string
}

func (s *importService) Import(ctx context.Context, entries []parser.Entry, attendanceDate string) (*dto.ImportResult, error) {
	return s.sync(ctx, entries, attendanceDate, source{name: "-", checksum: entriesChecksum(entries)})
}

func (s *importService) ImportFromFile(ctx context.Context, path, attendanceDate string) (*dto.ImportResult, error) {
	if err := validateDate(attendanceDate); err != nil {
		return nil, err
	}

	entries, err := s.extractor.ExtractFile(path)
	if err != nil {
		return nil, fmt.Errorf("ekstraksi %s gagal: %w", filepath.Base(path), err)
	}

	sum, err := checksum.FileChecksum(path)
	if err != nil {
		s.logger.Warn("failed to checksum attendance log", zap.String("file", path), zap.Error(err))
	}

	return s.sync(ctx, entries, attendanceDate, source{name: filepath.Base(path), checksum: sum})
}

func (s *importService) ImportFromReader(ctx context.Context, r io.Reader, filename, attendanceDate string) (*dto.ImportResult, error) {
	if err := validateDate(attendanceDate); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", parser.ErrSourceUnreadable, err)
	}

	entries, err := s.extractor.ExtractReader(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("ekstraksi %s gagal: %w", filepath.Base(filename), err)
	}

	return s.sync(ctx, entries, attendanceDate, source{name: filepath.Base(filename), checksum: checksum.BytesChecksum(data)})
}

func (s *importService) Preview(r io.Reader, filename string) ([]parser.Entry, error) {
	return s.extractor.ExtractReader(r, filename)
}

func (s *importService) ListImportBatches(ctx context.Context, limit int) ([]model.ImportBatch, error) {
	if limit <= 0 {
		limit = defaultBatchListLimit
	}
	batches, err := s.repo.ImportBatch.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list import batches", zap.Error(err))
		return nil, err
	}
	return batches, nil
}

// ═══════════════════════════════════════════════════════════
// sync: one transaction per log
// ═══════════════════════════════════════════════════════════

func (s *importService) sync(ctx context.Context, entries []parser.Entry, attendanceDate string, src source) (*dto.ImportResult, error) {
	if err := validateDate(attendanceDate); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	unlock, err := s.locker.Lock(ctx, attendanceDate)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	result := &dto.ImportResult{
		FileName:       src.name,
		Checksum:       src.checksum,
		AttendanceDate: attendanceDate,
		Total:          len(entries),
	}

	for i, entry := range entries {
		if err := s.syncEntry(ctx, txRepo, entry, attendanceDate, result); err != nil {
			// any failed entry discards the whole batch
			tx.Rollback()
			s.logger.Error("import failed, transaction rolled back",
				zap.String("date", attendanceDate),
				zap.Int("entry", i+1),
				zap.Int("work_no", entry.WorkNo),
				zap.Error(err))
			return nil, fmt.Errorf("data ke-%d (No %d) gagal, seluruh impor dibatalkan: %w", i+1, entry.WorkNo, err)
		}
	}

	batch := &model.ImportBatch{
		FileName:   src.name,
		Checksum:   src.checksum,
		Date:       attendanceDate,
		EntryCount: len(entries),
	}
	if err := txRepo.ImportBatch.Create(ctx, batch); err != nil {
		tx.Rollback()
		s.logger.Error("failed to record import batch", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("failed to commit import", zap.Error(err))
		return nil, err
	}

	result.BatchID = batch.BatchID
	s.logger.Info("attendance log imported",
		zap.String("file", src.name),
		zap.String("date", attendanceDate),
		zap.Int("entries", result.Total),
		zap.Int("records_created", result.RecordsCreated),
		zap.Int("records_updated", result.RecordsUpdated))

	return result, nil
}

func (s *importService) syncEntry(ctx context.Context, repo *repository.Repository, entry parser.Entry, date string, result *dto.ImportResult) error {
	if entry.WorkNo <= 0 {
		return fmt.Errorf("%w: nomor karyawan %d tidak valid", ErrMalformedEntry, entry.WorkNo)
	}
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("%w: nama karyawan kosong", ErrMalformedEntry)
	}

	deptID, err := s.resolveDepartment(ctx, repo, entry.Department, result)
	if err != nil {
		return err
	}

	// employee: overwrite name and department, or insert
	_, err = repo.Employee.GetByWorkNo(ctx, entry.WorkNo)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		emp := &model.Employee{WorkNo: entry.WorkNo, Name: entry.Name, DeptID: deptID, IsActive: true}
		if err := repo.Employee.Create(ctx, emp); err != nil {
			return err
		}
		result.EmployeesCreated++
	case err != nil:
		return err
	default:
		if err := repo.Employee.UpdateProfile(ctx, entry.WorkNo, entry.Name, deptID); err != nil {
			return err
		}
		result.EmployeesUpdated++
	}

	// attendance: one record per (work no, date)
	rec, err := repo.Attendance.FindByWorkNoAndDate(ctx, entry.WorkNo, date)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &model.AttendanceRecord{WorkNo: entry.WorkNo, Date: date, Status: model.StatusPending}
		applyTimes(rec, entry)
		if err := repo.Attendance.Create(ctx, rec); err != nil {
			return err
		}
		result.RecordsCreated++
	case err != nil:
		return err
	default:
		applyTimes(rec, entry)
		if err := repo.Attendance.UpdateTimes(ctx, rec); err != nil {
			return err
		}
		result.RecordsUpdated++
	}

	return nil
}

// resolveDepartment returns the id for name, creating the department on first sight.
// Blank and N/A names mean no department.
func (s *importService) resolveDepartment(ctx context.Context, repo *repository.Repository, name string, result *dto.ImportResult) (*uint, error) {
	if strings.TrimSpace(name) == "" || name == parser.NotAvailable {
		return nil, nil
	}

	dept, err := repo.Department.GetByName(ctx, name)
	if err == nil {
		return &dept.DeptID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dept = &model.Department{Name: name}
	if err := repo.Department.Create(ctx, dept); err != nil {
		return nil, err
	}
	result.DepartmentsCreated++
	return &dept.DeptID, nil
}

func applyTimes(rec *model.AttendanceRecord, entry parser.Entry) {
	rec.ClockIn = nullable(entry.ClockIn)
	rec.ClockOut = nullable(entry.ClockOut)
	rec.OvertimeIn = nullable(entry.OvertimeIn)
	rec.OvertimeOut = nullable(entry.OvertimeOut)
	rec.AnomalyTimes = nullable(entry.AnomalyTimes)
}

// nullable maps the N/A marker (and blanks) to NULL.
func nullable(v string) *string {
	if v == parser.NotAvailable || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func entriesChecksum(entries []parser.Entry) string {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(strings.Join(e.Record(), "\x1f"))
		buf.WriteByte('\n')
	}
	return checksum.BytesChecksum(buf.Bytes())
}

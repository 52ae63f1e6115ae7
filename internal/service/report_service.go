package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
)

// ErrExportGenerateFail the workbook could not be written
var ErrExportGenerateFail = errors.New("gagal membuat file Excel")

// ReportService attendance summaries
type ReportService interface {
	Recap(ctx context.Context, start, end string) ([]model.RecapRow, error)
	Violations(ctx context.Context, start, end string) ([]model.ViolationView, error)
	// ExportRecap renders Recap as .xlsx and suggests a file name.
	ExportRecap(ctx context.Context, start, end string) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates a ReportService
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) Recap(ctx context.Context, start, end string) ([]model.RecapRow, error) {
	ok, err := validateRange(start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.RecapRow{}, nil
	}

	rows, err := s.repo.Report.Recap(ctx, start, end)
	if err != nil {
		s.logger.Error("failed to build recap", zap.String("start", start), zap.String("end", end), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *reportService) Violations(ctx context.Context, start, end string) ([]model.ViolationView, error) {
	ok, err := validateRange(start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.ViolationView{}, nil
	}

	rows, err := s.repo.Violation.ListByDateRange(ctx, start, end)
	if err != nil {
		s.logger.Error("failed to list violations", zap.String("start", start), zap.String("end", end), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// ═══════════════════════════════════════════════════════════
// ExportRecap
// ═══════════════════════════════════════════════════════════
//
// Layout: title row, header row, one row per employee.

var recapHeaders = []string{"No", "Nama", "Departemen", "Total Hari Masuk", "Total Pending", "Total Anomali"}

func (s *reportService) ExportRecap(ctx context.Context, start, end string) (*bytes.Buffer, string, error) {
	rows, err := s.Recap(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Rekap"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 28)
	f.SetColWidth(sheetName, "D", "F", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	lastCol := colName(len(recapHeaders) - 1)
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Rekap Absensi %s s/d %s", start, end))
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	for i, h := range recapHeaders {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
	}
	f.SetCellStyle(sheetName, "A2", cell(lastCol, 2), headerStyle)

	row := 3
	for _, r := range rows {
		dept := "-"
		if r.DepartmentName != nil {
			dept = *r.DepartmentName
		}
		f.SetCellValue(sheetName, cell("A", row), r.WorkNo)
		f.SetCellValue(sheetName, cell("B", row), r.EmployeeName)
		f.SetCellValue(sheetName, cell("C", row), dept)
		f.SetCellValue(sheetName, cell("D", row), r.DaysPresent)
		f.SetCellValue(sheetName, cell("E", row), r.Pending)
		f.SetCellValue(sheetName, cell("F", row), r.Anomalies)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write recap workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("rekap_absensi_%s_%s.xlsx", start, end)
	return buf, filename, nil
}

// colName converts a zero-based column index to its letter (0 → "A").
func colName(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

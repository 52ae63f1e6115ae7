package repository_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
	"github.com/Angger-Raka/aplikasi-absensi/internal/testfixtures"
)

func strPtr(s string) *string { return &s }

func seedEmployee(t *testing.T, repo *repository.Repository, workNo int, name, dept string) {
	t.Helper()
	ctx := context.Background()
	var deptID *uint
	if dept != "" {
		d := &model.Department{Name: dept}
		if err := repo.Department.Create(ctx, d); err != nil {
			t.Fatalf("create department: %v", err)
		}
		deptID = &d.DeptID
	}
	if err := repo.Employee.Create(ctx, &model.Employee{WorkNo: workNo, Name: name, DeptID: deptID, IsActive: true}); err != nil {
		t.Fatalf("create employee: %v", err)
	}
}

func TestDepartmentRepo_GetByNameExact(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()

	if err := repo.Department.Create(ctx, &model.Department{Name: "Sales"}); err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	got, err := repo.Department.GetByName(ctx, "Sales")
	if err != nil {
		t.Fatalf("GetByName should succeed: %v", err)
	}
	if got.DeptID == 0 {
		t.Error("expected generated id")
	}

	if _, err := repo.Department.GetByName(ctx, "sales"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for different case, got %v", err)
	}

	if err := repo.Department.Create(ctx, &model.Department{Name: "Sales"}); err == nil {
		t.Error("expected unique violation for duplicate name")
	}
}

func TestDepartmentRepo_ListCountsEmployees(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()

	seedEmployee(t, repo, 1, "Ayu", "Sales")
	sales, err := repo.Department.GetByName(ctx, "Sales")
	if err != nil {
		t.Fatalf("GetByName should succeed: %v", err)
	}
	if err := repo.Employee.Create(ctx, &model.Employee{WorkNo: 2, Name: "Budi", DeptID: &sales.DeptID, IsActive: true}); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	if err := repo.Department.Create(ctx, &model.Department{Name: "Audit"}); err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	seedEmployee(t, repo, 3, "Citra", "")

	depts, err := repo.Department.List(ctx)
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(depts) != 2 {
		t.Fatalf("expected 2 departments, got %+v", depts)
	}
	if depts[0].Name != "Audit" || depts[0].EmployeeCount != 0 {
		t.Errorf("unexpected first department: %+v", depts[0])
	}
	if depts[1].Name != "Sales" || depts[1].EmployeeCount != 2 {
		t.Errorf("unexpected second department: %+v", depts[1])
	}
}

func TestEmployeeRepo_UpdateProfileClearsDepartment(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()
	seedEmployee(t, repo, 7, "Jane", "Sales")

	if err := repo.Employee.UpdateProfile(ctx, 7, "Jane Doe", nil); err != nil {
		t.Fatalf("UpdateProfile should succeed: %v", err)
	}

	emp, err := repo.Employee.GetByWorkNo(ctx, 7)
	if err != nil {
		t.Fatalf("GetByWorkNo should succeed: %v", err)
	}
	if emp.Name != "Jane Doe" {
		t.Errorf("expected updated name, got %q", emp.Name)
	}
	if emp.DeptID != nil {
		t.Errorf("expected cleared department, got %d", *emp.DeptID)
	}
	if !emp.IsActive {
		t.Error("expected status_aktif to be preserved")
	}
}

func TestAttendanceRepo_UpdateTimesKeepsEditorNote(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()
	seedEmployee(t, repo, 7, "Jane", "")

	rec := &model.AttendanceRecord{WorkNo: 7, Date: "2025-10-10", ClockIn: strPtr("08:00"), Status: model.StatusPending}
	if err := repo.Attendance.Create(ctx, rec); err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if err := repo.Attendance.UpdateReview(ctx, rec.RecordID, model.StatusValid, strPtr("checked")); err != nil {
		t.Fatalf("UpdateReview should succeed: %v", err)
	}

	rec.ClockIn = strPtr("08:10")
	rec.ClockOut = strPtr("17:00")
	if err := repo.Attendance.UpdateTimes(ctx, rec); err != nil {
		t.Fatalf("UpdateTimes should succeed: %v", err)
	}

	got, err := repo.Attendance.FindByWorkNoAndDate(ctx, 7, "2025-10-10")
	if err != nil {
		t.Fatalf("FindByWorkNoAndDate should succeed: %v", err)
	}
	if got.RecordID != rec.RecordID {
		t.Errorf("expected same id %d, got %d", rec.RecordID, got.RecordID)
	}
	if got.Status != model.StatusPending {
		t.Errorf("expected status reset to PENDING, got %s", got.Status)
	}
	if got.EditorNote == nil || *got.EditorNote != "checked" {
		t.Errorf("expected editor note preserved, got %v", got.EditorNote)
	}
	if got.ClockOut == nil || *got.ClockOut != "17:00" {
		t.Errorf("expected clock out 17:00, got %v", got.ClockOut)
	}
}

func TestAttendanceRepo_ListByDateRange(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()
	seedEmployee(t, repo, 1, "Zaki", "Ops")
	seedEmployee(t, repo, 2, "Ayu", "")

	for _, rec := range []model.AttendanceRecord{
		{WorkNo: 1, Date: "2025-10-02", Status: model.StatusPending},
		{WorkNo: 2, Date: "2025-10-02", Status: model.StatusPending},
		{WorkNo: 1, Date: "2025-10-01", Status: model.StatusPending},
		{WorkNo: 1, Date: "2025-11-01", Status: model.StatusPending},
	} {
		rec := rec
		if err := repo.Attendance.Create(ctx, &rec); err != nil {
			t.Fatalf("Create should succeed: %v", err)
		}
	}

	rows, err := repo.Attendance.ListByDateRange(ctx, "2025-10-01", "2025-10-31")
	if err != nil {
		t.Fatalf("ListByDateRange should succeed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Date != "2025-10-01" || rows[1].EmployeeName != "Ayu" || rows[2].EmployeeName != "Zaki" {
		t.Errorf("unexpected order: %+v", rows)
	}
	if rows[1].DepartmentName != nil {
		t.Errorf("expected no department for Ayu, got %v", *rows[1].DepartmentName)
	}
	if rows[2].DepartmentName == nil || *rows[2].DepartmentName != "Ops" {
		t.Errorf("expected department Ops, got %v", rows[2].DepartmentName)
	}

	empty, err := repo.Attendance.ListByDateRange(ctx, "2030-01-01", "2030-01-31")
	if err != nil {
		t.Fatalf("empty range should not error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}
}

func TestReportRepo_Recap(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()
	seedEmployee(t, repo, 1, "Budi", "Ops")

	for _, rec := range []model.AttendanceRecord{
		{WorkNo: 1, Date: "2025-10-01", Status: model.StatusPending, AnomalyTimes: strPtr("21:00")},
		{WorkNo: 1, Date: "2025-10-02", Status: model.StatusValid},
	} {
		rec := rec
		if err := repo.Attendance.Create(ctx, &rec); err != nil {
			t.Fatalf("Create should succeed: %v", err)
		}
	}

	rows, err := repo.Report.Recap(ctx, "2025-10-01", "2025-10-31")
	if err != nil {
		t.Fatalf("Recap should succeed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.DaysPresent != 2 || r.Pending != 1 || r.Anomalies != 1 {
		t.Errorf("unexpected counts: %+v", r)
	}
}

func TestViolationRepo_CascadeOnRecordDelete(t *testing.T) {
	db := testfixtures.NewSQLiteDB(t)
	repo := repository.NewRepository(db)
	ctx := context.Background()
	seedEmployee(t, repo, 1, "Budi", "")

	rec := &model.AttendanceRecord{WorkNo: 1, Date: "2025-10-01", Status: model.StatusPending}
	if err := repo.Attendance.Create(ctx, rec); err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if err := repo.Violation.Create(ctx, &model.ViolationNote{RecordID: rec.RecordID, StartTime: "08:00", EndTime: "08:30", Note: "late"}); err != nil {
		t.Fatalf("Create violation should succeed: %v", err)
	}

	views, err := repo.Violation.ListByDateRange(ctx, "2025-10-01", "2025-10-01")
	if err != nil || len(views) != 1 || views[0].EmployeeName != "Budi" {
		t.Fatalf("unexpected violation views: %+v, err=%v", views, err)
	}
	if views[0].DepartmentName != nil {
		t.Errorf("expected no department for unassigned employee, got %q", *views[0].DepartmentName)
	}

	if err := db.Delete(&model.AttendanceRecord{}, rec.RecordID).Error; err != nil {
		t.Fatalf("delete record: %v", err)
	}
	notes, err := repo.Violation.ListByRecord(ctx, rec.RecordID)
	if err != nil {
		t.Fatalf("ListByRecord should succeed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected cascade delete, got %d notes", len(notes))
	}
}

func TestRepository_TxRollback(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx should succeed: %v", err)
	}
	if err := repo.WithTx(tx).Department.Create(ctx, &model.Department{Name: "Temp"}); err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	tx.Rollback()

	depts, err := repo.Department.List(ctx)
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(depts) != 0 {
		t.Errorf("expected rollback to discard department, got %d", len(depts))
	}
}

func TestImportBatchRepo_ListRecent(t *testing.T) {
	repo := repository.NewRepository(testfixtures.NewSQLiteDB(t))
	ctx := context.Background()

	for _, name := range []string{"a.xls", "b.xls", "c.xls"} {
		if err := repo.ImportBatch.Create(ctx, &model.ImportBatch{FileName: name, Checksum: "0", Date: "2025-10-01"}); err != nil {
			t.Fatalf("Create should succeed: %v", err)
		}
	}

	batches, err := repo.ImportBatch.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent should succeed: %v", err)
	}
	if len(batches) != 2 || batches[0].FileName != "c.xls" {
		t.Errorf("unexpected batches: %+v", batches)
	}
}

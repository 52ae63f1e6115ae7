package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
)

const sampleLog = ",,7,,,,Jane Doe,,,,,,Sales,Work No,Name,Dept.\n08:00 17:05\n"

// setupEnv points the CLI at a temp SQLite file and returns the log path.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ABSENSI_DB_DRIVER", "sqlite")
	t.Setenv("ABSENSI_DB_PATH", filepath.Join(dir, "cli.db"))
	t.Setenv("ABSENSI_LOG_LEVEL", "error")

	logPath := filepath.Join(dir, "log.csv")
	if err := os.WriteFile(logPath, []byte(sampleLog), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return logPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_ImportThenQuery(t *testing.T) {
	logPath := setupEnv(t)

	out, err := run(t, "import", "--date", "2025-10-10", logPath)
	if err != nil {
		t.Fatalf("import should succeed: %v", err)
	}
	if !strings.Contains(out, "imported 1 entries") {
		t.Errorf("unexpected import output: %q", out)
	}

	out, err = run(t, "records", "--from", "2025-10-01", "--to", "2025-10-31")
	if err != nil {
		t.Fatalf("records should succeed: %v", err)
	}
	if !strings.Contains(out, "Jane Doe") || !strings.Contains(out, "17:05") {
		t.Errorf("unexpected records output: %q", out)
	}

	out, err = run(t, "recap", "--from", "2025-10-01", "--to", "2025-10-31")
	if err != nil {
		t.Fatalf("recap should succeed: %v", err)
	}
	if !strings.Contains(out, "Sales") {
		t.Errorf("unexpected recap output: %q", out)
	}

	out, err = run(t, "violations", "--from", "2025-10-01", "--to", "2025-10-31")
	if err != nil {
		t.Fatalf("violations should succeed: %v", err)
	}
	if !strings.Contains(out, "CATATAN") || strings.Contains(out, "Jane Doe") {
		t.Errorf("expected header only without violations, got %q", out)
	}

	out, err = run(t, "departments")
	if err != nil {
		t.Fatalf("departments should succeed: %v", err)
	}
	if !strings.Contains(out, "Sales") {
		t.Errorf("unexpected departments output: %q", out)
	}

	out, err = run(t, "imports", "--limit", "5")
	if err != nil {
		t.Fatalf("imports should succeed: %v", err)
	}
	if !strings.Contains(out, "2025-10-10") || !strings.Contains(out, "log.csv") {
		t.Errorf("unexpected imports output: %q", out)
	}
}

func TestCLI_ImportInvalidDate(t *testing.T) {
	logPath := setupEnv(t)

	if _, err := run(t, "import", "--date", "10/10/2025", logPath); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestCLI_Extract(t *testing.T) {
	logPath := setupEnv(t)

	out, err := run(t, "extract", logPath)
	if err != nil {
		t.Fatalf("extract should succeed: %v", err)
	}
	if !strings.Contains(out, `"Nama": "Jane Doe"`) || !strings.Contains(out, `"Masuk Lembur": "N/A"`) {
		t.Errorf("unexpected extract output: %q", out)
	}
}

func TestWriteRecords_NullsAsDash(t *testing.T) {
	var buf bytes.Buffer
	clock := "08:00"
	err := writeRecords(&buf, []model.AttendanceView{{RecordID: 1, Date: "2025-10-10", WorkNo: 7, EmployeeName: "Jane", ClockIn: &clock, Status: model.StatusPending}})
	if err != nil {
		t.Fatalf("writeRecords should succeed: %v", err)
	}
	if !strings.Contains(buf.String(), "08:00") || !strings.Contains(buf.String(), "-") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWriteViolations(t *testing.T) {
	var buf bytes.Buffer
	dept := "Gudang"
	err := writeViolations(&buf, []model.ViolationView{
		{ViolationID: 1, Date: "2025-10-10", WorkNo: 8, EmployeeName: "Budi", DepartmentName: &dept,
			StartTime: "12:00", EndTime: "13:30", Note: "istirahat lebih"},
		{ViolationID: 2, Date: "2025-10-10", WorkNo: 9, EmployeeName: "Sari", StartTime: "08:00", EndTime: "08:20"},
	})
	if err != nil {
		t.Fatalf("writeViolations should succeed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Gudang") || !strings.Contains(out, "istirahat lebih") || !strings.Contains(out, "Sari") {
		t.Errorf("unexpected output: %q", out)
	}
}

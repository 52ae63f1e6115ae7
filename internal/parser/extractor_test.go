package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func headerRow(workNo, name, dept string) []string {
	return []string{"", "", workNo, "", "", "", name, "", "", "", "", "", dept, "Work No", "Name", "Dept."}
}

func detailRow(text string) []string {
	return []string{text}
}

func newTestExtractor() *Extractor {
	return NewExtractor(zap.NewNop())
}

func TestExtractGrid_FullBlock(t *testing.T) {
	grid := [][]string{
		headerRow("7", "Jane Doe", "Sales"),
		detailRow("08:00 17:05 18:00 20:15 09:30"),
	}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		WorkNo:       7,
		Name:         "Jane Doe",
		Department:   "Sales",
		ClockIn:      "08:00",
		ClockOut:     "17:05",
		OvertimeIn:   "18:00",
		OvertimeOut:  "20:15",
		AnomalyTimes: "09:30",
	}, entries[0])
}

func TestExtractGrid_FewerThanFourStamps(t *testing.T) {
	grid := [][]string{
		headerRow("12", "Budi", "Gudang"),
		{"", "07:58", "", "16:30"},
	}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "07:58", e.ClockIn)
	assert.Equal(t, "16:30", e.ClockOut)
	assert.Equal(t, NotAvailable, e.OvertimeIn)
	assert.Equal(t, NotAvailable, e.OvertimeOut)
	assert.Equal(t, NotAvailable, e.AnomalyTimes)
}

func TestExtractGrid_NoStamps(t *testing.T) {
	grid := [][]string{headerRow("3", "Sari", "HR"), detailRow("absent")}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, NotAvailable, entries[0].ClockIn)
	assert.Equal(t, NotAvailable, entries[0].AnomalyTimes)
}

func TestExtractGrid_ExtraStampsBecomeAnomalies(t *testing.T) {
	grid := [][]string{
		headerRow("5", "Andi", "IT"),
		detailRow("08:00 12:00 13:00 17:00 19:10 21.45"),
	}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, "17:00", entries[0].OvertimeOut)
	assert.Equal(t, "19:10, 21:45", entries[0].AnomalyTimes)
}

func TestExtractGrid_DotSeparatorNormalized(t *testing.T) {
	grid := [][]string{headerRow("9", "Rina", "Finance"), detailRow("08.15 17.45")}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, "08:15", entries[0].ClockIn)
	assert.Equal(t, "17:45", entries[0].ClockOut)
}

func TestExtractGrid_NoHeaderRows(t *testing.T) {
	grid := [][]string{
		{"Attendance Report", "2025-10-10"},
		{"08:00 17:00"},
	}

	entries := newTestExtractor().ExtractGrid(grid)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractGrid_HeaderIsLastRow(t *testing.T) {
	grid := [][]string{
		headerRow("1", "Dewi", "Sales"),
		detailRow("08:00"),
		headerRow("2", "Eko", "Sales"),
	}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].WorkNo)
}

func TestExtractGrid_MalformedWorkNoSkipped(t *testing.T) {
	grid := [][]string{
		headerRow("abc", "Broken", "Sales"),
		detailRow("08:00"),
		headerRow("4", "Fajar", "Sales"),
		detailRow("08:05 17:10"),
	}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].WorkNo)
	assert.Equal(t, "Fajar", entries[0].Name)
}

func TestExtractGrid_BlankNameOrZeroWorkNoSkipped(t *testing.T) {
	grid := [][]string{
		headerRow("8", "  ", "Sales"),
		detailRow("08:00"),
		headerRow("0", "Nol", "Sales"),
		detailRow("08:00"),
		headerRow("7", "Jane Doe", "Sales"),
		detailRow("08:05 17:10"),
	}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].WorkNo)
}

func TestExtractGrid_ShortHeaderSkipped(t *testing.T) {
	grid := [][]string{
		{"Work No", "Name", "Dept."},
		detailRow("08:00"),
	}

	entries := newTestExtractor().ExtractGrid(grid)

	assert.Empty(t, entries)
}

func TestExtractGrid_DocumentOrderNoDedup(t *testing.T) {
	grid := [][]string{
		headerRow("2", "B", "X"), detailRow("08:00"),
		headerRow("1", "A", "X"), detailRow("08:00"),
		headerRow("2", "B", "X"), detailRow("09:00"),
	}

	entries := newTestExtractor().ExtractGrid(grid)

	require.Len(t, entries, 3)
	assert.Equal(t, []int{2, 1, 2}, []int{entries[0].WorkNo, entries[1].WorkNo, entries[2].WorkNo})
	assert.Equal(t, "09:00", entries[2].ClockIn)
}

func TestParseWorkNo(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{" 42 ", 42, false},
		{"7.0", 7, false},
		{"2147483647", 2147483647, false},
		{"7.5", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"x1", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"0.0", 0, true},
		{"2147483648", 0, true},
		{"2147483648.0", 0, true},
	}
	for _, tt := range tests {
		got, err := parseWorkNo(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrRowMalformed, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCustomLayout(t *testing.T) {
	layout := ColumnLayout{WorkNo: 0, Name: 1, Department: 2}
	grid := [][]string{
		{"11", "Gita", "Ops", "Work No Name Dept."},
		{"06:00 14:00"},
	}

	entries := NewExtractorWithLayout(layout, zap.NewNop()).ExtractGrid(grid)

	require.Len(t, entries, 1)
	assert.Equal(t, 11, entries[0].WorkNo)
	assert.Equal(t, "Ops", entries[0].Department)
}

func TestEntryRecord(t *testing.T) {
	e := Entry{WorkNo: 7, Name: "Jane", Department: "Sales", ClockIn: "08:00",
		ClockOut: NotAvailable, OvertimeIn: NotAvailable, OvertimeOut: NotAvailable, AnomalyTimes: NotAvailable}

	rec := e.Record()

	assert.Len(t, rec, len(Columns))
	assert.Equal(t, "7", rec[0])
	assert.Equal(t, "08:00", rec[3])
}

// ── document loading ──

func TestExtractFile_CSVLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.csv")
	var buf bytes.Buffer
	buf.WriteString(",,7,,,,Jos\xe9,,,,,,Sales,Work No,Name,Dept.\n")
	buf.WriteString("08:00 17:05,18:00\n")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	entries, err := newTestExtractor().ExtractFile(path)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "José", entries[0].Name)
	assert.Equal(t, "18:00", entries[0].OvertimeIn)
}

func TestExtractFile_XLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.XLSX")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"", "", 21, "", "", "", "Hana", "", "", "", "", "", "Produksi", "Work No", "Name", "Dept."}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"07:45", "16:50"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	entries, err := newTestExtractor().ExtractFile(path)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 21, entries[0].WorkNo)
	assert.Equal(t, "Produksi", entries[0].Department)
	assert.Equal(t, "07:45", entries[0].ClockIn)
	assert.Equal(t, "16:50", entries[0].ClockOut)
}

func TestExtractFile_XLS(t *testing.T) {
	entries, err := newTestExtractor().ExtractFile(filepath.Join("testdata", "log.xls"))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{
		WorkNo: 7, Name: "Jane Doe", Department: "Sales",
		ClockIn: "08:00", ClockOut: "17:05", OvertimeIn: "18:00",
		OvertimeOut: NotAvailable, AnomalyTimes: NotAvailable,
	}, entries[0])
	assert.Equal(t, 8, entries[1].WorkNo)
	assert.Equal(t, "Gudang", entries[1].Department)
	assert.Equal(t, "07:58", entries[1].ClockIn)
	assert.Equal(t, "16:30", entries[1].ClockOut)
}

func TestLoadGrid_XLSMissingRowIsBlank(t *testing.T) {
	grid, err := LoadGrid(filepath.Join("testdata", "log.xls"))

	require.NoError(t, err)
	require.Len(t, grid, 5)
	assert.Len(t, grid[0], 16)
	assert.Equal(t, "7", grid[0][2])
	assert.Equal(t, "Dept.", grid[0][15])
	assert.Equal(t, make([]string, 16), grid[2])
	assert.Equal(t, "8", grid[3][2])
}

func TestExtractFile_NotFound(t *testing.T) {
	entries, err := newTestExtractor().ExtractFile(filepath.Join(t.TempDir(), "missing.xls"))

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestExtractFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	entries, err := newTestExtractor().ExtractFile(path)

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestExtractReader_CorruptWorkbook(t *testing.T) {
	for _, name := range []string{"log.xls", "log.xlsx"} {
		entries, err := newTestExtractor().ExtractReader(strings.NewReader("not a workbook"), name)

		assert.Nil(t, entries, name)
		assert.ErrorIs(t, err, ErrSourceUnreadable, name)
	}
}

func TestLoadGridReader_Rectangular(t *testing.T) {
	grid, err := LoadGridReader(strings.NewReader("a,b,c\nd\n"), "x.csv")

	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"d", "", ""}, grid[1])
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a.XLS"))
	assert.True(t, IsSupported("a.xlsx"))
	assert.True(t, IsSupported("a.csv"))
	assert.False(t, IsSupported("a.txt"))
	assert.False(t, IsSupported("noext"))
}

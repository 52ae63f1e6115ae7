package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// ── source errors ──

var (
	ErrSourceUnreadable  = errors.New("attendance log is unreadable")
	ErrFileNotFound      = fmt.Errorf("%w: file not found", ErrSourceUnreadable)
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported file format (use .xls, .xlsx or .csv)", ErrSourceUnreadable)

	errNoWorksheet = errors.New("no worksheet found")
)

// Supported extensions.
const (
	ExtXLS  = ".xls"
	ExtXLSX = ".xlsx"
	ExtCSV  = ".csv"
)

// IsSupported reports whether filename has an extension the loader can read.
func IsSupported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtXLS, ExtXLSX, ExtCSV:
		return true
	}
	return false
}

// LoadGrid reads the document at path into a headerless, rectangular grid.
func LoadGrid(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	return LoadGridReader(f, path)
}

// LoadGridReader is LoadGrid for an already opened document; filename selects the format.
func LoadGridReader(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !IsSupported(filename) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	var rows [][]string
	switch ext {
	case ExtXLS:
		rows, err = readXLS(bytes.NewReader(data))
	case ExtXLSX:
		rows, err = readXLSX(bytes.NewReader(data))
	case ExtCSV:
		rows, err = readCSV(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, filepath.Base(filename), err)
	}

	return rectangular(rows), nil
}

// readXLS reads the first sheet of a legacy BIFF workbook.
func readXLS(rs io.ReadSeeker) (rows [][]string, err error) {
	// the BIFF decoder panics on some truncated files
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("corrupt xls file: %v", r)
		}
	}()

	wb, err := xls.OpenReader(rs, "utf-8")
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errNoWorksheet
	}

	rows = make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// LastCol is one past the last cell, as stored in the ROW record
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// xlsRow returns row i, or nil when the sheet stores nothing for it.
// WorkSheet.Row dereferences the missing row instead of returning nil.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// readXLSX reads the first sheet of an OOXML workbook.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errNoWorksheet
	}
	return f.GetRows(sheetName)
}

// readCSV reads comma-separated text in ISO-8859-1, tolerating ragged rows and stray quotes.
func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}

// rectangular pads every row to the widest row so column lookups behave like a table.
func rectangular(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	grid := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		grid[i] = padded
	}
	return grid
}

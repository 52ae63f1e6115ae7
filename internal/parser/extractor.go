package parser

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrRowMalformed marks a header block whose fields could not be read.
// Such blocks are skipped, never returned to callers.
var ErrRowMalformed = errors.New("malformed attendance block")

// ColumnLayout holds the zero-based cell positions of the employee fields
// inside a header row.
type ColumnLayout struct {
	WorkNo     int
	Name       int
	Department int
}

// DefaultLayout matches the report produced by the time clock.
var DefaultLayout = ColumnLayout{WorkNo: 2, Name: 6, Department: 12}

var (
	headerMarkers    = []string{"Work No", "Name", "Dept."}
	timestampPattern = regexp.MustCompile(`\d{2}[:.]\d{2}`)
)

// timeSlots is the number of leading timestamps mapped to named fields.
const timeSlots = 4

// Extractor turns attendance-log grids into entries.
type Extractor struct {
	layout ColumnLayout
	logger *zap.Logger
}

// NewExtractor returns an Extractor using DefaultLayout.
func NewExtractor(logger *zap.Logger) *Extractor {
	return NewExtractorWithLayout(DefaultLayout, logger)
}

// NewExtractorWithLayout returns an Extractor reading employee fields at layout's positions.
func NewExtractorWithLayout(layout ColumnLayout, logger *zap.Logger) *Extractor {
	return &Extractor{layout: layout, logger: logger}
}

// ExtractFile loads the document at path and extracts its entries.
func (e *Extractor) ExtractFile(path string) ([]Entry, error) {
	grid, err := LoadGrid(path)
	if err != nil {
		e.logger.Error("failed to read attendance log", zap.String("file", path), zap.Error(err))
		return nil, err
	}
	return e.ExtractGrid(grid), nil
}

// ExtractReader extracts entries from an uploaded document; filename selects the format.
func (e *Extractor) ExtractReader(r io.Reader, filename string) ([]Entry, error) {
	grid, err := LoadGridReader(r, filename)
	if err != nil {
		e.logger.Error("failed to read attendance log", zap.String("file", filename), zap.Error(err))
		return nil, err
	}
	return e.ExtractGrid(grid), nil
}

// ExtractGrid scans grid top to bottom. Each header row followed by another
// row yields one entry, in document order.
func (e *Extractor) ExtractGrid(grid [][]string) []Entry {
	entries := make([]Entry, 0)
	for i, row := range grid {
		if !isHeaderRow(flatten(row)) {
			continue
		}
		if i+1 >= len(grid) {
			e.logger.Warn("header row has no detail row, skipped", zap.Int("row", i+1))
			continue
		}

		entry, err := e.parseBlock(row, grid[i+1])
		if err != nil {
			e.logger.Warn("skipping attendance block", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func (e *Extractor) parseBlock(header, detail []string) (Entry, error) {
	rawWorkNo, err := cellAt(header, e.layout.WorkNo)
	if err != nil {
		return Entry{}, err
	}
	workNo, err := parseWorkNo(rawWorkNo)
	if err != nil {
		return Entry{}, err
	}
	name, err := cellAt(header, e.layout.Name)
	if err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Entry{}, fmt.Errorf("%w: work number %d has no name", ErrRowMalformed, workNo)
	}
	dept, err := cellAt(header, e.layout.Department)
	if err != nil {
		return Entry{}, err
	}

	times := findTimestamps(flatten(detail))
	slot := func(i int) string {
		if i < len(times) {
			return times[i]
		}
		return NotAvailable
	}
	anomaly := NotAvailable
	if len(times) > timeSlots {
		anomaly = strings.Join(times[timeSlots:], ", ")
	}

	return Entry{
		WorkNo:       workNo,
		Name:         name,
		Department:   dept,
		ClockIn:      slot(0),
		ClockOut:     slot(1),
		OvertimeIn:   slot(2),
		OvertimeOut:  slot(3),
		AnomalyTimes: anomaly,
	}, nil
}

func flatten(row []string) string {
	return strings.Join(row, " ")
}

func isHeaderRow(line string) bool {
	for _, marker := range headerMarkers {
		if !strings.Contains(line, marker) {
			return false
		}
	}
	return true
}

func cellAt(row []string, col int) (string, error) {
	if col < 0 || col >= len(row) {
		return "", fmt.Errorf("%w: column %d out of range (row has %d cells)", ErrRowMalformed, col, len(row))
	}
	return row[col], nil
}

// parseWorkNo accepts positive integers, also written as integral floats such as "7.0",
// up to math.MaxInt32.
func parseWorkNo(cell string) (int, error) {
	s := strings.TrimSpace(cell)
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: work number %q is not an integer", ErrRowMalformed, cell)
		}
		n = int(f)
	}
	if n < 1 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: work number %q out of range", ErrRowMalformed, cell)
	}
	return n, nil
}

// findTimestamps returns every HH:MM or HH.MM match in line, normalized to HH:MM.
func findTimestamps(line string) []string {
	matches := timestampPattern.FindAllString(line, -1)
	for i, m := range matches {
		matches[i] = strings.Replace(m, ".", ":", 1)
	}
	return matches
}

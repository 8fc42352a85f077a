// Package dataset loads the student profile table.
//
// The table is read once at startup from a CSV or XLSX file and never
// mutated afterwards, so a *Dataset is safe for concurrent readers.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrStudentNotFound = errors.New("student not found")

type Dataset struct {
	records []StudentRecord
	byID    map[string]int
}

// New indexes records by ID. Rows without an ID are dropped; on duplicate
// IDs the first row wins.
func New(records []StudentRecord) *Dataset {
	d := &Dataset{byID: make(map[string]int, len(records))}
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		if _, dup := d.byID[r.ID]; !dup {
			d.byID[r.ID] = len(d.records)
		}
		d.records = append(d.records, r)
	}
	return d
}

// Records returns the rows in file order. Callers must not modify them.
func (d *Dataset) Records() []StudentRecord {
	return d.records
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// ByID looks a student up by exact (trimmed) identifier.
func (d *Dataset) ByID(id string) (StudentRecord, error) {
	i, ok := d.byID[strings.TrimSpace(id)]
	if !ok {
		return StudentRecord{}, ErrStudentNotFound
	}
	return d.records[i], nil
}

// Load reads the dataset at path, creating it with sample rows first if it
// does not exist. ".xlsx" files are read with excelize, anything else as CSV.
func Load(path string) (*Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := WriteSample(path); err != nil {
			return nil, fmt.Errorf("create sample dataset: %w", err)
		}
		slog.Info("dataset not found, wrote sample", "path", path)
	} else if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	var (
		rows [][]string
		err  error
	)
	if isXLSX(path) {
		rows, err = readXLSX(path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	records := fromRows(rows)
	slog.Info("dataset loaded", "path", path, "records", len(records))
	return New(records), nil
}

// WriteSample writes the three built-in sample students to path.
func WriteSample(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	rows := append([][]string{Columns}, sampleRows...)
	if isXLSX(path) {
		return writeXLSX(path, rows)
	}
	return writeCSV(path, rows)
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

func fromRows(rows [][]string) []StudentRecord {
	if len(rows) == 0 {
		return nil
	}
	header := make([]string, len(rows[0]))
	present := make(map[string]bool, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		present[header[i]] = true
	}
	// "10th Marks" only stands in when "10th_Marks" is missing.
	for i, h := range header {
		if canonical, ok := columnAliases[h]; ok && !present[canonical] {
			header[i] = canonical
		}
	}

	out := make([]StudentRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cells := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				cells[h] = row[i]
			}
		}
		rec := newRecord(cells)
		if rec.ID == "" {
			slog.Warn("dataset row without student id skipped", "row", n+2)
			continue
		}
		out = append(out, rec)
	}
	return out
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx dataset: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}

func writeXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

package report

import (
	"fmt"
	"io"

	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
	"github.com/xuri/excelize/v2"
)

const planSheet = "Career Plan"

type sheetLine struct {
	bold bool
	vals []any
}

// XLSXRenderer lays the plan out as a spreadsheet with the same sections
// as the PDF, one item per row.
type XLSXRenderer struct{}

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSXRenderer) Ext() string { return ".xlsx" }

func (XLSXRenderer) Render(w io.Writer, rec dataset.StudentRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", planSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("bold style: %w", err)
	}

	lines := []sheetLine{
		{bold: true, vals: []any{Title(rec)}},
		{vals: []any{"GPA", dataset.FormatDecimal(rec.GPA)}},
		{vals: []any{"10th Marks", dataset.FormatNumber(rec.Marks10)}},
		{vals: []any{"12th Marks", dataset.FormatNumber(rec.Marks12)}},
	}
	for _, sec := range planSections(rec) {
		lines = append(lines, sheetLine{bold: true, vals: []any{sec.title}})
		for _, item := range sec.items {
			lines = append(lines, sheetLine{vals: []any{"- " + item}})
		}
	}

	for i, l := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(planSheet, cell, &l.vals); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
		if l.bold {
			if err := f.SetCellStyle(planSheet, cell, cell, bold); err != nil {
				return err
			}
		}
	}
	if err := f.SetColWidth(planSheet, "A", "A", 48); err != nil {
		return err
	}
	return f.Write(w)
}

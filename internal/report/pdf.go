package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// Layout in points, measured from the bottom of a letter page.
const (
	pageTop      = 750.0
	pageBottom   = 80.0
	marginLeft   = 40.0
	bulletIndent = 60.0
	lineHeight   = 16.0
)

type section struct {
	title string
	items []string
}

// planSections are the bulleted lists of a career plan, in print order.
func planSections(rec dataset.StudentRecord) []section {
	return []section{
		{title: "Career Suggestions:", items: rec.CareerSuggestions},
		{title: "Certifications:", items: rec.Certifications},
		{title: "Internships / Experience:", items: rec.Internships},
	}
}

func displayName(rec dataset.StudentRecord) string {
	if rec.Name == "" {
		return "Student"
	}
	return rec.Name
}

// Title is the heading printed at the top of every plan.
func Title(rec dataset.StudentRecord) string {
	return fmt.Sprintf("Career Plan — %s (ID: %s)", displayName(rec), rec.ID)
}

type PDFRenderer struct{}

func (PDFRenderer) ContentType() string { return "application/pdf" }
func (PDFRenderer) Ext() string         { return ".pdf" }

func (PDFRenderer) Render(w io.Writer, rec dataset.StudentRecord) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(Title(rec), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageH := pdf.GetPageSize()
	text := func(x, y float64, s string) {
		pdf.Text(x, pageH-y, tr(s))
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	text(marginLeft, pageTop, Title(rec))

	pdf.SetFont("Helvetica", "", 12)
	y := 720.0
	text(marginLeft, y, "GPA: "+dataset.FormatDecimal(rec.GPA))
	y -= 20
	text(marginLeft, y, fmt.Sprintf("10th Marks: %s, 12th Marks: %s",
		dataset.FormatNumber(rec.Marks10), dataset.FormatNumber(rec.Marks12)))
	y -= 30

	for i, sec := range planSections(rec) {
		if i > 0 {
			y -= 10
		}
		pdf.SetFont("Helvetica", "B", 13)
		text(marginLeft, y, sec.title)
		y -= 18
		pdf.SetFont("Helvetica", "", 12)
		for _, item := range sec.items {
			text(bulletIndent, y, "- "+item)
			y -= lineHeight
			if y < pageBottom {
				pdf.AddPage()
				y = pageTop
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

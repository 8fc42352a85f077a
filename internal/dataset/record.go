package dataset

import (
	"math"
	"strconv"
	"strings"
)

// StudentRecord is one row of the student dataset. Optional numeric
// columns are nil when the cell is blank or not a number.
type StudentRecord struct {
	ID                string
	Name              string
	GPA               *float64
	Marks10           *float64
	Marks12           *float64
	Skills            []string
	InterestedDomain  string
	CareerSuggestions []string
	Internships       []string
	Certifications    []string
}

// Column headers of the dataset file.
const (
	ColStudentID         = "Student_ID"
	ColName              = "Name"
	ColGPA               = "GPA"
	Col10thMarks         = "10th_Marks"
	Col12thMarks         = "12th_Marks"
	ColSkills            = "Skills"
	ColInterestedDomain  = "Interested_Domain"
	ColCareerSuggestions = "Career_Suggestions"
	ColInternships       = "Internships"
	ColCertifications    = "Certifications"
)

var columnAliases = map[string]string{
	"10th Marks": Col10thMarks,
	"12th Marks": Col12thMarks,
}

// Columns is the header row written for newly created datasets.
var Columns = []string{
	ColStudentID, ColName, ColGPA, Col10thMarks, Col12thMarks, ColSkills,
	ColInterestedDomain, ColCareerSuggestions, ColInternships, ColCertifications,
}

// SplitList splits a delimited cell. ";" wins over ",", parts are trimmed
// and blanks dropped.
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	sep := ""
	switch {
	case strings.Contains(s, ";"):
		sep = ";"
	case strings.Contains(s, ","):
		sep = ","
	default:
		return []string{s}
	}
	out := []string{}
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseNumber coerces a cell to a float; anything unparsable or
// non-finite (NaN, Inf) is absent.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// FormatNumber renders an optional number the way the dataset stores it,
// or "N/A" when absent.
func FormatNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatDecimal is FormatNumber with at least one decimal place, so a GPA
// of 8 prints as "8.0".
func FormatDecimal(v *float64) string {
	s := FormatNumber(v)
	if v == nil || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// newRecord builds a record from a header-indexed row.
func newRecord(row map[string]string) StudentRecord {
	return StudentRecord{
		ID:                strings.TrimSpace(row[ColStudentID]),
		Name:              strings.TrimSpace(row[ColName]),
		GPA:               parseNumber(row[ColGPA]),
		Marks10:           parseNumber(row[Col10thMarks]),
		Marks12:           parseNumber(row[Col12thMarks]),
		Skills:            SplitList(row[ColSkills]),
		InterestedDomain:  strings.TrimSpace(row[ColInterestedDomain]),
		CareerSuggestions: SplitList(row[ColCareerSuggestions]),
		Internships:       SplitList(row[ColInternships]),
		Certifications:    SplitList(row[ColCertifications]),
	}
}

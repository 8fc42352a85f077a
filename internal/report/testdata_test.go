package report

import "github.com/kirubha-07/elix-career-advisor/internal/dataset"

func ptr(f float64) *float64 { return &f }

func aishwarya() dataset.StudentRecord {
	return dataset.StudentRecord{
		ID: "1001", Name: "Aishwarya Iyer", GPA: ptr(9.06), Marks10: ptr(95), Marks12: ptr(92),
		Skills:            []string{"Excel", "SQL"},
		InterestedDomain:  "Data",
		CareerSuggestions: []string{"Data Analyst", "Business Analyst", "Data Scientist", "BI Developer"},
		Internships:       []string{"Analytics Intern at X", "BI Intern at Y"},
		Certifications:    []string{"Power BI Cert", "Excel Advanced"},
	}
}

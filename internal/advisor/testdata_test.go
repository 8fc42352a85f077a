package advisor

import "github.com/kirubha-07/elix-career-advisor/internal/dataset"

func ptr(f float64) *float64 { return &f }

func sampleRecords() []dataset.StudentRecord {
	return []dataset.StudentRecord{
		{
			ID: "1001", Name: "Aishwarya Iyer", GPA: ptr(9.06), Marks10: ptr(95), Marks12: ptr(92),
			Skills:            []string{"Excel", "Power BI", "NumPy", "JavaScript", "SQL"},
			InterestedDomain:  "Data",
			CareerSuggestions: []string{"Data Analyst", "Business Analyst", "Data Scientist", "BI Developer"},
			Internships:       []string{"Analytics Intern at X", "BI Intern at Y"},
			Certifications:    []string{"Power BI Cert", "Excel Advanced"},
		},
		{
			ID: "1002", Name: "Aarav Kumar", GPA: ptr(8.2), Marks10: ptr(88), Marks12: ptr(86),
			Skills:            []string{"Python", "Machine Learning", "SQL"},
			InterestedDomain:  "AI",
			CareerSuggestions: []string{"ML Engineer", "Data Scientist", "AI Researcher", "MLOps Engineer"},
			Internships:       []string{"ML Intern at Z"},
			Certifications:    []string{"ML Nanodegree", "Python Cert"},
		},
		{
			ID: "1003", Name: "Priya Sharma", GPA: ptr(7.8), Marks10: ptr(85), Marks12: ptr(83),
			Skills:            []string{"Java", "Networks", "Security"},
			InterestedDomain:  "Cybersecurity",
			CareerSuggestions: []string{"Security Engineer", "SOC Analyst", "Penetration Tester", "Security Consultant"},
			Internships:       []string{"Security Intern at Q"},
			Certifications:    []string{"CEH", "Network+"},
		},
	}
}

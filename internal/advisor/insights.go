package advisor

import (
	"fmt"
	"strings"

	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
)

type Marks struct {
	Tenth   *float64 `json:"10th"`
	Twelfth *float64 `json:"12th"`
}

type Performance struct {
	Level string  `json:"level"`
	Score float64 `json:"score"`
}

type Radar struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// Insights is the derived view of one student returned by /ask.
type Insights struct {
	StudentID         string         `json:"student_id"`
	Name              string         `json:"name"`
	GPA               *float64       `json:"gpa"`
	Marks             Marks          `json:"marks"`
	Skills            []string       `json:"skills"`
	Domain            string         `json:"domain"`
	CareerSuggestions []CareerWeight `json:"career_suggestions"`
	Internships       []string       `json:"internships"`
	Certifications    []string       `json:"certifications"`
	Performance       Performance    `json:"performance"`
	Radar             Radar          `json:"radar"`
	SummaryText       string         `json:"summary_text"`
	Roadmap           []RoadmapStep  `json:"roadmap"`
}

// BuildInsights derives scores, suggestions and the roadmap for r.
func BuildInsights(r dataset.StudentRecord) Insights {
	careers := CareerWeights(r.CareerSuggestions)
	level, score := PerformanceLevel(r.GPA, r.Marks10, r.Marks12)
	labels, values := SkillFit(r.Skills, r.InterestedDomain)

	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}

	return Insights{
		StudentID:         r.ID,
		Name:              r.Name,
		GPA:               r.GPA,
		Marks:             Marks{Tenth: r.Marks10, Twelfth: r.Marks12},
		Skills:            skills,
		Domain:            r.InterestedDomain,
		CareerSuggestions: careers,
		Internships:       Internships(r),
		Certifications:    Certifications(r),
		Performance:       Performance{Level: level, Score: score},
		Radar:             Radar{Labels: labels, Values: values},
		SummaryText:       Summary(r.Name, r.GPA, careers, level),
		Roadmap:           SelectRoadmap(r.InterestedDomain),
	}
}

// Summary is the one-paragraph answer shown in the chat.
func Summary(name string, gpa *float64, careers []CareerWeight, level string) string {
	top := "some options"
	if len(careers) > 0 {
		n := min(len(careers), 3)
		names := make([]string, 0, n)
		for _, c := range careers[:n] {
			names = append(names, c.Career)
		}
		top = strings.Join(names, ", ")
	}
	return fmt.Sprintf("Hi %s. Based on your profile (G P A %s), top suggested careers include: %s. Your performance level is %s.",
		name, dataset.FormatDecimal(gpa), top, level)
}

package advisor

import (
	"math"
	"strings"
)

const (
	LevelExcellent        = "Excellent"
	LevelGood             = "Good"
	LevelNeedsImprovement = "Needs Improvement"
)

// Radar values.
const (
	FitExact   = 100
	FitPartial = 60
	FitNone    = 20
)

// DomainSkillMap lists the skills each domain expects, in radar order.
var DomainSkillMap = map[string][]string{
	"AI":              {"Python", "Machine Learning", "Deep Learning", "Statistics", "TensorFlow", "PyTorch"},
	"Data":            {"SQL", "Excel", "Power BI", "Tableau", "Pandas", "NumPy", "Statistics"},
	"Cybersecurity":   {"Linux", "Networking", "Ethical Hacking", "Firewalls", "Cryptography"},
	"Web Development": {"HTML", "CSS", "JavaScript", "React", "Node.js"},
}

type CareerWeight struct {
	Career string  `json:"career"`
	Weight float64 `json:"weight"`
}

// PerformanceLevel weighs GPA at 50% and each board mark at 25%. Missing
// inputs add nothing; the weights are not renormalized.
func PerformanceLevel(gpa, marks10, marks12 *float64) (string, float64) {
	score := 0.0
	if gpa != nil {
		score += *gpa / 10.0 * 50.0
	}
	if marks10 != nil {
		score += *marks10 / 100.0 * 25.0
	}
	if marks12 != nil {
		score += *marks12 / 100.0 * 25.0
	}
	return levelFor(score), round1(score)
}

func levelFor(score float64) string {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 70:
		return LevelGood
	default:
		return LevelNeedsImprovement
	}
}

// SkillFit scores the student's skills against the domain's required
// skills. labels and values are parallel and never nil.
func SkillFit(skills []string, domain string) ([]string, []int) {
	reqs := DomainSkillMap[domain]
	labels := make([]string, 0, len(reqs))
	values := make([]int, 0, len(reqs))

	have := make([]string, len(skills))
	for i, s := range skills {
		have[i] = strings.ToLower(s)
	}

	for _, r := range reqs {
		labels = append(labels, r)
		values = append(values, fitValue(strings.ToLower(r), have))
	}
	return labels, values
}

func fitValue(req string, have []string) int {
	for _, s := range have {
		if s == req {
			return FitExact
		}
	}
	for _, part := range strings.Fields(req) {
		for _, s := range have {
			if strings.Contains(s, part) {
				return FitPartial
			}
		}
	}
	return FitNone
}

// CareerWeights spreads 100 evenly over careers. Each weight is rounded to
// one decimal and the last absorbs the remainder, so the total is exactly
// 100.0. Work is done in tenths to keep the sum exact.
func CareerWeights(careers []string) []CareerWeight {
	out := make([]CareerWeight, 0, len(careers))
	n := len(careers)
	if n == 0 {
		return out
	}
	even := int(math.RoundToEven(1000.0 / float64(n)))
	last := 1000 - even*(n-1)
	for i, c := range careers {
		tenths := even
		if i == n-1 {
			tenths = last
		}
		out = append(out, CareerWeight{Career: c, Weight: float64(tenths) / 10})
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

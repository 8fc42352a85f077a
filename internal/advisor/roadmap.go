package advisor

import "github.com/kirubha-07/elix-career-advisor/internal/dataset"

type RoadmapStep struct {
	Step string `json:"step"`
	Desc string `json:"desc"`
}

// FallbackDomain is used for domains with no roadmap of their own.
const FallbackDomain = "Data"

var roadmaps = map[string][]RoadmapStep{
	"AI": {
		{Step: "Learn Python + ML basics", Desc: "Cover Python, statistics, and ML frameworks"},
		{Step: "Deep Learning Projects", Desc: "Work on CNN, NLP projects"},
		{Step: "Internship in AI/ML", Desc: "Apply AI concepts in real-world tasks"},
		{Step: "Certifications", Desc: "TensorFlow, AWS ML Specialty"},
		{Step: "Placement Prep", Desc: "Mock interviews + case studies"},
	},
	"Cybersecurity": {
		{Step: "Networking + OS Fundamentals", Desc: "Linux, Windows security basics"},
		{Step: "Hands-on Projects", Desc: "Firewalls, intrusion detection labs"},
		{Step: "Internship in Security", Desc: "SOC or PenTest roles"},
		{Step: "Certifications", Desc: "CEH, CompTIA Security+"},
		{Step: "Placement Prep", Desc: "CTF challenges, resume building"},
	},
	"Data": {
		{Step: "Excel + SQL Mastery", Desc: "Learn query optimization & reporting"},
		{Step: "Visualization Projects", Desc: "Power BI / Tableau dashboards"},
		{Step: "Internship in Data Analytics", Desc: "Business Analyst or Data Analyst roles"},
		{Step: "Certifications", Desc: "Google Data Analytics, Power BI Cert"},
		{Step: "Placement Prep", Desc: "Case study solving, mock interviews"},
	},
	"Web Development": {
		{Step: "Frontend Skills", Desc: "Master HTML, CSS, JavaScript"},
		{Step: "Backend Basics", Desc: "Learn Node.js, FastAPI, or Django"},
		{Step: "Internship in Web Dev", Desc: "Work as a frontend or full-stack intern"},
		{Step: "Certifications", Desc: "ReactJS, AWS Developer"},
		{Step: "Placement Prep", Desc: "LeetCode practice, mock interviews"},
	},
}

var defaultInternships = map[string][]string{
	"AI":              {"AI Intern at Google", "ML Intern at TCS"},
	"Cybersecurity":   {"SOC Analyst Intern", "Network Security Intern"},
	"Data":            {"Analytics Intern at Deloitte", "BI Developer Intern at Infosys"},
	"Web Development": {"Frontend Intern at Startup", "Full-Stack Intern at Wipro"},
}

var defaultCertifications = map[string][]string{
	"AI":              {"AWS ML Specialty", "TensorFlow Developer"},
	"Cybersecurity":   {"CEH", "CompTIA Security+"},
	"Data":            {"Google Data Analytics", "Power BI Certification"},
	"Web Development": {"ReactJS Certification", "AWS Developer Associate"},
}

// SelectRoadmap returns a copy of the domain's roadmap, or the Data roadmap
// for unknown domains.
func SelectRoadmap(domain string) []RoadmapStep {
	steps, ok := roadmaps[domain]
	if !ok {
		steps = roadmaps[FallbackDomain]
	}
	return append([]RoadmapStep(nil), steps...)
}

func Internships(r dataset.StudentRecord) []string {
	return orDefault(r.Internships, defaultInternships[r.InterestedDomain])
}

func Certifications(r dataset.StudentRecord) []string {
	return orDefault(r.Certifications, defaultCertifications[r.InterestedDomain])
}

func orDefault(own, fallback []string) []string {
	if len(own) > 0 {
		return append([]string(nil), own...)
	}
	return append([]string{}, fallback...)
}

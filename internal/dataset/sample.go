package dataset

// sampleRows seeds a missing dataset file.
var sampleRows = [][]string{
	{"1001", "Aishwarya Iyer", "9.06", "95", "92", "Excel;Power BI;NumPy;JavaScript;SQL", "Data",
		"Data Analyst;Business Analyst;Data Scientist;BI Developer",
		"Analytics Intern at X;BI Intern at Y", "Power BI Cert;Excel Advanced"},
	{"1002", "Aarav Kumar", "8.2", "88", "86", "Python;Machine Learning;SQL", "AI",
		"ML Engineer;Data Scientist;AI Researcher;MLOps Engineer",
		"ML Intern at Z", "ML Nanodegree;Python Cert"},
	{"1003", "Priya Sharma", "7.8", "85", "83", "Java;Networks;Security", "Cybersecurity",
		"Security Engineer;SOC Analyst;Penetration Tester;Security Consultant",
		"Security Intern at Q", "CEH;Network+"},
}

package model

import "time"

// ReportGenerator is the generated-by label stamped on every QA report.
const ReportGenerator = "QA Bug Checker AI"

// DefaultRecommendations are attached to every generated report.
var DefaultRecommendations = []string{
	"Focus on critical and high severity bugs",
	"Increase test coverage in failing areas",
	"Review and update test cases regularly",
}

// QAReport is an immutable snapshot of bug and test metrics.
type QAReport struct {
	ID              int64     `json:"id,string"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	BugsFound       int       `json:"bugsFound"`
	TestsRun        int       `json:"testsRun"`
	TestsPassed     int       `json:"testsPassed"`
	TestsFailed     int       `json:"testsFailed"`
	Coverage        int       `json:"coverage"`
	AIInsights      *string   `json:"aiInsights,omitempty"`
	Recommendations []string  `json:"recommendations"`
	ReportDate      time.Time `json:"reportDate"`
	GeneratedBy     string    `json:"generatedBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

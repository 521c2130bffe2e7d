package model

import "time"

type (
	TestStatus   string
	TestPriority string
)

const (
	TestStatusPass    TestStatus = "pass"
	TestStatusFail    TestStatus = "fail"
	TestStatusPending TestStatus = "pending"
)

const (
	TestPriorityLow    TestPriority = "low"
	TestPriorityMedium TestPriority = "medium"
	TestPriorityHigh   TestPriority = "high"
)

type TestCase struct {
	ID             int64        `json:"id,string"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Steps          []string     `json:"steps"`
	ExpectedResult string       `json:"expectedResult"`
	Category       string       `json:"category"`
	Priority       TestPriority `json:"priority"`
	Automated      bool         `json:"automated"`
	Status         TestStatus   `json:"status"`
	LastRun        *time.Time   `json:"lastRun,omitempty"`
	RelatedBugs    IDs          `json:"relatedBugs"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type TestCaseFilter struct {
	Category *string
	Status   *TestStatus
}

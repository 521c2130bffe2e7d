package model

import "time"

type (
	BugStatus   string
	Severity    string
	BugPriority string
)

const (
	BugStatusOpen       BugStatus = "open"
	BugStatusInProgress BugStatus = "in-progress"
	BugStatusResolved   BugStatus = "resolved"
	BugStatusClosed     BugStatus = "closed"
)

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const (
	BugPriorityLow    BugPriority = "low"
	BugPriorityMedium BugPriority = "medium"
	BugPriorityHigh   BugPriority = "high"
	BugPriorityUrgent BugPriority = "urgent"
)

// UnknownReporter is recorded when the creating user has no email.
const UnknownReporter = "Unknown"

// Bug is a reported defect. An empty Status means the record carries no status.
type Bug struct {
	ID             int64       `json:"id,string"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Severity       Severity    `json:"severity"`
	Priority       BugPriority `json:"priority"`
	Status         BugStatus   `json:"status,omitempty"`
	Assignee       *string     `json:"assignee,omitempty"`
	Reporter       string      `json:"reporter"`
	Environment    string      `json:"environment"`
	Steps          []string    `json:"steps"`
	ExpectedResult string      `json:"expectedResult"`
	ActualResult   string      `json:"actualResult"`
	Tags           []string    `json:"tags"`
	AIAnalysis     *string     `json:"aiAnalysis,omitempty"`
	SuggestedFix   *string     `json:"suggestedFix,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// HasAssignee reports whether someone is responsible for the bug.
func (b Bug) HasAssignee() bool {
	return b.Assignee != nil && *b.Assignee != ""
}

// AssigneeName returns the assignee or "" when unassigned.
func (b Bug) AssigneeName() string {
	if b.Assignee == nil {
		return ""
	}
	return *b.Assignee
}

// SharesTagWith reports whether the two bugs have at least one tag in common.
func (b Bug) SharesTagWith(other Bug) bool {
	for _, t := range b.Tags {
		for _, o := range other.Tags {
			if t == o {
				return true
			}
		}
	}
	return false
}

// BugFilter narrows a bug listing. Nil fields match everything; set fields are ANDed.
type BugFilter struct {
	Status   *BugStatus
	Severity *Severity
	Assignee *string
}

// BugUpdate is a partial update. Nil fields are left unchanged.
type BugUpdate struct {
	Title       *string
	Description *string
	Status      *BugStatus
	Assignee    *string
	Severity    *Severity
	Priority    *BugPriority
}

func (u BugUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.Assignee == nil && u.Severity == nil && u.Priority == nil
}

type BugStats struct {
	Total           int64 `json:"total"`
	Open            int64 `json:"open"`
	InProgress      int64 `json:"inProgress"`
	Resolved        int64 `json:"resolved"`
	Closed          int64 `json:"closed"`
	Unassigned      int64 `json:"unassigned"`
	Critical        int64 `json:"critical"`
	MissingStatus   int64 `json:"missingStatus"`
	MissingAssignee int64 `json:"missingAssignee"`
}

package model

type DuplicateType string

const (
	DuplicateTypeTitle       DuplicateType = "title"
	DuplicateTypeDescription DuplicateType = "description"
)

type BugRef struct {
	ID    int64  `json:"id,string"`
	Title string `json:"title"`
}

// DuplicateGroup is a set of bugs that look like the same report.
// Similarity is only set for description matches.
type DuplicateGroup struct {
	Type       DuplicateType `json:"type"`
	Value      string        `json:"value"`
	Bugs       []BugRef      `json:"bugs"`
	Similarity *float64      `json:"similarity,omitempty"`
}

// BugIssues lists the data-quality problems found on one bug.
type BugIssues struct {
	BugID  int64    `json:"bugId,string"`
	Title  string   `json:"title"`
	Issues []string `json:"issues"`
}

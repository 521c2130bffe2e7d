package triage

import (
	"strings"
	"unicode/utf8"

	"github.com/UDARAS8/bugtracker/internal/model"
)

const (
	IssueTitle       = "Title is missing or too short."
	IssueDescription = "Description is missing or too brief."
	IssueAssignee    = "No responsible person assigned."
	IssueStatus      = "Status is missing."

	minTitleLen       = 5
	minDescriptionLen = 10
)

// ScanForIssues runs every data-quality check on bug and returns the failures in a fixed order.
func ScanForIssues(bug model.Bug) []string {
	issues := make([]string, 0, 4)

	if utf8.RuneCountInString(strings.TrimSpace(bug.Title)) < minTitleLen {
		issues = append(issues, IssueTitle)
	}
	if utf8.RuneCountInString(strings.TrimSpace(bug.Description)) < minDescriptionLen {
		issues = append(issues, IssueDescription)
	}
	if !bug.HasAssignee() {
		issues = append(issues, IssueAssignee)
	}
	if bug.Status == "" {
		issues = append(issues, IssueStatus)
	}

	return issues
}

// ScanAll returns an entry for every bug that has at least one issue, in listing order.
func ScanAll(bugs []model.Bug) []model.BugIssues {
	out := make([]model.BugIssues, 0)
	for _, b := range bugs {
		if issues := ScanForIssues(b); len(issues) > 0 {
			out = append(out, model.BugIssues{BugID: b.ID, Title: b.Title, Issues: issues})
		}
	}
	return out
}

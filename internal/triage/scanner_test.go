package triage_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/triage"
)

var _ = Describe("ScanForIssues", func() {
	var complete model.Bug

	BeforeEach(func() {
		complete = model.Bug{
			ID:          1,
			Title:       "Checkout button unresponsive",
			Description: "Clicking checkout does nothing on Safari.",
			Status:      model.BugStatusOpen,
			Assignee:    strPtr("alice@x.com"),
		}
	})

	It("returns nothing for a well-formed bug", func() {
		Expect(triage.ScanForIssues(complete)).To(BeEmpty())
	})

	It("reports title, description and assignee problems in order", func() {
		b := model.Bug{Title: "Bug", Description: "short", Status: model.BugStatusOpen}

		Expect(triage.ScanForIssues(b)).To(Equal([]string{
			"Title is missing or too short.",
			"Description is missing or too brief.",
			"No responsible person assigned.",
		}))
	})

	It("measures trimmed length", func() {
		complete.Title = "   abcd   "
		Expect(triage.ScanForIssues(complete)).To(Equal([]string{triage.IssueTitle}))

		complete.Title = "abcde"
		Expect(triage.ScanForIssues(complete)).To(BeEmpty())
	})

	It("treats an empty assignee as unassigned", func() {
		complete.Assignee = strPtr("")
		Expect(triage.ScanForIssues(complete)).To(Equal([]string{triage.IssueAssignee}))
	})

	It("reports a missing status last", func() {
		b := model.Bug{}
		Expect(triage.ScanForIssues(b)).To(Equal([]string{
			triage.IssueTitle,
			triage.IssueDescription,
			triage.IssueAssignee,
			triage.IssueStatus,
		}))
	})
})

var _ = Describe("ScanAll", func() {
	It("keeps only bugs with issues", func() {
		good := model.Bug{
			ID:          1,
			Title:       "Checkout button unresponsive",
			Description: "Clicking checkout does nothing.",
			Status:      model.BugStatusOpen,
			Assignee:    strPtr("alice@x.com"),
		}
		bad := model.Bug{ID: 2, Title: "Bug", Description: "Long enough description", Status: model.BugStatusOpen, Assignee: strPtr("bob")}

		out := triage.ScanAll([]model.Bug{good, bad})

		Expect(out).To(Equal([]model.BugIssues{
			{BugID: 2, Title: "Bug", Issues: []string{triage.IssueTitle}},
		}))
	})
})

func strPtr(s string) *string { return &s }

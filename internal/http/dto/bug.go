package dto

import (
	"strings"

	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type CreateBugRequest struct {
	Title          string   `json:"title" binding:"required,min=1,max=500"`
	Description    string   `json:"description" binding:"max=20000"`
	Severity       string   `json:"severity" binding:"required,oneof=low medium high critical"`
	Priority       string   `json:"priority" binding:"required,oneof=low medium high urgent"`
	Assignee       *string  `json:"assignee,omitempty" binding:"omitempty,max=255"`
	Environment    string   `json:"environment" binding:"max=500"`
	Steps          []string `json:"steps"`
	ExpectedResult string   `json:"expectedResult"`
	ActualResult   string   `json:"actualResult"`
	Tags           []string `json:"tags" binding:"dive,min=1,max=64"`
}

func (r CreateBugRequest) ToInput() service.CreateBugInput {
	return service.CreateBugInput{
		Title:          r.Title,
		Description:    r.Description,
		Severity:       model.Severity(r.Severity),
		Priority:       model.BugPriority(r.Priority),
		Assignee:       r.Assignee,
		Environment:    r.Environment,
		Steps:          nonNil(r.Steps),
		ExpectedResult: r.ExpectedResult,
		ActualResult:   r.ActualResult,
		Tags:           nonNil(r.Tags),
	}
}

// UpdateBugRequest is a partial update; omitted fields are left unchanged.
type UpdateBugRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=500"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=20000"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=open in-progress resolved closed"`
	Assignee    *string `json:"assignee,omitempty" binding:"omitempty,max=255"`
	Severity    *string `json:"severity,omitempty" binding:"omitempty,oneof=low medium high critical"`
	Priority    *string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
}

func (r UpdateBugRequest) ToModel() model.BugUpdate {
	return model.BugUpdate{
		Title:       r.Title,
		Description: r.Description,
		Status:      convertPtr[model.BugStatus](r.Status),
		Assignee:    r.Assignee,
		Severity:    convertPtr[model.Severity](r.Severity),
		Priority:    convertPtr[model.BugPriority](r.Priority),
	}
}

type UpdateBugStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in-progress resolved closed"`
}

type ListBugsQuery struct {
	Status   *string `form:"status" binding:"omitempty,oneof=open in-progress resolved closed"`
	Severity *string `form:"severity" binding:"omitempty,oneof=low medium high critical"`
	Assignee *string `form:"assignee" binding:"omitempty,max=255"`
}

func (q ListBugsQuery) ToFilter() model.BugFilter {
	return model.BugFilter{
		Status:   convertPtr[model.BugStatus](q.Status),
		Severity: convertPtr[model.Severity](q.Severity),
		Assignee: nonBlank(q.Assignee),
	}
}

type SearchBugsQuery struct {
	Term   string  `form:"q"`
	Status *string `form:"status" binding:"omitempty,oneof=open in-progress resolved closed"`
}

func (q SearchBugsQuery) StatusFilter() *model.BugStatus {
	return convertPtr[model.BugStatus](q.Status)
}

func convertPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

// nonBlank drops an empty query value so "?assignee=" means no filter.
func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package dto

import (
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type CreateTestCaseRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=500"`
	Description    string   `json:"description" binding:"max=20000"`
	Steps          []string `json:"steps"`
	ExpectedResult string   `json:"expectedResult"`
	Category       string   `json:"category" binding:"required,min=1,max=100"`
	Priority       string   `json:"priority" binding:"required,oneof=low medium high"`
	Automated      bool     `json:"automated"`
}

func (r CreateTestCaseRequest) ToInput() service.CreateTestCaseInput {
	return service.CreateTestCaseInput{
		Name:           r.Name,
		Description:    r.Description,
		Steps:          nonNil(r.Steps),
		ExpectedResult: r.ExpectedResult,
		Category:       r.Category,
		Priority:       model.TestPriority(r.Priority),
		Automated:      r.Automated,
	}
}

type UpdateTestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pass fail pending"`
}

type ListTestCasesQuery struct {
	Category *string `form:"category" binding:"omitempty,max=100"`
	Status   *string `form:"status" binding:"omitempty,oneof=pass fail pending"`
}

func (q ListTestCasesQuery) ToFilter() model.TestCaseFilter {
	return model.TestCaseFilter{
		Category: nonBlank(q.Category),
		Status:   convertPtr[model.TestStatus](q.Status),
	}
}

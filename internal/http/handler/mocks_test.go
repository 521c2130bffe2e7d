package handler_test

import (
	"context"

	"github.com/UDARAS8/bugtracker/common/llm"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type mockBugService struct {
	listFn         func(ctx context.Context, filter model.BugFilter) ([]model.Bug, error)
	getFn          func(ctx context.Context, id int64) (*model.Bug, error)
	searchFn       func(ctx context.Context, term string, status *model.BugStatus) ([]model.Bug, error)
	createFn       func(ctx context.Context, actor *model.User, input service.CreateBugInput) (*model.Bug, error)
	updateFn       func(ctx context.Context, actor *model.User, id int64, update model.BugUpdate) (*model.Bug, error)
	updateStatusFn func(ctx context.Context, actor *model.User, id int64, status model.BugStatus) (*model.Bug, error)
	deleteFn       func(ctx context.Context, actor *model.User, id int64) error

	calls int
}

func (m *mockBugService) List(ctx context.Context, filter model.BugFilter) ([]model.Bug, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.Bug{}, nil
}

func (m *mockBugService) Get(ctx context.Context, id int64) (*model.Bug, error) {
	m.calls++
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, service.ErrBugNotFound
}

func (m *mockBugService) Search(ctx context.Context, term string, status *model.BugStatus) ([]model.Bug, error) {
	m.calls++
	if m.searchFn != nil {
		return m.searchFn(ctx, term, status)
	}
	return []model.Bug{}, nil
}

func (m *mockBugService) Create(ctx context.Context, actor *model.User, input service.CreateBugInput) (*model.Bug, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, actor, input)
	}
	return &model.Bug{ID: 1, Title: input.Title}, nil
}

func (m *mockBugService) Update(ctx context.Context, actor *model.User, id int64, update model.BugUpdate) (*model.Bug, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, id, update)
	}
	return &model.Bug{ID: id}, nil
}

func (m *mockBugService) UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.BugStatus) (*model.Bug, error) {
	m.calls++
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, actor, id, status)
	}
	return &model.Bug{ID: id, Status: status}, nil
}

func (m *mockBugService) Delete(ctx context.Context, actor *model.User, id int64) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, id)
	}
	return nil
}

func (m *mockBugService) ListAssignees(context.Context) ([]string, error) {
	m.calls++
	return []string{}, nil
}

func (m *mockBugService) Stats(context.Context) (*model.BugStats, error) {
	m.calls++
	return &model.BugStats{}, nil
}

func (m *mockBugService) DetectDuplicates(context.Context) ([]model.DuplicateGroup, error) {
	m.calls++
	return []model.DuplicateGroup{}, nil
}

type mockAnalysisService struct {
	analyzeFn         func(ctx context.Context, actor *model.User, bugID int64) (string, error)
	suggestAssigneeFn func(ctx context.Context, actor *model.User, bugID int64) (llm.Result[service.AssigneeSuggestion], error)
	suggestTestsFn    func(ctx context.Context, actor *model.User, feature, description string) (llm.Result[[]service.TestCaseSuggestion], error)
}

func (m *mockAnalysisService) AnalyzeBug(ctx context.Context, actor *model.User, bugID int64) (string, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, actor, bugID)
	}
	return "", nil
}

func (m *mockAnalysisService) ScanAllBugs(context.Context, *model.User) (*service.ScanResult, error) {
	return &service.ScanResult{}, nil
}

func (m *mockAnalysisService) SuggestAssigneeAndStatus(ctx context.Context, actor *model.User, bugID int64) (llm.Result[service.AssigneeSuggestion], error) {
	if m.suggestAssigneeFn != nil {
		return m.suggestAssigneeFn(ctx, actor, bugID)
	}
	return llm.Result[service.AssigneeSuggestion]{}, nil
}

func (m *mockAnalysisService) GenerateBugSummary(context.Context, *model.User, int64) (string, error) {
	return "", nil
}

func (m *mockAnalysisService) GenerateQAReport(context.Context, *model.User) (*service.ReportResult, error) {
	return &service.ReportResult{}, nil
}

func (m *mockAnalysisService) SuggestTestCases(ctx context.Context, actor *model.User, feature, description string) (llm.Result[[]service.TestCaseSuggestion], error) {
	if m.suggestTestsFn != nil {
		return m.suggestTestsFn(ctx, actor, feature, description)
	}
	return llm.Result[[]service.TestCaseSuggestion]{}, nil
}

type mockExportService struct {
	bugsFn func(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error)
}

func (m *mockExportService) Bugs(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error) {
	if m.bugsFn != nil {
		return m.bugsFn(ctx, format)
	}
	return nil, service.ErrNoData
}

func (m *mockExportService) TestCases(context.Context, service.ExportFormat) (*service.ExportFile, error) {
	return nil, service.ErrNoData
}

func (m *mockExportService) Reports(context.Context, service.ExportFormat) (*service.ExportFile, error) {
	return nil, service.ErrNoData
}

type mockAuthService struct {
	validateFn func(ctx context.Context, sessionID int64) (*model.User, error)
}

func (m *mockAuthService) Enabled() bool { return true }

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	return "https://auth.example.com/?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(context.Context, string) (*model.User, *model.Session, error) {
	return nil, nil, service.ErrInvalidCode
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, sessionID)
	}
	return nil, service.ErrSessionExpired
}

func (m *mockAuthService) Logout(context.Context, int64) error {
	return nil
}

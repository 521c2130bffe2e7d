package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/UDARAS8/bugtracker/common/id"
	"github.com/UDARAS8/bugtracker/common/llm"
	"github.com/UDARAS8/bugtracker/common/logger"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/queue"
	"github.com/UDARAS8/bugtracker/internal/store"
	"github.com/UDARAS8/bugtracker/internal/triage"
)

const (
	analysisTemperature = 0.3
	testCaseTemperature = 0.4

	similarBugLimit = 3

	analysisFailed         = "Analysis failed"
	reportGenerationFailed = "Report generation failed"
	reportTitleDateLayout  = "1/2/2006"
)

type ScanSummary struct {
	TotalIssues        int `json:"totalIssues"`
	DuplicateCount     int `json:"duplicateCount"`
	UnassignedCount    int `json:"unassignedCount"`
	MissingStatusCount int `json:"missingStatusCount"`
}

type ScanResult struct {
	TotalBugs         int                    `json:"totalBugs"`
	Issues            []model.BugIssues      `json:"issues"`
	Duplicates        []model.DuplicateGroup `json:"duplicates"`
	AIRecommendations string                 `json:"aiRecommendations"`
	Summary           ScanSummary            `json:"summary"`
}

type AssigneeSuggestion struct {
	SuggestedStatus   string `json:"suggestedStatus"`
	SuggestedAssignee string `json:"suggestedAssignee"`
	Reasoning         string `json:"reasoning"`
}

type TestCaseSuggestion struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Steps          []string `json:"steps"`
	ExpectedResult string   `json:"expectedResult"`
	Priority       string   `json:"priority"`
	Category       string   `json:"category"`
}

type ReportResult struct {
	ReportID int64  `json:"reportId,string"`
	Insights string `json:"insights"`
}

// AnalysisService runs the assistant operations. Every method needs an
// authenticated actor and a configured completion client.
type AnalysisService interface {
	AnalyzeBug(ctx context.Context, actor *model.User, bugID int64) (string, error)
	ScanAllBugs(ctx context.Context, actor *model.User) (*ScanResult, error)
	SuggestAssigneeAndStatus(ctx context.Context, actor *model.User, bugID int64) (llm.Result[AssigneeSuggestion], error)
	GenerateBugSummary(ctx context.Context, actor *model.User, bugID int64) (string, error)
	GenerateQAReport(ctx context.Context, actor *model.User) (*ReportResult, error)
	SuggestTestCases(ctx context.Context, actor *model.User, feature, description string) (llm.Result[[]TestCaseSuggestion], error)
}

type analysisService struct {
	bugs      store.BugStore
	testCases store.TestCaseStore
	reports   store.QAReportStore
	archive   store.ReportArchive // nil when archiving is disabled
	llm       llm.Client          // nil when no API key is configured
	producer  queue.Producer
	now       func() time.Time
}

func NewAnalysisService(
	bugs store.BugStore,
	testCases store.TestCaseStore,
	reports store.QAReportStore,
	archive store.ReportArchive,
	llmClient llm.Client,
	producer queue.Producer,
) AnalysisService {
	return &analysisService{
		bugs:      bugs,
		testCases: testCases,
		reports:   reports,
		archive:   archive,
		llm:       llmClient,
		producer:  producer,
		now:       time.Now,
	}
}

func (s *analysisService) ready(actor *model.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if s.llm == nil {
		return ErrAIUnavailable
	}
	return nil
}

func (s *analysisService) AnalyzeBug(ctx context.Context, actor *model.User, bugID int64) (string, error) {
	if err := s.ready(actor); err != nil {
		return "", err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{BugID: &bugID, UserID: &actor.ID})
	bug, err := s.getBug(ctx, bugID)
	if err != nil {
		return "", err
	}

	prompt, err := renderPrompt(analyzeBugPrompt, bug)
	if err != nil {
		return "", err
	}
	reply, err := s.complete(ctx, "analyze_bug", llm.Request{
		UserPrompt:  prompt,
		Temperature: llm.Temp(analysisTemperature),
	})
	if err != nil {
		return "", err
	}

	analysis := reply
	if analysis == "" {
		analysis = analysisFailed
	}
	if err := s.bugs.SetAIAnalysis(ctx, bugID, analysis); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrBugNotFound
		}
		return "", fmt.Errorf("saving analysis: %w", err)
	}

	slog.InfoContext(ctx, "bug analyzed", "analysis_len", len(analysis))
	publish(ctx, s.producer, queue.Event{Type: queue.EventBugAnalyzed, EntityID: bugID, ActorID: actorID(actor)})
	return reply, nil
}

func (s *analysisService) ScanAllBugs(ctx context.Context, actor *model.User) (*ScanResult, error) {
	if err := s.ready(actor); err != nil {
		return nil, err
	}

	bugs, err := s.bugs.List(ctx, model.BugFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing bugs: %w", err)
	}

	issues := triage.ScanAll(bugs)
	duplicates := triage.DetectDuplicates(creationOrder(bugs))

	data := scanPromptData{
		TotalBugs:  len(bugs),
		Issues:     issues,
		Duplicates: duplicates,
	}
	missingStatus := 0
	for _, b := range bugs {
		switch b.Status {
		case model.BugStatusOpen:
			data.Open++
		case model.BugStatusInProgress:
			data.InProgress++
		case model.BugStatusResolved:
			data.Resolved++
		case model.BugStatusClosed:
			data.Closed++
		case "":
			missingStatus++
		}
		if !b.HasAssignee() {
			data.Unassigned++
		}
	}

	prompt, err := renderPrompt(scanBugsPrompt, data)
	if err != nil {
		return nil, err
	}
	reply, err := s.complete(ctx, "scan_bugs", llm.Request{
		UserPrompt:  prompt,
		Temperature: llm.Temp(analysisTemperature),
	})
	if err != nil {
		return nil, err
	}

	totalIssues := 0
	for _, bi := range issues {
		totalIssues += len(bi.Issues)
	}

	slog.InfoContext(ctx, "bug scan completed",
		"total_bugs", len(bugs),
		"bugs_with_issues", len(issues),
		"duplicate_groups", len(duplicates))

	return &ScanResult{
		TotalBugs:         len(bugs),
		Issues:            issues,
		Duplicates:        duplicates,
		AIRecommendations: reply,
		Summary: ScanSummary{
			TotalIssues:        totalIssues,
			DuplicateCount:     len(duplicates),
			UnassignedCount:    data.Unassigned,
			MissingStatusCount: missingStatus,
		},
	}, nil
}

func (s *analysisService) SuggestAssigneeAndStatus(ctx context.Context, actor *model.User, bugID int64) (llm.Result[AssigneeSuggestion], error) {
	var none llm.Result[AssigneeSuggestion]
	if err := s.ready(actor); err != nil {
		return none, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{BugID: &bugID, UserID: &actor.ID})
	bug, err := s.getBug(ctx, bugID)
	if err != nil {
		return none, err
	}

	assignees, err := s.bugs.ListAssignees(ctx)
	if err != nil {
		return none, fmt.Errorf("listing assignees: %w", err)
	}
	all, err := s.bugs.List(ctx, model.BugFilter{})
	if err != nil {
		return none, fmt.Errorf("listing bugs: %w", err)
	}

	prompt, err := renderPrompt(suggestAssigneePrompt, assigneePromptData{
		Bug:       *bug,
		Assignees: assignees,
		Similar:   similarBugs(*bug, all, similarBugLimit),
	})
	if err != nil {
		return none, err
	}
	reply, err := s.complete(ctx, "suggest_assignee", llm.Request{
		UserPrompt:  prompt,
		Temperature: llm.Temp(analysisTemperature),
		SchemaName:  "assignee_suggestion",
		Schema:      llm.GenerateSchema[AssigneeSuggestion](),
	})
	if err != nil {
		return none, err
	}

	result := llm.ParseJSON[AssigneeSuggestion](reply, "{}")
	if !result.OK() {
		slog.WarnContext(ctx, "assignee suggestion was not valid JSON, returning raw reply")
	}
	return result, nil
}

func (s *analysisService) GenerateBugSummary(ctx context.Context, actor *model.User, bugID int64) (string, error) {
	if err := s.ready(actor); err != nil {
		return "", err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{BugID: &bugID, UserID: &actor.ID})
	bug, err := s.getBug(ctx, bugID)
	if err != nil {
		return "", err
	}

	prompt, err := renderPrompt(bugSummaryPrompt, bug)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, "bug_summary", llm.Request{
		UserPrompt:  prompt,
		Temperature: llm.Temp(analysisTemperature),
	})
}

func (s *analysisService) GenerateQAReport(ctx context.Context, actor *model.User) (*ReportResult, error) {
	if err := s.ready(actor); err != nil {
		return nil, err
	}

	bugs, err := s.bugs.List(ctx, model.BugFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing bugs: %w", err)
	}
	tests, err := s.testCases.List(ctx, model.TestCaseFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing test cases: %w", err)
	}

	data := reportPromptData{TotalBugs: len(bugs), TotalTests: len(tests)}
	for _, b := range bugs {
		if b.Status == model.BugStatusOpen {
			data.OpenBugs++
		}
		switch b.Severity {
		case model.SeverityCritical:
			data.Critical++
		case model.SeverityHigh:
			data.High++
		case model.SeverityMedium:
			data.Medium++
		case model.SeverityLow:
			data.Low++
		}
	}
	for _, tc := range tests {
		switch tc.Status {
		case model.TestStatusPass:
			data.PassedTests++
		case model.TestStatusFail:
			data.FailedTests++
		}
	}

	prompt, err := renderPrompt(qaReportPrompt, data)
	if err != nil {
		return nil, err
	}
	insights, err := s.complete(ctx, "qa_report", llm.Request{
		UserPrompt:  prompt,
		Temperature: llm.Temp(analysisTemperature),
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	report := &model.QAReport{
		ID:              id.New(),
		Title:           "QA Report - " + now.Format(reportTitleDateLayout),
		Summary:         insights,
		BugsFound:       data.TotalBugs,
		TestsRun:        data.TotalTests,
		TestsPassed:     data.PassedTests,
		TestsFailed:     data.FailedTests,
		Coverage:        coverage(data.PassedTests, data.TotalTests),
		Recommendations: DefaultRecommendations(),
		ReportDate:      now,
		GeneratedBy:     model.ReportGenerator,
	}
	if insights == "" {
		report.Summary = reportGenerationFailed
	} else {
		report.AIInsights = &insights
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{ReportID: &report.ID, UserID: &actor.ID})
	if err := s.reports.Create(ctx, report); err != nil {
		slog.ErrorContext(ctx, "failed to save qa report", "error", err)
		return nil, fmt.Errorf("creating report: %w", err)
	}

	if s.archive != nil {
		ref, err := s.archive.Write(ctx, *report)
		if err != nil {
			slog.WarnContext(ctx, "failed to archive qa report", "error", err)
		} else {
			slog.DebugContext(ctx, "qa report archived", "path", ref.Path, "sha256", ref.SHA256)
		}
	}

	slog.InfoContext(ctx, "qa report generated",
		"bugs_found", report.BugsFound,
		"tests_run", report.TestsRun,
		"coverage", report.Coverage)
	publish(ctx, s.producer, queue.Event{Type: queue.EventReportGenerated, EntityID: report.ID, ActorID: actorID(actor)})

	return &ReportResult{ReportID: report.ID, Insights: insights}, nil
}

func (s *analysisService) SuggestTestCases(ctx context.Context, actor *model.User, feature, description string) (llm.Result[[]TestCaseSuggestion], error) {
	var none llm.Result[[]TestCaseSuggestion]
	if err := s.ready(actor); err != nil {
		return none, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &actor.ID})
	prompt, err := renderPrompt(suggestTestCasesPrompt, testCasePromptData{Feature: feature, Description: description})
	if err != nil {
		return none, err
	}
	reply, err := s.complete(ctx, "suggest_test_cases", llm.Request{
		UserPrompt:  prompt,
		Temperature: llm.Temp(testCaseTemperature),
	})
	if err != nil {
		return none, err
	}

	result := llm.ParseJSON[[]TestCaseSuggestion](reply, "[]")
	if !result.OK() {
		slog.WarnContext(ctx, "test case suggestions were not valid JSON, returning raw reply")
	}
	return result, nil
}

func (s *analysisService) getBug(ctx context.Context, bugID int64) (*model.Bug, error) {
	bug, err := s.bugs.GetByID(ctx, bugID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBugNotFound
		}
		return nil, fmt.Errorf("getting bug: %w", err)
	}
	return bug, nil
}

func (s *analysisService) complete(ctx context.Context, op string, req llm.Request) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Operation: &op, Component: "bugtracker.service.analysis"})

	start := time.Now()
	resp, err := s.llm.Complete(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "completion failed", "error", err)
		return "", fmt.Errorf("%s completion: %w", op, err)
	}

	slog.InfoContext(ctx, "completion finished",
		"model", s.llm.Model(),
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.PromptTokens,
		"completion_tokens", resp.CompletionTokens)
	return resp.Content, nil
}

// similarBugs returns up to limit bugs, in listing order, that share a tag or
// the severity of bug. The bug itself is skipped.
func similarBugs(bug model.Bug, all []model.Bug, limit int) []model.Bug {
	out := make([]model.Bug, 0, limit)
	for _, b := range all {
		if len(out) == limit {
			break
		}
		if b.ID == bug.ID {
			continue
		}
		if b.Severity == bug.Severity || b.SharesTagWith(bug) {
			out = append(out, b)
		}
	}
	return out
}

// coverage is the pass rate as a whole percentage, 0 when nothing ran.
func coverage(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// DefaultRecommendations returns a copy of the fixed report recommendations.
func DefaultRecommendations() []string {
	return append([]string(nil), model.DefaultRecommendations...)
}

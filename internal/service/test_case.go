package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UDARAS8/bugtracker/common/id"
	"github.com/UDARAS8/bugtracker/common/logger"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/queue"
	"github.com/UDARAS8/bugtracker/internal/store"
)

type CreateTestCaseInput struct {
	Name           string
	Description    string
	Steps          []string
	ExpectedResult string
	Category       string
	Priority       model.TestPriority
	Automated      bool
}

type TestCaseService interface {
	List(ctx context.Context, filter model.TestCaseFilter) ([]model.TestCase, error)
	Get(ctx context.Context, id int64) (*model.TestCase, error)
	Create(ctx context.Context, actor *model.User, input CreateTestCaseInput) (*model.TestCase, error)
	UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.TestStatus) (*model.TestCase, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type testCaseService struct {
	testCases store.TestCaseStore
	producer  queue.Producer
}

func NewTestCaseService(testCases store.TestCaseStore, producer queue.Producer) TestCaseService {
	return &testCaseService{
		testCases: testCases,
		producer:  producer,
	}
}

func (s *testCaseService) List(ctx context.Context, filter model.TestCaseFilter) ([]model.TestCase, error) {
	tcs, err := s.testCases.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing test cases: %w", err)
	}
	return tcs, nil
}

func (s *testCaseService) Get(ctx context.Context, id int64) (*model.TestCase, error) {
	tc, err := s.testCases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("getting test case: %w", err)
	}
	return tc, nil
}

// Create adds a pending test case with no run history.
func (s *testCaseService) Create(ctx context.Context, actor *model.User, input CreateTestCaseInput) (*model.TestCase, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	tc := &model.TestCase{
		ID:             id.New(),
		Name:           input.Name,
		Description:    input.Description,
		Steps:          input.Steps,
		ExpectedResult: input.ExpectedResult,
		Category:       input.Category,
		Priority:       input.Priority,
		Automated:      input.Automated,
		Status:         model.TestStatusPending,
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{TestCaseID: &tc.ID})
	if err := s.testCases.Create(ctx, tc); err != nil {
		slog.ErrorContext(ctx, "failed to create test case", "error", err)
		return nil, fmt.Errorf("creating test case: %w", err)
	}

	slog.InfoContext(ctx, "test case created", "category", tc.Category)
	publish(ctx, s.producer, queue.Event{Type: queue.EventTestCaseCreated, EntityID: tc.ID, ActorID: actorID(actor)})
	return tc, nil
}

// UpdateStatus records a run result and stamps the last-run time.
func (s *testCaseService) UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.TestStatus) (*model.TestCase, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{TestCaseID: &id})
	tc, err := s.testCases.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("updating test status: %w", err)
	}

	slog.InfoContext(ctx, "test case status updated", "status", status)
	publish(ctx, s.producer, queue.Event{
		Type:     queue.EventTestCaseStatusChanged,
		EntityID: id,
		ActorID:  actorID(actor),
		Status:   string(status),
	})
	return tc, nil
}

func (s *testCaseService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.testCases.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

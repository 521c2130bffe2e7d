package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/UDARAS8/bugtracker/common/id"
	"github.com/UDARAS8/bugtracker/common/logger"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/queue"
	"github.com/UDARAS8/bugtracker/internal/store"
	"github.com/UDARAS8/bugtracker/internal/triage"
)

// SearchLimit caps title search results.
const SearchLimit = 20

type CreateBugInput struct {
	Title          string
	Description    string
	Severity       model.Severity
	Priority       model.BugPriority
	Assignee       *string
	Environment    string
	Steps          []string
	ExpectedResult string
	ActualResult   string
	Tags           []string
}

type BugService interface {
	List(ctx context.Context, filter model.BugFilter) ([]model.Bug, error)
	Get(ctx context.Context, id int64) (*model.Bug, error)
	Search(ctx context.Context, term string, status *model.BugStatus) ([]model.Bug, error)
	Create(ctx context.Context, actor *model.User, input CreateBugInput) (*model.Bug, error)
	Update(ctx context.Context, actor *model.User, id int64, update model.BugUpdate) (*model.Bug, error)
	UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.BugStatus) (*model.Bug, error)
	Delete(ctx context.Context, actor *model.User, id int64) error
	ListAssignees(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*model.BugStats, error)
	DetectDuplicates(ctx context.Context) ([]model.DuplicateGroup, error)
}

type bugService struct {
	bugs     store.BugStore
	producer queue.Producer
}

func NewBugService(bugs store.BugStore, producer queue.Producer) BugService {
	return &bugService{
		bugs:     bugs,
		producer: producer,
	}
}

func (s *bugService) List(ctx context.Context, filter model.BugFilter) ([]model.Bug, error) {
	bugs, err := s.bugs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing bugs: %w", err)
	}
	return bugs, nil
}

func (s *bugService) Get(ctx context.Context, id int64) (*model.Bug, error) {
	bug, err := s.bugs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBugNotFound
		}
		return nil, fmt.Errorf("getting bug: %w", err)
	}
	return bug, nil
}

// Search matches title words. A blank term returns nothing.
func (s *bugService) Search(ctx context.Context, term string, status *model.BugStatus) ([]model.Bug, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.Bug{}, nil
	}
	bugs, err := s.bugs.Search(ctx, term, status, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("searching bugs: %w", err)
	}
	return bugs, nil
}

// Create files a new bug. Status always starts as open and the reporter is the
// actor's email.
func (s *bugService) Create(ctx context.Context, actor *model.User, input CreateBugInput) (*model.Bug, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	reporter := actor.Email
	if reporter == "" {
		reporter = model.UnknownReporter
	}

	bug := &model.Bug{
		ID:             id.New(),
		Title:          input.Title,
		Description:    input.Description,
		Severity:       input.Severity,
		Priority:       input.Priority,
		Status:         model.BugStatusOpen,
		Assignee:       input.Assignee,
		Reporter:       reporter,
		Environment:    input.Environment,
		Steps:          input.Steps,
		ExpectedResult: input.ExpectedResult,
		ActualResult:   input.ActualResult,
		Tags:           input.Tags,
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{BugID: &bug.ID})
	if err := s.bugs.Create(ctx, bug); err != nil {
		slog.ErrorContext(ctx, "failed to create bug", "error", err)
		return nil, fmt.Errorf("creating bug: %w", err)
	}

	slog.InfoContext(ctx, "bug created", "severity", bug.Severity, "reporter", bug.Reporter)
	publish(ctx, s.producer, queue.Event{Type: queue.EventBugCreated, EntityID: bug.ID, ActorID: actorID(actor)})
	return bug, nil
}

func (s *bugService) Update(ctx context.Context, actor *model.User, id int64, update model.BugUpdate) (*model.Bug, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{BugID: &id})
	bug, err := s.bugs.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBugNotFound
		}
		return nil, fmt.Errorf("updating bug: %w", err)
	}

	slog.InfoContext(ctx, "bug updated")
	publish(ctx, s.producer, queue.Event{Type: queue.EventBugUpdated, EntityID: id, ActorID: actorID(actor)})
	return bug, nil
}

func (s *bugService) UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.BugStatus) (*model.Bug, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{BugID: &id})
	bug, err := s.bugs.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBugNotFound
		}
		return nil, fmt.Errorf("updating bug status: %w", err)
	}

	slog.InfoContext(ctx, "bug status updated", "status", status)
	publish(ctx, s.producer, queue.Event{
		Type:     queue.EventBugStatusChanged,
		EntityID: id,
		ActorID:  actorID(actor),
		Status:   string(status),
	})
	return bug, nil
}

func (s *bugService) Delete(ctx context.Context, actor *model.User, id int64) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{BugID: &id})
	if err := s.bugs.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBugNotFound
		}
		return fmt.Errorf("deleting bug: %w", err)
	}

	slog.InfoContext(ctx, "bug deleted")
	publish(ctx, s.producer, queue.Event{Type: queue.EventBugDeleted, EntityID: id, ActorID: actorID(actor)})
	return nil
}

func (s *bugService) ListAssignees(ctx context.Context) ([]string, error) {
	assignees, err := s.bugs.ListAssignees(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assignees: %w", err)
	}
	return assignees, nil
}

func (s *bugService) Stats(ctx context.Context) (*model.BugStats, error) {
	stats, err := s.bugs.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing bug stats: %w", err)
	}
	return stats, nil
}

func (s *bugService) DetectDuplicates(ctx context.Context) ([]model.DuplicateGroup, error) {
	bugs, err := s.bugs.List(ctx, model.BugFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing bugs: %w", err)
	}
	return triage.DetectDuplicates(creationOrder(bugs)), nil
}

// creationOrder returns a copy of a newest-first listing in the order bugs were filed.
func creationOrder(bugs []model.Bug) []model.Bug {
	out := slices.Clone(bugs)
	slices.Reverse(out)
	return out
}

package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/UDARAS8/bugtracker/core/db/sqlc"
	"github.com/UDARAS8/bugtracker/internal/model"
)

type bugStore struct {
	queries *sqlc.Queries
}

func newBugStore(queries *sqlc.Queries) BugStore {
	return &bugStore{queries: queries}
}

func (s *bugStore) GetByID(ctx context.Context, id int64) (*model.Bug, error) {
	row, err := s.queries.GetBug(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toBugModel(row), nil
}

func (s *bugStore) List(ctx context.Context, filter model.BugFilter) ([]model.Bug, error) {
	rows, err := s.queries.ListBugs(ctx, sqlc.ListBugsParams{
		Status:   stringPtr(filter.Status),
		Severity: stringPtr(filter.Severity),
		Assignee: filter.Assignee,
	})
	if err != nil {
		return nil, err
	}
	return toBugModels(rows), nil
}

func (s *bugStore) Search(ctx context.Context, term string, status *model.BugStatus, limit int) ([]model.Bug, error) {
	rows, err := s.queries.SearchBugs(ctx, sqlc.SearchBugsParams{
		Term:       term,
		Status:     stringPtr(status),
		MaxResults: int32(limit),
	})
	if err != nil {
		return nil, err
	}
	return toBugModels(rows), nil
}

func (s *bugStore) Create(ctx context.Context, bug *model.Bug) error {
	var status *string
	if bug.Status != "" {
		status = stringPtr(&bug.Status)
	}
	row, err := s.queries.CreateBug(ctx, sqlc.CreateBugParams{
		ID:             bug.ID,
		Title:          bug.Title,
		Description:    bug.Description,
		Severity:       string(bug.Severity),
		Priority:       string(bug.Priority),
		Status:         status,
		Assignee:       bug.Assignee,
		Reporter:       bug.Reporter,
		Environment:    bug.Environment,
		Steps:          nonNil(bug.Steps),
		ExpectedResult: bug.ExpectedResult,
		ActualResult:   bug.ActualResult,
		Tags:           nonNil(bug.Tags),
	})
	if err != nil {
		return err
	}
	*bug = *toBugModel(row)
	return nil
}

func (s *bugStore) Update(ctx context.Context, id int64, update model.BugUpdate) (*model.Bug, error) {
	row, err := s.queries.UpdateBug(ctx, sqlc.UpdateBugParams{
		ID:          id,
		Title:       update.Title,
		Description: update.Description,
		Status:      stringPtr(update.Status),
		Assignee:    update.Assignee,
		Severity:    stringPtr(update.Severity),
		Priority:    stringPtr(update.Priority),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toBugModel(row), nil
}

func (s *bugStore) UpdateStatus(ctx context.Context, id int64, status model.BugStatus) (*model.Bug, error) {
	row, err := s.queries.UpdateBugStatus(ctx, sqlc.UpdateBugStatusParams{
		ID:     id,
		Status: stringPtr(&status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toBugModel(row), nil
}

func (s *bugStore) SetAIAnalysis(ctx context.Context, id int64, analysis string) error {
	n, err := s.queries.UpdateBugAIAnalysis(ctx, sqlc.UpdateBugAIAnalysisParams{
		ID:         id,
		AiAnalysis: &analysis,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *bugStore) Delete(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteBug(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *bugStore) ListAssignees(ctx context.Context) ([]string, error) {
	return s.queries.ListAssignees(ctx)
}

func (s *bugStore) Stats(ctx context.Context) (*model.BugStats, error) {
	row, err := s.queries.GetBugStats(ctx)
	if err != nil {
		return nil, err
	}
	return &model.BugStats{
		Total:           row.Total,
		Open:            row.Open,
		InProgress:      row.InProgress,
		Resolved:        row.Resolved,
		Closed:          row.Closed,
		Unassigned:      row.Unassigned,
		Critical:        row.Critical,
		MissingStatus:   row.MissingStatus,
		MissingAssignee: row.Unassigned,
	}, nil
}

func toBugModel(row sqlc.Bug) *model.Bug {
	bug := &model.Bug{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		Severity:       model.Severity(row.Severity),
		Priority:       model.BugPriority(row.Priority),
		Assignee:       row.Assignee,
		Reporter:       row.Reporter,
		Environment:    row.Environment,
		Steps:          nonNil(row.Steps),
		ExpectedResult: row.ExpectedResult,
		ActualResult:   row.ActualResult,
		Tags:           nonNil(row.Tags),
		AIAnalysis:     row.AiAnalysis,
		SuggestedFix:   row.SuggestedFix,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
	if row.Status != nil {
		bug.Status = model.BugStatus(*row.Status)
	}
	return bug
}

func toBugModels(rows []sqlc.Bug) []model.Bug {
	bugs := make([]model.Bug, len(rows))
	for i, row := range rows {
		bugs[i] = *toBugModel(row)
	}
	return bugs
}

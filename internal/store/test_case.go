package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/UDARAS8/bugtracker/core/db/sqlc"
	"github.com/UDARAS8/bugtracker/internal/model"
)

type testCaseStore struct {
	queries *sqlc.Queries
}

func newTestCaseStore(queries *sqlc.Queries) TestCaseStore {
	return &testCaseStore{queries: queries}
}

func (s *testCaseStore) GetByID(ctx context.Context, id int64) (*model.TestCase, error) {
	row, err := s.queries.GetTestCase(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTestCaseModel(row), nil
}

func (s *testCaseStore) List(ctx context.Context, filter model.TestCaseFilter) ([]model.TestCase, error) {
	rows, err := s.queries.ListTestCases(ctx, sqlc.ListTestCasesParams{
		Category: filter.Category,
		Status:   stringPtr(filter.Status),
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.TestCase, len(rows))
	for i, row := range rows {
		out[i] = *toTestCaseModel(row)
	}
	return out, nil
}

func (s *testCaseStore) Create(ctx context.Context, tc *model.TestCase) error {
	row, err := s.queries.CreateTestCase(ctx, sqlc.CreateTestCaseParams{
		ID:             tc.ID,
		Name:           tc.Name,
		Description:    tc.Description,
		Steps:          nonNil(tc.Steps),
		ExpectedResult: tc.ExpectedResult,
		Category:       tc.Category,
		Priority:       string(tc.Priority),
		Automated:      tc.Automated,
	})
	if err != nil {
		return err
	}
	*tc = *toTestCaseModel(row)
	return nil
}

func (s *testCaseStore) UpdateStatus(ctx context.Context, id int64, status model.TestStatus) (*model.TestCase, error) {
	row, err := s.queries.UpdateTestCaseStatus(ctx, sqlc.UpdateTestCaseStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTestCaseModel(row), nil
}

func (s *testCaseStore) ListCategories(ctx context.Context) ([]string, error) {
	return s.queries.ListTestCategories(ctx)
}

func toTestCaseModel(row sqlc.TestCase) *model.TestCase {
	return &model.TestCase{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		Steps:          nonNil(row.Steps),
		ExpectedResult: row.ExpectedResult,
		Category:       row.Category,
		Priority:       model.TestPriority(row.Priority),
		Automated:      row.Automated,
		Status:         model.TestStatus(row.Status),
		LastRun:        fromNullableTimestamptz(row.LastRun),
		RelatedBugs:    model.IDs(nonNil(row.RelatedBugs)),
		CreatedAt:      row.CreatedAt.Time,
	}
}

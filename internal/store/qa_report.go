package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/UDARAS8/bugtracker/core/db/sqlc"
	"github.com/UDARAS8/bugtracker/internal/model"
)

type qaReportStore struct {
	queries *sqlc.Queries
}

func newQAReportStore(queries *sqlc.Queries) QAReportStore {
	return &qaReportStore{queries: queries}
}

func (s *qaReportStore) GetByID(ctx context.Context, id int64) (*model.QAReport, error) {
	row, err := s.queries.GetQAReport(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toQAReportModel(row), nil
}

func (s *qaReportStore) ListRecent(ctx context.Context, limit int) ([]model.QAReport, error) {
	rows, err := s.queries.ListQAReports(ctx, int32(limit))
	if err != nil {
		return nil, err
	}
	out := make([]model.QAReport, len(rows))
	for i, row := range rows {
		out[i] = *toQAReportModel(row)
	}
	return out, nil
}

func (s *qaReportStore) Create(ctx context.Context, report *model.QAReport) error {
	row, err := s.queries.CreateQAReport(ctx, sqlc.CreateQAReportParams{
		ID:              report.ID,
		Title:           report.Title,
		Summary:         report.Summary,
		BugsFound:       int32(report.BugsFound),
		TestsRun:        int32(report.TestsRun),
		TestsPassed:     int32(report.TestsPassed),
		TestsFailed:     int32(report.TestsFailed),
		Coverage:        int32(report.Coverage),
		AiInsights:      report.AIInsights,
		Recommendations: nonNil(report.Recommendations),
		ReportDate:      toTimestamptz(report.ReportDate),
		GeneratedBy:     report.GeneratedBy,
	})
	if err != nil {
		return err
	}
	*report = *toQAReportModel(row)
	return nil
}

func toQAReportModel(row sqlc.QaReport) *model.QAReport {
	return &model.QAReport{
		ID:              row.ID,
		Title:           row.Title,
		Summary:         row.Summary,
		BugsFound:       int(row.BugsFound),
		TestsRun:        int(row.TestsRun),
		TestsPassed:     int(row.TestsPassed),
		TestsFailed:     int(row.TestsFailed),
		Coverage:        int(row.Coverage),
		AIInsights:      row.AiInsights,
		Recommendations: nonNil(row.Recommendations),
		ReportDate:      row.ReportDate.Time,
		GeneratedBy:     row.GeneratedBy,
		CreatedAt:       row.CreatedAt.Time,
	}
}

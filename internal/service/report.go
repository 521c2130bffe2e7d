package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/store"
)

// RecentReportLimit is how many reports the listing returns.
const RecentReportLimit = 10

type ReportService interface {
	List(ctx context.Context) ([]model.QAReport, error)
	Get(ctx context.Context, id int64) (*model.QAReport, error)
	Markdown(ctx context.Context, id int64) (string, error)
}

type reportService struct {
	reports store.QAReportStore
	archive store.ReportArchive // nil when archiving is disabled
}

func NewReportService(reports store.QAReportStore, archive store.ReportArchive) ReportService {
	return &reportService{
		reports: reports,
		archive: archive,
	}
}

func (s *reportService) List(ctx context.Context) ([]model.QAReport, error) {
	reports, err := s.reports.ListRecent(ctx, RecentReportLimit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return reports, nil
}

func (s *reportService) Get(ctx context.Context, id int64) (*model.QAReport, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("getting report: %w", err)
	}
	return report, nil
}

// Markdown returns the archived markdown for a report, rendering it from the
// database row when no archived copy exists.
func (s *reportService) Markdown(ctx context.Context, id int64) (string, error) {
	if s.archive != nil {
		content, _, err := s.archive.Read(ctx, id)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, store.ErrArchivedReportNotFound) {
			slog.WarnContext(ctx, "failed to read archived report", "error", err, "report_id", id)
		}
	}

	report, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return store.RenderReportMarkdown(*report)
}

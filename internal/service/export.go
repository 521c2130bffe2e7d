package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/UDARAS8/bugtracker/internal/export"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/store"
)

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type ExportService interface {
	Bugs(ctx context.Context, format ExportFormat) (*ExportFile, error)
	TestCases(ctx context.Context, format ExportFormat) (*ExportFile, error)
	Reports(ctx context.Context, format ExportFormat) (*ExportFile, error)
}

type exportService struct {
	bugs      store.BugStore
	testCases store.TestCaseStore
	reports   store.QAReportStore
}

func NewExportService(bugs store.BugStore, testCases store.TestCaseStore, reports store.QAReportStore) ExportService {
	return &exportService{
		bugs:      bugs,
		testCases: testCases,
		reports:   reports,
	}
}

func (s *exportService) Bugs(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	bugs, err := s.bugs.List(ctx, model.BugFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing bugs: %w", err)
	}
	if len(bugs) == 0 {
		return nil, ErrNoData
	}
	return render("bugs", format, bugs, export.BugHeaders, func() [][]string { return export.BugRows(bugs) })
}

func (s *exportService) TestCases(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	tcs, err := s.testCases.List(ctx, model.TestCaseFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing test cases: %w", err)
	}
	if len(tcs) == 0 {
		return nil, ErrNoData
	}
	return render("test-cases", format, tcs, export.TestCaseHeaders, func() [][]string { return export.TestCaseRows(tcs) })
}

// Reports exports the same recent window the report listing shows.
func (s *exportService) Reports(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	reports, err := s.reports.ListRecent(ctx, RecentReportLimit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	if len(reports) == 0 {
		return nil, ErrNoData
	}
	return render("qa-reports", format, reports, export.ReportHeaders, func() [][]string { return export.ReportRows(reports) })
}

func render(name string, format ExportFormat, records any, headers []string, rows func() [][]string) (*ExportFile, error) {
	var buf bytes.Buffer
	switch format {
	case ExportFormatCSV:
		if err := export.WriteCSV(&buf, headers, rows()); err != nil {
			return nil, fmt.Errorf("writing csv: %w", err)
		}
		return &ExportFile{Filename: name + ".csv", ContentType: "text/csv", Body: buf.Bytes()}, nil
	case ExportFormatJSON:
		if err := export.WriteJSON(&buf, records); err != nil {
			return nil, fmt.Errorf("writing json: %w", err)
		}
		return &ExportFile{Filename: name + ".json", ContentType: "application/json", Body: buf.Bytes()}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

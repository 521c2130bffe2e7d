package store

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/UDARAS8/bugtracker/internal/model"
)

const (
	// MaxArchivedReportSize bounds a single rendered report.
	MaxArchivedReportSize = 200 * 1024

	reportFilename = "report.md"
)

var (
	ErrArchivedReportNotFound = errors.New("archived report not found")
	ErrArchivedReportTooLarge = errors.New("archived report exceeds maximum size")
)

// ArchiveRef locates a rendered report on disk.
type ArchiveRef struct {
	Path      string    `json:"path"`
	SHA256    string    `json:"sha256"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReportArchive keeps a human-readable markdown copy of each generated QA report.
type ReportArchive interface {
	Write(ctx context.Context, report model.QAReport) (ArchiveRef, error)
	Read(ctx context.Context, reportID int64) (string, ArchiveRef, error)
}

// LocalReportArchive implements ReportArchive on the local filesystem.
// Each report lives at <root>/report_<id>/report.md.
type LocalReportArchive struct {
	rootDir string
}

func NewLocalReportArchive(rootDir string) (*LocalReportArchive, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("report archive directory is required")
	}
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report archive directory: %w", err)
	}
	return &LocalReportArchive{rootDir: rootDir}, nil
}

func (a *LocalReportArchive) Write(ctx context.Context, report model.QAReport) (ArchiveRef, error) {
	content, err := RenderReportMarkdown(report)
	if err != nil {
		return ArchiveRef{}, err
	}
	if len(content) > MaxArchivedReportSize {
		return ArchiveRef{}, ErrArchivedReportTooLarge
	}

	relPath := reportPath(report.ID)
	fullPath := filepath.Join(a.rootDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return ArchiveRef{}, fmt.Errorf("creating report directory: %w", err)
	}

	// write-then-rename so readers never see a partial file
	tmpPath := fullPath + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0o644); err != nil {
		return ArchiveRef{}, fmt.Errorf("writing temp report: %w", err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return ArchiveRef{}, fmt.Errorf("renaming report: %w", err)
	}

	return ArchiveRef{
		Path:      relPath,
		SHA256:    sha256Hash([]byte(content)),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (a *LocalReportArchive) Read(ctx context.Context, reportID int64) (string, ArchiveRef, error) {
	relPath := reportPath(reportID)
	fullPath := filepath.Join(a.rootDir, relPath)

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ArchiveRef{}, ErrArchivedReportNotFound
		}
		return "", ArchiveRef{}, fmt.Errorf("reading report: %w", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return "", ArchiveRef{}, fmt.Errorf("stat report: %w", err)
	}

	return string(content), ArchiveRef{
		Path:      relPath,
		SHA256:    sha256Hash(content),
		UpdatedAt: info.ModTime(),
	}, nil
}

func reportPath(reportID int64) string {
	return filepath.Join(fmt.Sprintf("report_%d", reportID), reportFilename)
}

func sha256Hash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}

var reportTemplate = template.Must(template.New("report").Parse(`# {{.Title}}

Generated by {{.GeneratedBy}} on {{.ReportDate.Format "2006-01-02 15:04 MST"}}

## Metrics

| Metric | Value |
|---|---|
| Bugs found | {{.BugsFound}} |
| Tests run | {{.TestsRun}} |
| Tests passed | {{.TestsPassed}} |
| Tests failed | {{.TestsFailed}} |
| Coverage | {{.Coverage}}% |

## Summary

{{.Summary}}
{{- if .Recommendations}}

## Recommendations
{{range .Recommendations}}
- {{.}}
{{- end}}
{{- end}}
`))

// RenderReportMarkdown renders a QA report as a markdown document.
func RenderReportMarkdown(report model.QAReport) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return buf.String(), nil
}

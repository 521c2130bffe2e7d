package store

import (
	"context"
	"errors"

	"github.com/UDARAS8/bugtracker/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// BugStore defines the contract for bug data access
type BugStore interface {
	GetByID(ctx context.Context, id int64) (*model.Bug, error)
	List(ctx context.Context, filter model.BugFilter) ([]model.Bug, error) // newest first
	Search(ctx context.Context, term string, status *model.BugStatus, limit int) ([]model.Bug, error)
	Create(ctx context.Context, bug *model.Bug) error
	Update(ctx context.Context, id int64, update model.BugUpdate) (*model.Bug, error)
	UpdateStatus(ctx context.Context, id int64, status model.BugStatus) (*model.Bug, error)
	SetAIAnalysis(ctx context.Context, id int64, analysis string) error
	Delete(ctx context.Context, id int64) error
	ListAssignees(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*model.BugStats, error)
}

// TestCaseStore defines the contract for test case data access
type TestCaseStore interface {
	GetByID(ctx context.Context, id int64) (*model.TestCase, error)
	List(ctx context.Context, filter model.TestCaseFilter) ([]model.TestCase, error) // newest first
	Create(ctx context.Context, tc *model.TestCase) error
	UpdateStatus(ctx context.Context, id int64, status model.TestStatus) (*model.TestCase, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// QAReportStore defines the contract for QA report data access. Reports are never updated.
type QAReportStore interface {
	GetByID(ctx context.Context, id int64) (*model.QAReport, error)
	ListRecent(ctx context.Context, limit int) ([]model.QAReport, error) // newest report date first
	Create(ctx context.Context, report *model.QAReport) error
}

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

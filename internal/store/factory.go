package store

import (
	"github.com/UDARAS8/bugtracker/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Bugs() BugStore {
	return newBugStore(s.queries)
}

func (s *Stores) TestCases() TestCaseStore {
	return newTestCaseStore(s.queries)
}

func (s *Stores) QAReports() QAReportStore {
	return newQAReportStore(s.queries)
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

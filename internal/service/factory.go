package service

import (
	"github.com/UDARAS8/bugtracker/common/llm"
	"github.com/UDARAS8/bugtracker/internal/queue"
	"github.com/UDARAS8/bugtracker/internal/store"
)

// Deps are the optional collaborators shared by the services. Nil fields
// disable the feature they back.
type Deps struct {
	Archive  store.ReportArchive
	LLM      llm.Client
	Producer queue.Producer
	Identity IdentityProvider
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	deps     Deps
}

func NewServices(stores *store.Stores, txRunner TxRunner, deps Deps) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		deps:     deps,
	}
}

func (s *Services) Bugs() BugService {
	return NewBugService(s.stores.Bugs(), s.deps.Producer)
}

func (s *Services) TestCases() TestCaseService {
	return NewTestCaseService(s.stores.TestCases(), s.deps.Producer)
}

func (s *Services) Reports() ReportService {
	return NewReportService(s.stores.QAReports(), s.deps.Archive)
}

func (s *Services) Analysis() AnalysisService {
	return NewAnalysisService(
		s.stores.Bugs(),
		s.stores.TestCases(),
		s.stores.QAReports(),
		s.deps.Archive,
		s.deps.LLM,
		s.deps.Producer,
	)
}

func (s *Services) Export() ExportService {
	return NewExportService(s.stores.Bugs(), s.stores.TestCases(), s.stores.QAReports())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.txRunner, s.deps.Identity)
}

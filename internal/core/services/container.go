package services

import (
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The cache only serves the accounts API. Posting must see deactivations at once,
	// so the validator reads the repository directly.
	container.ChartOfAccounts = NewChartOfAccountsService(
		repos.AccountRepo,
		WithAccountCache(cfg.AccountCacheSize, cfg.AccountCacheTTL),
	)
	container.Validator = NewBalanceValidator(repos.AccountRepo, cfg.BalanceTolerance)
	container.Journal = NewJournalService(
		repos.VoucherRepo,
		container.Validator,
		WithEventPublisher(events),
	)
	container.AuditTrail = NewAuditTrailRecorder(repos.AuditRepo)

	return container
}

package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		VoucherRepo: newPgxVoucherRepository(dbPool),
		AuditRepo:   newPgxAuditTrailRepository(dbPool),
	}
}

package repositories

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// ChartOfAccountsLookup resolves account codes within a single tenant.
// It is read-only. Implementations return apperrors.ErrNotFound when the
// code does not exist for that tenant, including when it exists for another tenant.
type ChartOfAccountsLookup interface {
	// ResolveAccount returns the tenant's account with the given code.
	ResolveAccount(ctx context.Context, tenantID string, code string) (*domain.Account, error)

	// ResolveAccounts returns the tenant's accounts keyed by code. Missing codes are simply absent.
	ResolveAccounts(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error)
}

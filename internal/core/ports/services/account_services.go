package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// ChartOfAccountsSvc resolves account codes within one tenant.
type ChartOfAccountsSvc interface {
	// ResolveAccount returns the tenant's account, or apperrors.ErrNotFound.
	ResolveAccount(ctx context.Context, tenantID string, code string) (*domain.Account, error)

	// ResolveAccounts returns the tenant's accounts keyed by code; unknown codes are absent.
	ResolveAccounts(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error)
}

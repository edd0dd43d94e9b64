package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// chartOfAccountsService resolves account codes, optionally through an expiring LRU cache.
// Only found accounts are cached, so a newly created account is visible on the next lookup.
type chartOfAccountsService struct {
	BaseService
	lookup portsrepo.ChartOfAccountsLookup
	cache  *expirable.LRU[string, domain.Account]
}

// ChartOption configures the chart of accounts service.
type ChartOption func(*chartOfAccountsService)

// WithAccountCache caches up to size accounts for ttl. A non-positive size disables caching.
func WithAccountCache(size int, ttl time.Duration) ChartOption {
	return func(s *chartOfAccountsService) {
		if size <= 0 {
			s.cache = nil
			return
		}
		s.cache = expirable.NewLRU[string, domain.Account](size, nil, ttl)
	}
}

// NewChartOfAccountsService creates the account lookup service.
func NewChartOfAccountsService(lookup portsrepo.ChartOfAccountsLookup, options ...ChartOption) portssvc.ChartOfAccountsSvc {
	svc := &chartOfAccountsService{lookup: lookup}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ChartOfAccountsSvc = (*chartOfAccountsService)(nil)

// The tenant is part of the key, so a cached account never answers another tenant's lookup.
func accountCacheKey(tenantID, code string) string {
	return tenantID + "\x00" + code
}

func (s *chartOfAccountsService) ResolveAccount(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	if tenantID == "" || code == "" {
		return nil, apperrors.NewInputError("tenant id and account code are required")
	}

	if s.cache != nil {
		if acc, ok := s.cache.Get(accountCacheKey(tenantID, code)); ok {
			return &acc, nil
		}
	}

	acc, err := s.lookup.ResolveAccount(ctx, tenantID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve account",
				slog.String("tenant_id", tenantID),
				slog.String("code", code))
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Add(accountCacheKey(tenantID, code), *acc)
	}
	return acc, nil
}

func (s *chartOfAccountsService) ResolveAccounts(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	found := make(map[string]domain.Account, len(codes))
	misses := make([]string, 0, len(codes))

	for _, code := range codes {
		if _, seen := found[code]; seen {
			continue
		}
		if s.cache != nil {
			if acc, ok := s.cache.Get(accountCacheKey(tenantID, code)); ok {
				found[code] = acc
				continue
			}
		}
		misses = append(misses, code)
	}

	if len(misses) == 0 {
		return found, nil
	}

	fetched, err := s.lookup.ResolveAccounts(ctx, tenantID, misses)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve accounts",
			slog.String("tenant_id", tenantID),
			slog.Int("count", len(misses)))
		return nil, err
	}

	for code, acc := range fetched {
		// Never trust a row from another tenant, whatever the lookup returned.
		if acc.TenantID != tenantID {
			continue
		}
		found[code] = acc
		if s.cache != nil {
			s.cache.Add(accountCacheKey(tenantID, code), acc)
		}
	}

	s.LogDebug(ctx, "Accounts resolved",
		slog.String("tenant_id", tenantID),
		slog.Int("requested", len(codes)),
		slog.Int("fetched", len(misses)))
	return found, nil
}

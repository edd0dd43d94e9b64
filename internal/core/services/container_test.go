package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_app/internal/core/services"
	"github.com/SscSPs/ledger_posting_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceContainer_ValidatorSeesDeactivationDespiteCache(t *testing.T) {
	chart := seededChart()
	cfg := &config.Config{
		BalanceTolerance: dec("0.01"),
		AccountCacheSize: 16,
		AccountCacheTTL:  time.Hour,
	}
	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{AccountRepo: chart}, nil)
	ctx := context.Background()
	lines := []domain.JournalLine{debit("5010", "100"), credit("1010", "100")}

	// Warm the accounts API cache and run one passing validation.
	_, err := container.ChartOfAccounts.ResolveAccounts(ctx, "tenant-a", []string{"5010", "1010"})
	require.NoError(t, err)
	result, err := container.Validator.Validate(ctx, "tenant-a", lines)
	require.NoError(t, err)
	require.True(t, result.OK(), "unexpected errors: %v", result.Messages())

	chart.add("tenant-a", "5010", domain.Expense, false)

	result, err = container.Validator.Validate(ctx, "tenant-a", lines)
	require.NoError(t, err)
	assert.Equal(t, []string{"InactiveAccount: 5010"}, result.Messages())

	cached, err := container.ChartOfAccounts.ResolveAccount(ctx, "tenant-a", "5010")
	require.NoError(t, err)
	assert.True(t, cached.IsActive, "the accounts API may serve a stale entry until the TTL expires")
}

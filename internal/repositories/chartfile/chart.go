// Package chartfile serves a tenant's chart of accounts from a YAML file, for
// offline validation where no database is available.
package chartfile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

// AccountEntry is one account in the chart file.
type AccountEntry struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Active *bool  `yaml:"active"` // defaults to true
}

// File is the on-disk layout of a chart file.
type File struct {
	Tenant   string         `yaml:"tenant"`
	Accounts []AccountEntry `yaml:"accounts"`
}

// Chart is a read-only ChartOfAccountsLookup over a single tenant's accounts.
type Chart struct {
	tenantID string
	accounts map[string]domain.Account
}

var _ portsrepo.ChartOfAccountsLookup = (*Chart)(nil)

// Load reads and parses a chart file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Chart from YAML. Codes must be unique and types known.
func Parse(data []byte) (*Chart, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if file.Tenant == "" {
		return nil, fmt.Errorf("chart file has no tenant")
	}

	chart := &Chart{tenantID: file.Tenant, accounts: make(map[string]domain.Account, len(file.Accounts))}
	for i, entry := range file.Accounts {
		if entry.Code == "" {
			return nil, fmt.Errorf("account %d has no code", i+1)
		}
		if _, dup := chart.accounts[entry.Code]; dup {
			return nil, fmt.Errorf("duplicate account code %s", entry.Code)
		}
		accountType := domain.AccountType(strings.ToUpper(entry.Type))
		if !accountType.IsValid() {
			return nil, fmt.Errorf("account %s has unknown type %q", entry.Code, entry.Type)
		}
		active := entry.Active == nil || *entry.Active

		chart.accounts[entry.Code] = domain.Account{
			AccountID:   file.Tenant + ":" + entry.Code,
			TenantID:    file.Tenant,
			Code:        entry.Code,
			Name:        entry.Name,
			AccountType: accountType,
			IsActive:    active,
		}
	}
	return chart, nil
}

// TenantID is the tenant the file describes.
func (c *Chart) TenantID() string {
	return c.tenantID
}

func (c *Chart) ResolveAccount(_ context.Context, tenantID string, code string) (*domain.Account, error) {
	if tenantID != c.tenantID {
		return nil, apperrors.ErrNotFound
	}
	acc, ok := c.accounts[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (c *Chart) ResolveAccounts(_ context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	found := make(map[string]domain.Account, len(codes))
	if tenantID != c.tenantID {
		return found, nil
	}
	for _, code := range codes {
		if acc, ok := c.accounts[code]; ok {
			found[code] = acc
		}
	}
	return found, nil
}

package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceValidator checks a line set against a tenant's chart of accounts.
// It has no side effects beyond the read-only lookup.
type balanceValidator struct {
	BaseService
	accounts  portsrepo.ChartOfAccountsLookup
	tolerance decimal.Decimal
}

// NewBalanceValidator creates a validator. A non-positive tolerance selects accounting.DefaultTolerance.
func NewBalanceValidator(accounts portsrepo.ChartOfAccountsLookup, tolerance decimal.Decimal) portssvc.BalanceValidatorSvc {
	if !tolerance.IsPositive() {
		tolerance = accounting.DefaultTolerance
	}
	return &balanceValidator{accounts: accounts, tolerance: tolerance}
}

var _ portssvc.BalanceValidatorSvc = (*balanceValidator)(nil)

// Validate runs every check and collects all failures in this order:
// EmptyLineSet, UnknownAccount/InactiveAccount, InvalidLine, TotalOutOfRange, Unbalanced, ZeroAmountVoucher.
func (v *balanceValidator) Validate(ctx context.Context, tenantID string, lines []domain.JournalLine) (*domain.ValidationResult, error) {
	result := &domain.ValidationResult{
		Accounts:    map[string]domain.Account{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	if len(lines) == 0 {
		result.Errors = append(result.Errors, domain.EmptyLineSet())
		return result, nil
	}

	// Distinct codes in first-seen order, so errors come out in line order.
	codes := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if line.AccountCode == "" || seen[line.AccountCode] {
			continue
		}
		seen[line.AccountCode] = true
		codes = append(codes, line.AccountCode)
	}

	resolved, err := v.accounts.ResolveAccounts(ctx, tenantID, codes)
	if err != nil {
		return nil, err
	}
	for _, code := range codes {
		acc, ok := resolved[code]
		if !ok || acc.TenantID != tenantID {
			result.Errors = append(result.Errors, domain.UnknownAccount(code))
			continue
		}
		if !acc.IsActive {
			result.Errors = append(result.Errors, domain.InactiveAccount(code))
			continue
		}
		result.Accounts[code] = acc
	}

	for i, line := range lines {
		if reason := lineProblem(line); reason != "" {
			result.Errors = append(result.Errors, domain.InvalidLine(i+1, reason))
		}
	}

	result.TotalDebit, result.TotalCredit = accounting.SumLines(lines)
	for _, total := range []decimal.Decimal{result.TotalDebit, result.TotalCredit} {
		if total.GreaterThanOrEqual(accounting.MaxAmount) {
			result.Errors = append(result.Errors, domain.TotalOutOfRange(total, accounting.MaxAmount))
		}
	}
	if !accounting.IsBalanced(result.TotalDebit, result.TotalCredit, v.tolerance) {
		result.Errors = append(result.Errors, domain.Unbalanced(result.TotalDebit, result.TotalCredit))
	}
	if !result.TotalDebit.Add(result.TotalCredit).IsPositive() {
		result.Errors = append(result.Errors, domain.ZeroAmountVoucher())
	}

	if !result.OK() {
		v.LogDebug(ctx, "Line set failed validation",
			slog.String("tenant_id", tenantID),
			slog.Int("lines", len(lines)),
			slog.Any("errors", result.Messages()))
	}
	return result, nil
}

// lineProblem describes why a single line is malformed, or returns "".
func lineProblem(line domain.JournalLine) string {
	switch {
	case line.AccountCode == "":
		return "has no account code"
	case line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative():
		return "has a negative amount"
	case !line.DebitAmount.IsZero() && !line.CreditAmount.IsZero():
		return "has both a debit and a credit amount"
	case line.DebitAmount.IsZero() && line.CreditAmount.IsZero():
		return "has neither a debit nor a credit amount"
	}
	if problem := accounting.AmountProblem(line.DebitAmount); problem != "" {
		return problem
	}
	return accounting.AmountProblem(line.CreditAmount)
}

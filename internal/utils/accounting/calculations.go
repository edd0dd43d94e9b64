package accounting

import (
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTolerance is the largest debit/credit difference treated as rounding noise
// (strictly below one minor currency unit).
var DefaultTolerance = decimal.RequireFromString("0.01")

// AmountScale is the number of decimal places stored for line amounts and totals.
const AmountScale int32 = 4

// MaxAmount is the exclusive upper bound of a stored amount (NUMERIC(20, 4)).
var MaxAmount = decimal.New(1, 16)

// AmountProblem describes why an amount cannot be stored without rounding or
// overflow, or returns "". Sign is not checked here.
func AmountProblem(amount decimal.Decimal) string {
	switch {
	case !amount.Equal(amount.Truncate(AmountScale)):
		return "has more than 4 decimal places"
	case amount.Abs().GreaterThanOrEqual(MaxAmount):
		return "exceeds the maximum amount"
	}
	return ""
}

// SumLines returns the debit and credit totals of a line set.
func SumLines(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}
	return totalDebit, totalCredit
}

// IsBalanced reports whether |debit - credit| < tolerance.
func IsBalanced(totalDebit, totalCredit, tolerance decimal.Decimal) bool {
	return totalDebit.Sub(totalCredit).Abs().LessThan(tolerance)
}

// CalculateSignedAmount returns the effect of a line on its account's natural balance.
// DEBIT to ASSET/EXPENSE -> Positive (+), CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-), CREDIT -> Positive (+)
// OTHER accounts are treated as debit-normal.
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) decimal.Decimal {
	net := line.DebitAmount.Sub(line.CreditAmount)
	switch accountType {
	case domain.Liability, domain.Equity, domain.Revenue:
		return net.Neg()
	default:
		return net
	}
}

// FormatWithPrecision formats an amount with the given number of decimal places.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

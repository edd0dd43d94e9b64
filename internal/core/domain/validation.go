package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationCode classifies a balance validation failure.
type ValidationCode string

const (
	CodeEmptyLineSet      ValidationCode = "EmptyLineSet"
	CodeUnknownAccount    ValidationCode = "UnknownAccount"
	CodeInactiveAccount   ValidationCode = "InactiveAccount"
	CodeInvalidLine       ValidationCode = "InvalidLine"
	CodeTotalOutOfRange   ValidationCode = "TotalOutOfRange"
	CodeUnbalanced        ValidationCode = "Unbalanced"
	CodeZeroAmountVoucher ValidationCode = "ZeroAmountVoucher"
)

// ValidationError is a single, caller-correctable problem with a line set.
type ValidationError struct {
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// EmptyLineSet reports a voucher without lines.
func EmptyLineSet() ValidationError {
	return ValidationError{Code: CodeEmptyLineSet, Message: string(CodeEmptyLineSet)}
}

// UnknownAccount reports a code missing from the tenant's chart of accounts.
func UnknownAccount(code string) ValidationError {
	return ValidationError{Code: CodeUnknownAccount, Message: fmt.Sprintf("%s: %s", CodeUnknownAccount, code)}
}

// InactiveAccount reports a code that resolves to a deactivated account.
func InactiveAccount(code string) ValidationError {
	return ValidationError{Code: CodeInactiveAccount, Message: fmt.Sprintf("%s: %s", CodeInactiveAccount, code)}
}

// InvalidLine reports a structural problem with line number n (1-based).
func InvalidLine(n int, reason string) ValidationError {
	return ValidationError{Code: CodeInvalidLine, Message: fmt.Sprintf("%s: line %d %s", CodeInvalidLine, n, reason)}
}

// TotalOutOfRange reports a debit or credit total too large to store.
func TotalOutOfRange(total, limit decimal.Decimal) ValidationError {
	return ValidationError{
		Code:    CodeTotalOutOfRange,
		Message: fmt.Sprintf("%s: %s is not below %s", CodeTotalOutOfRange, total.String(), limit.String()),
	}
}

// Unbalanced reports debit and credit totals that differ beyond tolerance.
func Unbalanced(totalDebit, totalCredit decimal.Decimal) ValidationError {
	return ValidationError{
		Code:    CodeUnbalanced,
		Message: fmt.Sprintf("%s: %s != %s", CodeUnbalanced, totalDebit.String(), totalCredit.String()),
	}
}

// ZeroAmountVoucher reports a voucher whose lines move no money.
func ZeroAmountVoucher() ValidationError {
	return ValidationError{Code: CodeZeroAmountVoucher, Message: string(CodeZeroAmountVoucher)}
}

// ValidationResult is the outcome of validating a line set for a tenant.
// Accounts holds every code that resolved, so the poster can attach account ids to lines.
type ValidationResult struct {
	Errors      []ValidationError
	Accounts    map[string]Account
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// OK reports whether the line set passed every check.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Messages returns the error messages in the order they were found.
func (r ValidationResult) Messages() []string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return msgs
}

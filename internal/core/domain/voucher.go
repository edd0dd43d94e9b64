package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType identifies the origin of a journal voucher.
type VoucherType string

const (
	VoucherManual  VoucherType = "MANUAL"
	VoucherPayment VoucherType = "PAYMENT"
	VoucherAccrual VoucherType = "ACCRUAL"
	VoucherReceipt VoucherType = "RECEIPT"
)

// IsValid reports whether t is a known voucher type.
func (t VoucherType) IsValid() bool {
	switch t {
	case VoucherManual, VoucherPayment, VoucherAccrual, VoucherReceipt:
		return true
	}
	return false
}

// NumberPrefix returns the prefix used in voucher numbers of this type.
func (t VoucherType) NumberPrefix() string {
	switch t {
	case VoucherPayment:
		return "PV"
	case VoucherAccrual:
		return "AV"
	case VoucherReceipt:
		return "RV"
	default:
		return "JV"
	}
}

// FormatVoucherNumber renders a voucher number such as PV/2026/000042.
func FormatVoucherNumber(prefix string, year int, sequence int64) string {
	return fmt.Sprintf("%s/%d/%06d", prefix, year, sequence)
}

// JournalLine is one (account, debit, credit) row of a voucher.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	VoucherID    string          `json:"voucherID"`
	LineNumber   int             `json:"lineNumber"` // 1-based, preserves input order
	AccountID    string          `json:"accountID"`  // Resolved from AccountCode at posting time
	AccountCode  string          `json:"accountCode"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	PayeeID      *string         `json:"payeeID,omitempty"`
	Description  *string         `json:"description,omitempty"`
}

// JournalVoucher is the header of a balanced financial transaction.
type JournalVoucher struct {
	VoucherID      string          `json:"voucherID"`
	TenantID       string          `json:"tenantID"`
	VoucherNumber  string          `json:"voucherNumber"` // e.g. JV/2026/000042
	VoucherDate    time.Time       `json:"voucherDate"`
	Narration      string          `json:"narration"`
	VoucherType    VoucherType     `json:"voucherType"`
	Status         VoucherStatus   `json:"status"`
	SourceDocument *string         `json:"sourceDocument,omitempty"` // e.g. GRN or payment document reference
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	Lines          []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// VoucherHeaderInput is what a caller supplies to post a voucher.
type VoucherHeaderInput struct {
	VoucherDate    time.Time
	Narration      string
	VoucherType    VoucherType
	InitialStatus  VoucherStatus // DRAFT, PENDING or POSTED; empty means POSTED
	SourceDocument *string
}

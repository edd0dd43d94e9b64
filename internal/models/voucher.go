package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates the state of a journal voucher row.
type VoucherStatus string

// JournalVoucher is a row of the journal_vouchers table.
type JournalVoucher struct {
	VoucherID      string          `db:"voucher_id"`
	TenantID       string          `db:"tenant_id"`
	VoucherNumber  string          `db:"voucher_number"`
	VoucherDate    time.Time       `db:"voucher_date"`
	Narration      string          `db:"narration"`
	VoucherType    string          `db:"voucher_type"`
	Status         VoucherStatus   `db:"status"`
	SourceDocument *string         `db:"source_document"` // Nullable
	TotalDebit     decimal.Decimal `db:"total_debit"`
	TotalCredit    decimal.Decimal `db:"total_credit"`
	AuditFields
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID       string          `db:"line_id"`
	VoucherID    string          `db:"voucher_id"`
	LineNumber   int             `db:"line_no"`
	AccountID    string          `db:"account_id"`
	AccountCode  string          `db:"account_code"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	PayeeID      *string         `db:"payee_id"`    // Nullable
	Description  *string         `db:"description"` // Nullable
}

// AuditTrailEntry is a row of the append-only audit_trail table.
type AuditTrailEntry struct {
	EntryID    string    `db:"entry_id"`
	TenantID   string    `db:"tenant_id"`
	TargetID   string    `db:"target_id"`
	Position   int       `db:"position"`
	UserID     string    `db:"user_id"`
	Action     string    `db:"action"`
	OccurredAt time.Time `db:"occurred_at"`
	Details    *string   `db:"details"` // Nullable
}

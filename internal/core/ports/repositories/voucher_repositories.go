package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/utils/pagination"
)

// VoucherReader defines read operations for journal vouchers.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher header scoped to a tenant.
	FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.JournalVoucher, error)

	// FindLinesByVoucherID retrieves the lines of a voucher ordered by line number.
	FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalLine, error)

	// ListVouchers retrieves a page of voucher headers, newest first.
	// It returns the vouchers and the cursor of the last one when more pages exist.
	ListVouchers(ctx context.Context, filter VoucherFilter) ([]domain.JournalVoucher, *pagination.Cursor, error)
}

// VoucherFilter narrows ListVouchers.
type VoucherFilter struct {
	TenantID string
	Status   *domain.VoucherStatus
	Limit    int
	After    *pagination.Cursor
}

// VoucherWriter defines write operations for journal vouchers.
type VoucherWriter interface {
	// SaveVoucher atomically allocates the next voucher number for the voucher's
	// tenant, type and year, inserts the header, every line and the audit entry.
	// Either all rows are committed or none are. The allocated number is written
	// into the returned voucher.
	SaveVoucher(ctx context.Context, voucher domain.JournalVoucher, audit domain.AuditTrailEntry) (*domain.JournalVoucher, error)

	// TransitionVoucher locks the voucher, applies the workflow action, updates
	// the status and appends an audit entry in one transaction.
	TransitionVoucher(ctx context.Context, tenantID, voucherID string, action domain.WorkflowAction, actorID string, details *string, at time.Time) (*domain.JournalVoucher, error)
}

// VoucherRepositoryFacade combines all voucher repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
)

// BalanceValidatorSvc checks a line set before anything is written.
type BalanceValidatorSvc interface {
	// Validate collects every failure for the line set. The error return is
	// reserved for lookup failures, never for invalid input.
	Validate(ctx context.Context, tenantID string, lines []domain.JournalLine) (*domain.ValidationResult, error)
}

// JournalPosterSvc creates vouchers.
type JournalPosterSvc interface {
	// PostVoucher validates and persists a voucher with its lines and creation audit entry.
	// It returns a *ValidationFailedError, an error wrapping ErrStorageFailed, or an input error.
	PostVoucher(ctx context.Context, tenantID, actorID string, header domain.VoucherHeaderInput, lines []domain.JournalLine) (*domain.JournalVoucher, error)
}

// VoucherReaderSvc defines read operations for vouchers.
type VoucherReaderSvc interface {
	// GetVoucher retrieves a voucher with its lines.
	GetVoucher(ctx context.Context, tenantID, voucherID string) (*domain.JournalVoucher, error)

	// ListVouchers retrieves a page of a tenant's vouchers, newest first.
	ListVouchers(ctx context.Context, tenantID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}

// VoucherWorkflowSvc moves vouchers through the approval states.
type VoucherWorkflowSvc interface {
	SubmitVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error)
	ApproveVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error)
	RejectVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error)
}

// JournalSvcFacade combines all voucher-related service interfaces
type JournalSvcFacade interface {
	JournalPosterSvc
	VoucherReaderSvc
	VoucherWorkflowSvc
}

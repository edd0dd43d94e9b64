package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/utils/pagination"
)

// GetVoucher retrieves a voucher header with its lines. Another tenant's voucher is not found.
func (s *journalService) GetVoucher(ctx context.Context, tenantID, voucherID string) (*domain.JournalVoucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, tenantID, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find voucher", slog.String("voucher_id", voucherID))
		}
		return nil, err
	}

	lines, err := s.voucherRepo.FindLinesByVoucherID(ctx, voucher.VoucherID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load voucher lines", slog.String("voucher_id", voucherID))
		return nil, err
	}
	voucher.Lines = lines
	return voucher, nil
}

// ListVouchers retrieves a page of vouchers, newest first.
func (s *journalService) ListVouchers(ctx context.Context, tenantID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	filter := portsrepo.VoucherFilter{TenantID: tenantID, Limit: params.Limit}

	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewInputError("invalid nextToken")
		}
		filter.After = &cursor
	}
	if params.Status != nil && *params.Status != "" {
		status := domain.VoucherStatus(*params.Status)
		filter.Status = &status
	}

	vouchers, next, err := s.voucherRepo.ListVouchers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers", slog.String("tenant_id", tenantID))
		return nil, err
	}

	resp := &dto.ListVouchersResponse{Vouchers: dto.ToVoucherResponses(vouchers)}
	if next != nil {
		token := pagination.EncodeToken(*next)
		resp.NextToken = &token
	}
	return resp, nil
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

func (s *journalService) SubmitVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error) {
	return s.transition(ctx, tenantID, voucherID, actorID, details, domain.ActionSubmit)
}

func (s *journalService) ApproveVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error) {
	return s.transition(ctx, tenantID, voucherID, actorID, details, domain.ActionApprove)
}

func (s *journalService) RejectVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error) {
	return s.transition(ctx, tenantID, voucherID, actorID, details, domain.ActionReject)
}

// transition applies action under the voucher's row lock; the status change and
// its audit entry commit together.
func (s *journalService) transition(ctx context.Context, tenantID, voucherID, actorID string, details *string, action domain.WorkflowAction) (*domain.JournalVoucher, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, apperrors.NewInputError("actorId is required")
	}

	voucher, err := s.voucherRepo.TransitionVoucher(ctx, tenantID, voucherID, action, actorID, details, s.now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to transition voucher",
				slog.String("voucher_id", voucherID),
				slog.String("action", string(action)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Voucher transitioned",
		slog.String("voucher_id", voucherID),
		slog.String("action", string(action)),
		slog.String("status", string(voucher.Status)))
	s.Publish(actorID, "voucher_"+strings.ToLower(string(voucher.Status)), map[string]any{
		"tenant_id":  tenantID,
		"voucher_id": voucherID,
	})
	return voucher, nil
}

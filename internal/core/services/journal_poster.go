package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// journalService posts vouchers, reads them back and runs the approval workflow.
type journalService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	validator   portssvc.BalanceValidatorSvc
	now         func() time.Time
}

// JournalOption is a functional option for configuring the journal service
type JournalOption func(*journalService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) JournalOption {
	return func(s *journalService) {
		s.now = now
	}
}

// WithEventPublisher sends lifecycle events (posted, approved, rejected) to publisher.
func WithEventPublisher(publisher EventPublisher) JournalOption {
	return func(s *journalService) {
		s.Events = publisher
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(voucherRepo portsrepo.VoucherRepositoryFacade, validator portssvc.BalanceValidatorSvc, options ...JournalOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		voucherRepo: voucherRepo,
		validator:   validator,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostVoucher validates the lines and, only if they pass, persists the voucher,
// its lines and the creation audit entry in one transaction. It never retries.
func (s *journalService) PostVoucher(ctx context.Context, tenantID, actorID string, header domain.VoucherHeaderInput, lines []domain.JournalLine) (*domain.JournalVoucher, error) {
	header, err := normalizeHeader(tenantID, actorID, header)
	if err != nil {
		return nil, err
	}

	result, err := s.validator.Validate(ctx, tenantID, lines)
	if err != nil {
		s.LogError(ctx, err, "Account lookup failed during validation", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("%w: %w", portssvc.ErrStorageFailed, err)
	}
	if !result.OK() {
		s.LogInfo(ctx, "Voucher rejected by balance validator",
			slog.String("tenant_id", tenantID),
			slog.String("actor_id", actorID),
			slog.Any("errors", result.Messages()))
		return nil, &portssvc.ValidationFailedError{Errors: result.Errors}
	}

	now := s.now().UTC()
	voucherID := uuid.NewString()

	voucherLines := make([]domain.JournalLine, len(lines))
	for i, line := range lines {
		line.LineID = uuid.NewString()
		line.VoucherID = voucherID
		line.LineNumber = i + 1
		line.AccountID = result.Accounts[line.AccountCode].AccountID
		voucherLines[i] = line
	}

	voucher := domain.JournalVoucher{
		VoucherID:      voucherID,
		TenantID:       tenantID,
		VoucherDate:    header.VoucherDate,
		Narration:      header.Narration,
		VoucherType:    header.VoucherType,
		Status:         header.InitialStatus,
		SourceDocument: header.SourceDocument,
		TotalDebit:     result.TotalDebit,
		TotalCredit:    result.TotalCredit,
		Lines:          voucherLines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	var details *string
	if header.SourceDocument != nil {
		d := "source document " + *header.SourceDocument
		details = &d
	}
	audit := domain.AuditTrailEntry{
		EntryID:   uuid.NewString(),
		TenantID:  tenantID,
		TargetID:  voucherID,
		User:      actorID,
		Action:    domain.CreationAuditAction(header.InitialStatus),
		Timestamp: now,
		Details:   details,
	}

	saved, err := s.voucherRepo.SaveVoucher(ctx, voucher, audit)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist voucher",
			slog.String("tenant_id", tenantID),
			slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("%w: %w", portssvc.ErrStorageFailed, err)
	}

	s.LogInfo(ctx, "Voucher posted",
		slog.String("tenant_id", tenantID),
		slog.String("voucher_id", saved.VoucherID),
		slog.String("voucher_number", saved.VoucherNumber),
		slog.String("status", string(saved.Status)),
		slog.Int("lines", len(saved.Lines)))
	s.Publish(actorID, "voucher_created", map[string]any{
		"tenant_id":    tenantID,
		"voucher_id":   saved.VoucherID,
		"voucher_type": string(saved.VoucherType),
		"status":       string(saved.Status),
		"line_count":   len(saved.Lines),
	})
	return saved, nil
}

// normalizeHeader fills defaults and rejects headers the poster cannot use.
func normalizeHeader(tenantID, actorID string, header domain.VoucherHeaderInput) (domain.VoucherHeaderInput, error) {
	switch {
	case strings.TrimSpace(tenantID) == "":
		return header, apperrors.NewInputError("tenantId is required")
	case strings.TrimSpace(actorID) == "":
		return header, apperrors.NewInputError("actorId is required")
	case header.VoucherDate.IsZero():
		return header, apperrors.NewInputError("date is required")
	case strings.TrimSpace(header.Narration) == "":
		return header, apperrors.NewInputError("narration is required")
	}

	if header.VoucherType == "" {
		header.VoucherType = domain.VoucherManual
	}
	if !header.VoucherType.IsValid() {
		return header, apperrors.NewInputError("unknown voucher type " + string(header.VoucherType))
	}
	if header.InitialStatus == "" {
		header.InitialStatus = domain.StatusPosted
	}
	if !header.InitialStatus.IsCreatable() {
		return header, apperrors.NewInputError("a voucher cannot be created in status " + string(header.InitialStatus))
	}
	return header, nil
}

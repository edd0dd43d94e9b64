package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type auditTrailRecorder struct {
	BaseService
	repo portsrepo.AuditTrailRepository
	now  func() time.Time
}

// NewAuditTrailRecorder creates the recorder used for source documents that are not vouchers.
// Voucher entries are written by the voucher repository inside the posting transaction.
func NewAuditTrailRecorder(repo portsrepo.AuditTrailRepository) portssvc.AuditTrailRecorderSvc {
	return &auditTrailRecorder{repo: repo, now: time.Now}
}

var _ portssvc.AuditTrailRecorderSvc = (*auditTrailRecorder)(nil)

func (r *auditTrailRecorder) Append(ctx context.Context, tenantID, targetID, actorID string, action domain.AuditAction, details *string) (*domain.AuditTrailEntry, error) {
	if strings.TrimSpace(targetID) == "" || strings.TrimSpace(actorID) == "" || action == "" {
		return nil, apperrors.NewInputError("target, actor and action are required")
	}

	entry := domain.AuditTrailEntry{
		EntryID:   uuid.NewString(),
		TenantID:  tenantID,
		TargetID:  targetID,
		User:      actorID,
		Action:    action,
		Timestamp: r.now().UTC(),
		Details:   details,
	}

	saved, err := r.repo.AppendEntry(ctx, entry)
	if err != nil {
		r.LogError(ctx, err, "Failed to append audit entry", slog.String("target_id", targetID))
		return nil, err
	}
	r.LogDebug(ctx, "Audit entry appended", slog.String("target_id", targetID), slog.Int("position", saved.Position))
	return saved, nil
}

func (r *auditTrailRecorder) ListEntries(ctx context.Context, tenantID, targetID string) ([]domain.AuditTrailEntry, error) {
	entries, err := r.repo.ListEntries(ctx, tenantID, targetID)
	if err != nil {
		r.LogError(ctx, err, "Failed to list audit entries", slog.String("target_id", targetID))
		return nil, err
	}
	return entries, nil
}

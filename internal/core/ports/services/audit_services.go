package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// AuditTrailRecorderSvc appends to and reads a target's audit trail.
type AuditTrailRecorderSvc interface {
	// Append records an action against targetID at the next position.
	Append(ctx context.Context, tenantID, targetID, actorID string, action domain.AuditAction, details *string) (*domain.AuditTrailEntry, error)

	// ListEntries returns the trail in position order.
	ListEntries(ctx context.Context, tenantID, targetID string) ([]domain.AuditTrailEntry, error)
}

package repositories

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// AuditTrailRepository persists append-only audit entries.
// There is no update or delete operation.
type AuditTrailRepository interface {
	// AppendEntry assigns the next position for the entry's target and inserts it.
	AppendEntry(ctx context.Context, entry domain.AuditTrailEntry) (*domain.AuditTrailEntry, error)

	// ListEntries returns a target's entries ordered by position.
	ListEntries(ctx context.Context, tenantID, targetID string) ([]domain.AuditTrailEntry, error)
}

package mapping

import (
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/models"
)

// ToModelAuditEntry converts a domain AuditTrailEntry to a model AuditTrailEntry
func ToModelAuditEntry(d domain.AuditTrailEntry) models.AuditTrailEntry {
	return models.AuditTrailEntry{
		EntryID:    d.EntryID,
		TenantID:   d.TenantID,
		TargetID:   d.TargetID,
		Position:   d.Position,
		UserID:     d.User,
		Action:     string(d.Action),
		OccurredAt: d.Timestamp,
		Details:    d.Details,
	}
}

// ToDomainAuditEntry converts a model AuditTrailEntry to a domain AuditTrailEntry
func ToDomainAuditEntry(m models.AuditTrailEntry) domain.AuditTrailEntry {
	return domain.AuditTrailEntry{
		EntryID:   m.EntryID,
		TenantID:  m.TenantID,
		TargetID:  m.TargetID,
		Position:  m.Position,
		User:      m.UserID,
		Action:    domain.AuditAction(m.Action),
		Timestamp: m.OccurredAt,
		Details:   m.Details,
	}
}

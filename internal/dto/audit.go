package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// AppendAuditEntryRequest appends an entry to a source document's trail.
type AppendAuditEntryRequest struct {
	ActorID string             `json:"actorId" binding:"required"`
	Action  domain.AuditAction `json:"action" binding:"required,oneof=Created Submitted Posted Rejected"`
	Details *string            `json:"details,omitempty"`
}

// AuditEntryResponse defines the data returned for an audit entry.
type AuditEntryResponse struct {
	EntryID   string             `json:"entryID"`
	TargetID  string             `json:"targetID"`
	Position  int                `json:"position"`
	User      string             `json:"user"`
	Action    domain.AuditAction `json:"action"`
	Timestamp time.Time          `json:"timestamp"`
	Details   *string            `json:"details,omitempty"`
}

// ListAuditEntriesResponse wraps a target's trail in position order.
type ListAuditEntriesResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
}

// ToAuditEntryResponse converts a domain.AuditTrailEntry to its DTO.
func ToAuditEntryResponse(e *domain.AuditTrailEntry) AuditEntryResponse {
	return AuditEntryResponse{
		EntryID:   e.EntryID,
		TargetID:  e.TargetID,
		Position:  e.Position,
		User:      e.User,
		Action:    e.Action,
		Timestamp: e.Timestamp,
		Details:   e.Details,
	}
}

// ToAuditEntryResponses converts a slice of entries.
func ToAuditEntryResponses(entries []domain.AuditTrailEntry) []AuditEntryResponse {
	res := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToAuditEntryResponse(&entries[i])
	}
	return res
}

package domain

import "time"

// AuditAction names what happened to an audited target.
type AuditAction string

const (
	AuditCreated   AuditAction = "Created"
	AuditSubmitted AuditAction = "Submitted"
	AuditPosted    AuditAction = "Posted"
	AuditRejected  AuditAction = "Rejected"
)

// AuditTrailEntry is an append-only record attached to a voucher or source document.
// Position, not Timestamp, defines the order of entries for a target.
type AuditTrailEntry struct {
	EntryID   string      `json:"entryID"`
	TenantID  string      `json:"tenantID"`
	TargetID  string      `json:"targetID"`
	Position  int         `json:"position"` // 1-based, gap-free per target
	User      string      `json:"user"`
	Action    AuditAction `json:"action"`
	Timestamp time.Time   `json:"timestamp"` // Informational only
	Details   *string     `json:"details,omitempty"`
}

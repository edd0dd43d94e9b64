package models

import "time"

// AuditFields mirrors the created/updated bookkeeping columns. Its fields match
// domain.AuditFields so the two convert directly.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

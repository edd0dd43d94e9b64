package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_app/internal/models"
	"github.com/SscSPs/ledger_posting_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxAuditTrailRepository appends to and reads the audit_trail table.
type PgxAuditTrailRepository struct {
	BaseRepository
}

func newPgxAuditTrailRepository(pool PgxPool) *PgxAuditTrailRepository {
	return &PgxAuditTrailRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditTrailRepository = (*PgxAuditTrailRepository)(nil)

func newEntryID() string {
	return uuid.NewString()
}

// txExecutor is what appendAuditEntry needs from a pgx.Tx.
type txExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// appendAuditEntry inserts entry at the next position of its target.
// The advisory lock serialises appends per target until the surrounding transaction ends,
// so positions stay gap-free under concurrency.
func appendAuditEntry(ctx context.Context, tx txExecutor, entry domain.AuditTrailEntry) (*domain.AuditTrailEntry, error) {
	m := mapping.ToModelAuditEntry(entry)

	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text));`, m.TenantID, m.TargetID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock audit trail for target "+m.TargetID, err)
	}

	query := `
		INSERT INTO audit_trail (entry_id, tenant_id, target_id, position, user_id, action, occurred_at, details)
		SELECT $1, $2, $3, COALESCE(MAX(position), 0) + 1, $4, $5, $6, $7
		FROM audit_trail
		WHERE tenant_id = $2 AND target_id = $3
		RETURNING position;
	`
	err = tx.QueryRow(ctx, query,
		m.EntryID,
		m.TenantID,
		m.TargetID,
		m.UserID,
		m.Action,
		m.OccurredAt,
		m.Details,
	).Scan(&m.Position)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to append audit entry for target "+m.TargetID, err)
	}

	saved := mapping.ToDomainAuditEntry(m)
	return &saved, nil
}

// AppendEntry records an entry in its own transaction.
func (r *PgxAuditTrailRepository) AppendEntry(ctx context.Context, entry domain.AuditTrailEntry) (*domain.AuditTrailEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	saved, err := appendAuditEntry(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// ListEntries returns every entry of a target ordered by position.
func (r *PgxAuditTrailRepository) ListEntries(ctx context.Context, tenantID, targetID string) ([]domain.AuditTrailEntry, error) {
	query := `
		SELECT entry_id, tenant_id, target_id, position, user_id, action, occurred_at, details
		FROM audit_trail
		WHERE tenant_id = $1 AND target_id = $2
		ORDER BY position ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, targetID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit trail for target "+targetID, err)
	}
	defer rows.Close()

	entries := []domain.AuditTrailEntry{}
	for rows.Next() {
		var m models.AuditTrailEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TenantID,
			&m.TargetID,
			&m.Position,
			&m.UserID,
			&m.Action,
			&m.OccurredAt,
			&m.Details,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit entry", err)
		}
		entries = append(entries, mapping.ToDomainAuditEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit entries", err)
	}
	return entries, nil
}

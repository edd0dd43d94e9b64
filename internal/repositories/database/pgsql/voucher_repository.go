package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_app/internal/models"
	"github.com/SscSPs/ledger_posting_app/internal/utils/mapping"
	"github.com/SscSPs/ledger_posting_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and line data.
func newPgxVoucherRepository(pool PgxPool) *PgxVoucherRepository {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, tenant_id, voucher_number, voucher_date, narration, voucher_type, status,
		source_document, total_debit, total_credit,
		created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (models.JournalVoucher, error) {
	var m models.JournalVoucher
	err := row.Scan(
		&m.VoucherID,
		&m.TenantID,
		&m.VoucherNumber,
		&m.VoucherDate,
		&m.Narration,
		&m.VoucherType,
		&m.Status,
		&m.SourceDocument,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveVoucher allocates the voucher number and writes the header, its lines and the
// creation audit entry in a single DB transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.JournalVoucher, audit domain.AuditTrailEntry) (*domain.JournalVoucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored once the transaction is committed
	defer r.Rollback(ctx, tx)

	// 1. Next number for (tenant, prefix, year). The upsert holds the counter row lock
	// until commit, and a rollback gives the number back.
	prefix := voucher.VoucherType.NumberPrefix()
	year := voucher.VoucherDate.Year()
	seqQuery := `
		INSERT INTO voucher_sequences (tenant_id, prefix, fiscal_year, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (tenant_id, prefix, fiscal_year)
		DO UPDATE SET last_value = voucher_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := tx.QueryRow(ctx, seqQuery, voucher.TenantID, prefix, year).Scan(&seq); err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate voucher number", err)
	}
	voucher.VoucherNumber = domain.FormatVoucherNumber(prefix, year, seq)

	// 2. Header
	m := mapping.ToModelVoucher(voucher)
	headerQuery := `
		INSERT INTO journal_vouchers (
			voucher_id, tenant_id, voucher_number, voucher_date, narration, voucher_type, status,
			source_document, total_debit, total_credit,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.VoucherID,
		m.TenantID,
		m.VoucherNumber,
		m.VoucherDate,
		m.Narration,
		m.VoucherType,
		m.Status,
		m.SourceDocument,
		m.TotalDebit,
		m.TotalCredit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}

	// 3. Lines
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, voucher_id, line_no, account_id, account_code, debit_amount, credit_amount, payee_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, line := range voucher.Lines {
		ml := mapping.ToModelLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.VoucherID,
			ml.LineNumber,
			ml.AccountID,
			ml.AccountCode,
			ml.DebitAmount,
			ml.CreditAmount,
			ml.PayeeID,
			ml.Description,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range voucher.Lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to insert line "+strconv.Itoa(i+1)+" of voucher "+m.VoucherID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute line batch for voucher "+m.VoucherID, err)
	}

	// 4. Audit entry
	audit.TargetID = voucher.VoucherID
	if _, err := appendAuditEntry(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &voucher, nil
}

// TransitionVoucher moves a voucher through the approval workflow.
func (r *PgxVoucherRepository) TransitionVoucher(ctx context.Context, tenantID, voucherID string, action domain.WorkflowAction, actorID string, details *string, at time.Time) (*domain.JournalVoucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + voucherColumns + ` FROM journal_vouchers WHERE tenant_id = $1 AND voucher_id = $2 FOR UPDATE;`
	m, err := scanVoucher(tx.QueryRow(ctx, query, tenantID, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock voucher "+voucherID, err)
	}

	voucher := mapping.ToDomainVoucher(m)
	next, err := voucher.Status.Transition(action)
	if err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	updateQuery := `
		UPDATE journal_vouchers
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE voucher_id = $4;
	`
	if _, err := tx.Exec(ctx, updateQuery, string(next), at, actorID, voucherID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update status of voucher "+voucherID, err)
	}
	voucher.Status = next
	voucher.LastUpdatedAt = at
	voucher.LastUpdatedBy = actorID

	entry := domain.AuditTrailEntry{
		EntryID:   newEntryID(),
		TenantID:  tenantID,
		TargetID:  voucherID,
		User:      actorID,
		Action:    action.AuditAction(),
		Timestamp: at,
		Details:   details,
	}
	if _, err := appendAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &voucher, nil
}

// FindVoucherByID retrieves a voucher header. A voucher of another tenant is not found.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.JournalVoucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM journal_vouchers WHERE tenant_id = $1 AND voucher_id = $2;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, tenantID, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher "+voucherID, err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// FindLinesByVoucherID retrieves all lines of a voucher in entry order.
func (r *PgxVoucherRepository) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, voucher_id, line_no, account_id, account_code, debit_amount, credit_amount, payee_id, description
		FROM journal_lines
		WHERE voucher_id = $1
		ORDER BY line_no ASC;
	`
	rows, err := r.Pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for voucher "+voucherID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var ml models.JournalLine
		if err := rows.Scan(
			&ml.LineID,
			&ml.VoucherID,
			&ml.LineNumber,
			&ml.AccountID,
			&ml.AccountCode,
			&ml.DebitAmount,
			&ml.CreditAmount,
			&ml.PayeeID,
			&ml.Description,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for voucher "+voucherID, err)
		}
		lines = append(lines, ml)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for voucher "+voucherID, err)
	}

	return mapping.ToDomainLineSlice(lines), nil
}

// ListVouchers retrieves a page of a tenant's vouchers, newest first.
// One extra row is fetched to know whether another page exists.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, filter portsrepo.VoucherFilter) ([]domain.JournalVoucher, *pagination.Cursor, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + voucherColumns + ` FROM journal_vouchers WHERE tenant_id = $1`
	args := []any{filter.TenantID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.After != nil {
		args = append(args, filter.After.VoucherDate, filter.After.CreatedAt, filter.After.VoucherID)
		query += ` AND (voucher_date, created_at, voucher_id) < ($` + strconv.Itoa(len(args)-2) +
			`, $` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY voucher_date DESC, created_at DESC, voucher_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers for tenant "+filter.TenantID, err)
	}
	defer rows.Close()

	ms := make([]models.JournalVoucher, 0, fetchLimit)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher row for tenant "+filter.TenantID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating voucher rows for tenant "+filter.TenantID, err)
	}

	var next *pagination.Cursor
	if len(ms) > limit {
		last := ms[limit-1]
		next = &pagination.Cursor{VoucherDate: last.VoucherDate, CreatedAt: last.CreatedAt, VoucherID: last.VoucherID}
		ms = ms[:limit]
	}

	vouchers := make([]domain.JournalVoucher, len(ms))
	for i, m := range ms {
		vouchers[i] = mapping.ToDomainVoucher(m)
	}
	return vouchers, next, nil
}

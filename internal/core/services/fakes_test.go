package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

// --- In-memory chart of accounts ---
type memoryChart struct {
	mu       sync.Mutex
	accounts map[string]map[string]domain.Account // tenant -> code -> account
	calls    int
	err      error
}

var _ portsrepo.ChartOfAccountsLookup = (*memoryChart)(nil)

func newMemoryChart() *memoryChart {
	return &memoryChart{accounts: map[string]map[string]domain.Account{}}
}

func (c *memoryChart) add(tenantID, code string, accountType domain.AccountType, active bool) domain.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accounts[tenantID] == nil {
		c.accounts[tenantID] = map[string]domain.Account{}
	}
	acc := domain.Account{
		AccountID:   tenantID + "-" + code,
		TenantID:    tenantID,
		Code:        code,
		Name:        "Account " + code,
		AccountType: accountType,
		IsActive:    active,
	}
	c.accounts[tenantID][code] = acc
	return acc
}

func (c *memoryChart) ResolveAccount(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	acc, ok := c.accounts[tenantID][code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (c *memoryChart) ResolveAccounts(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	out := map[string]domain.Account{}
	for _, code := range codes {
		if acc, ok := c.accounts[tenantID][code]; ok {
			out[code] = acc
		}
	}
	return out, nil
}

// --- In-memory voucher repository ---
// SaveVoucher keeps everything or nothing, mirroring the transactional repository.
type memoryVoucherRepo struct {
	mu        sync.Mutex
	vouchers  map[string]domain.JournalVoucher
	audits    map[string][]domain.AuditTrailEntry
	sequences map[string]int64
	saveErr   error
	saves     int
}

var _ portsrepo.VoucherRepositoryFacade = (*memoryVoucherRepo)(nil)

func newMemoryVoucherRepo() *memoryVoucherRepo {
	return &memoryVoucherRepo{
		vouchers:  map[string]domain.JournalVoucher{},
		audits:    map[string][]domain.AuditTrailEntry{},
		sequences: map[string]int64{},
	}
}

func (r *memoryVoucherRepo) SaveVoucher(ctx context.Context, voucher domain.JournalVoucher, audit domain.AuditTrailEntry) (*domain.JournalVoucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	prefix := voucher.VoucherType.NumberPrefix()
	key := voucher.TenantID + "|" + prefix
	r.sequences[key]++
	voucher.VoucherNumber = domain.FormatVoucherNumber(prefix, voucher.VoucherDate.Year(), r.sequences[key])
	r.vouchers[voucher.VoucherID] = voucher
	audit.Position = len(r.audits[voucher.VoucherID]) + 1
	r.audits[voucher.VoucherID] = append(r.audits[voucher.VoucherID], audit)
	return &voucher, nil
}

func (r *memoryVoucherRepo) TransitionVoucher(ctx context.Context, tenantID, voucherID string, action domain.WorkflowAction, actorID string, details *string, at time.Time) (*domain.JournalVoucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vouchers[voucherID]
	if !ok || v.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
	}
	next, err := v.Status.Transition(action)
	if err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	v.Status = next
	v.LastUpdatedAt = at
	v.LastUpdatedBy = actorID
	r.vouchers[voucherID] = v
	r.audits[voucherID] = append(r.audits[voucherID], domain.AuditTrailEntry{
		TenantID: tenantID, TargetID: voucherID, Position: len(r.audits[voucherID]) + 1,
		User: actorID, Action: action.AuditAction(), Timestamp: at, Details: details,
	})
	return &v, nil
}

func (r *memoryVoucherRepo) FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.JournalVoucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vouchers[voucherID]
	if !ok || v.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
	}
	v.Lines = nil
	return &v, nil
}

func (r *memoryVoucherRepo) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.JournalLine(nil), r.vouchers[voucherID].Lines...), nil
}

func (r *memoryVoucherRepo) ListVouchers(ctx context.Context, filter portsrepo.VoucherFilter) ([]domain.JournalVoucher, *pagination.Cursor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.JournalVoucher{}
	for _, v := range r.vouchers {
		if v.TenantID == filter.TenantID {
			out = append(out, v)
		}
	}
	return out, nil, nil
}

func (r *memoryVoucherRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vouchers)
}

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.JournalVoucher, audit domain.AuditTrailEntry) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, voucher, audit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) TransitionVoucher(ctx context.Context, tenantID, voucherID string, action domain.WorkflowAction, actorID string, details *string, at time.Time) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, tenantID, voucherID, action, actorID, details, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, tenantID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, filter portsrepo.VoucherFilter) ([]domain.JournalVoucher, *pagination.Cursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *pagination.Cursor
	if args.Get(1) != nil {
		next = args.Get(1).(*pagination.Cursor)
	}
	return args.Get(0).([]domain.JournalVoucher), next, args.Error(2)
}

// --- Mock AuditTrailRepository ---
type MockAuditTrailRepository struct {
	mock.Mock
}

var _ portsrepo.AuditTrailRepository = (*MockAuditTrailRepository)(nil)

func (m *MockAuditTrailRepository) AppendEntry(ctx context.Context, entry domain.AuditTrailEntry) (*domain.AuditTrailEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditTrailEntry), args.Error(1)
}

func (m *MockAuditTrailRepository) ListEntries(ctx context.Context, tenantID, targetID string) ([]domain.AuditTrailEntry, error) {
	args := m.Called(ctx, tenantID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditTrailEntry), args.Error(1)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Enqueue(distinctId string, event string, properties map[string]any) {
	m.Called(distinctId, event, properties)
}

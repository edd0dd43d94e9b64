package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/handlers"
	"github.com/SscSPs/ledger_posting_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) PostVoucher(ctx context.Context, tenantID, actorID string, header domain.VoucherHeaderInput, lines []domain.JournalLine) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, tenantID, actorID, header, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}
func (m *MockJournalService) GetVoucher(ctx context.Context, tenantID, voucherID string) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, tenantID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}
func (m *MockJournalService) ListVouchers(ctx context.Context, tenantID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}
func (m *MockJournalService) SubmitVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error) {
	return m.workflow(ctx, "SubmitVoucher", tenantID, voucherID, actorID, details)
}
func (m *MockJournalService) ApproveVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error) {
	return m.workflow(ctx, "ApproveVoucher", tenantID, voucherID, actorID, details)
}
func (m *MockJournalService) RejectVoucher(ctx context.Context, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error) {
	return m.workflow(ctx, "RejectVoucher", tenantID, voucherID, actorID, details)
}
func (m *MockJournalService) workflow(ctx context.Context, method string, tenantID, voucherID, actorID string, details *string) (*domain.JournalVoucher, error) {
	args := m.MethodCalled(method, ctx, tenantID, voucherID, actorID, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock AuditTrailRecorder ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Append(ctx context.Context, tenantID, targetID, actorID string, action domain.AuditAction, details *string) (*domain.AuditTrailEntry, error) {
	args := m.Called(ctx, tenantID, targetID, actorID, action, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditTrailEntry), args.Error(1)
}
func (m *MockAuditService) ListEntries(ctx context.Context, tenantID, targetID string) ([]domain.AuditTrailEntry, error) {
	args := m.Called(ctx, tenantID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditTrailEntry), args.Error(1)
}

var _ portssvc.AuditTrailRecorderSvc = (*MockAuditService)(nil)

// --- Mock ChartOfAccounts ---
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) ResolveAccount(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) ResolveAccounts(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

var _ portssvc.ChartOfAccountsSvc = (*MockChartService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockJournal *MockJournalService
	mockAudit   *MockAuditService
	mockChart   *MockChartService
	guardCalls  int
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.mockJournal = new(MockJournalService)
	suite.mockAudit = new(MockAuditService)
	suite.mockChart = new(MockChartService)
	suite.guardCalls = 0

	countingGuard := func(c *gin.Context) {
		suite.guardCalls++
		c.Next()
	}

	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		ChartOfAccounts: suite.mockChart,
		Journal:         suite.mockJournal,
		AuditTrail:      suite.mockAudit,
	}, countingGuard)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockJournal.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
	suite.mockChart.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

const balancedBody = `{
	"date": "2026-03-31",
	"narration": "Office rent",
	"tenantId": "t1",
	"actorId": "u1",
	"lines": [
		{"accountCode": "1000", "debit": 100, "credit": 0},
		{"accountCode": "2000", "debit": 0, "credit": 100, "payeeId": "p-7"}
	]
}`

func (suite *HandlerTestSuite) TestPostVoucher_Created() {
	voucherID := uuid.NewString()
	suite.mockJournal.On("PostVoucher",
		mock.Anything, "t1", "u1",
		mock.MatchedBy(func(h domain.VoucherHeaderInput) bool {
			return h.Narration == "Office rent" &&
				h.VoucherType == domain.VoucherManual &&
				h.VoucherDate.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
		}),
		mock.MatchedBy(func(lines []domain.JournalLine) bool {
			return len(lines) == 2 &&
				lines[0].AccountCode == "1000" && lines[0].DebitAmount.Equal(decimal.NewFromInt(100)) &&
				lines[1].PayeeID != nil && *lines[1].PayeeID == "p-7" && lines[1].LineNumber == 2
		}),
	).Return(&domain.JournalVoucher{VoucherID: voucherID, VoucherNumber: "JV/2026/000001"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/vouchers", balancedBody, nil)

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal(true, body["success"])
	suite.Equal(voucherID, body["voucherId"])
	suite.Equal("JV/2026/000001", body["voucherNumber"])
	suite.Equal(1, suite.guardCalls)
}

func (suite *HandlerTestSuite) TestPostVoucher_InvalidJSON() {
	w := suite.do(http.MethodPost, "/api/v1/vouchers", `{"date": "2026-03-31",`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal(false, body["success"])
	suite.Equal("Invalid JSON payload", body["error"])
}

func (suite *HandlerTestSuite) TestPostVoucher_FieldErrors() {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing account code",
			body: `{"date":"2026-03-31","narration":"n","tenantId":"t1","actorId":"u1","lines":[{"debit":1,"credit":0}]}`,
			want: "field 'lines[0].accountCode' failed validation 'required'",
		},
		{
			name: "negative debit",
			body: `{"date":"2026-03-31","narration":"n","tenantId":"t1","actorId":"u1","lines":[{"accountCode":"1000","debit":-5,"credit":0}]}`,
			want: "field 'lines[0].debit' failed validation 'gte=0'",
		},
		{
			name: "amount finer than the stored scale",
			body: `{"date":"2026-03-31","narration":"n","tenantId":"t1","actorId":"u1","lines":[{"accountCode":"1000","debit":0.00001},{"accountCode":"2000","credit":0.00001}]}`,
			want: "field 'lines[0].debit' failed validation 'decimalscale=4'",
		},
		{
			name: "amount beyond the column range",
			body: `{"date":"2026-03-31","narration":"n","tenantId":"t1","actorId":"u1","lines":[{"accountCode":"1000","debit":100},{"accountCode":"2000","credit":10000000000000000}]}`,
			want: "field 'lines[1].credit' failed validation 'lt=10000000000000000'",
		},
		{
			name: "bad date",
			body: `{"date":"31/03/2026","narration":"n","tenantId":"t1","actorId":"u1","lines":[]}`,
			want: "field 'date' failed validation 'isodate'",
		},
		{
			name: "missing tenant",
			body: `{"date":"2026-03-31","narration":"n","actorId":"u1","lines":[]}`,
			want: "field 'tenantId' failed validation 'required'",
		},
		{
			name: "unknown status",
			body: `{"date":"2026-03-31","narration":"n","tenantId":"t1","actorId":"u1","status":"REJECTED","lines":[]}`,
			want: "field 'status' failed validation 'oneof=DRAFT PENDING POSTED'",
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/vouchers", tc.body, nil)
			suite.Equal(http.StatusBadRequest, w.Code)
			body := suite.decode(w)
			suite.Equal(false, body["success"])
			suite.Equal(tc.want, body["error"])
		})
	}
	suite.mockJournal.AssertNotCalled(suite.T(), "PostVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostVoucher_ValidationFailed() {
	suite.mockJournal.On("PostVoucher", mock.Anything, "t1", "u1", mock.Anything, mock.Anything).
		Return(nil, &portssvc.ValidationFailedError{Errors: []domain.ValidationError{
			domain.UnknownAccount("9999"),
			domain.Unbalanced(decimal.NewFromInt(100), decimal.RequireFromString("99.5")),
		}}).Once()

	w := suite.do(http.MethodPost, "/api/v1/vouchers", balancedBody, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	body := suite.decode(w)
	suite.Equal(false, body["success"])
	suite.Equal([]any{"UnknownAccount: 9999", "Unbalanced: 100 != 99.5"}, body["errors"])
}

func (suite *HandlerTestSuite) TestPostVoucher_StorageFailureIsOpaque() {
	suite.mockJournal.On("PostVoucher", mock.Anything, "t1", "u1", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", portssvc.ErrStorageFailed, errors.New("pq: connection reset by peer"))).Once()

	w := suite.do(http.MethodPost, "/api/v1/vouchers", balancedBody, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decode(w)
	suite.Equal(false, body["success"])
	suite.Equal("Failed to post voucher", body["error"])
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestPostVoucher_TenantHeaderMismatch() {
	w := suite.do(http.MethodPost, "/api/v1/vouchers", balancedBody, map[string]string{"X-Tenant-ID": "t2"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(false, suite.decode(w)["success"])
}

func (suite *HandlerTestSuite) TestGetVoucher() {
	voucher := &domain.JournalVoucher{
		VoucherID:     "v1",
		TenantID:      "t1",
		VoucherNumber: "PV/2026/000003",
		VoucherDate:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Status:        domain.StatusPosted,
		Lines: []domain.JournalLine{
			{LineNumber: 1, AccountCode: "5000", DebitAmount: decimal.NewFromInt(40), CreditAmount: decimal.Zero},
			{LineNumber: 2, AccountCode: "1000", DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(40)},
		},
	}
	suite.mockJournal.On("GetVoucher", mock.Anything, "t1", "v1").Return(voucher, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/t1/vouchers/v1", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VoucherResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("PV/2026/000003", resp.VoucherNumber)
	suite.Equal("2026-04-02", resp.Date)
	suite.Len(resp.Lines, 2)
}

func (suite *HandlerTestSuite) TestGetVoucher_NotFound() {
	suite.mockJournal.On("GetVoucher", mock.Anything, "t1", "missing").
		Return(nil, apperrors.NewNotFoundError("voucher missing not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/t1/vouchers/missing", "", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestTenantGuard_RejectsOtherTenant() {
	w := suite.do(http.MethodGet, "/api/v1/tenants/t1/vouchers/v1", "", map[string]string{"X-Tenant-ID": "t2"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockJournal.AssertNotCalled(suite.T(), "GetVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListVouchers() {
	token := "abc"
	suite.mockJournal.On("ListVouchers", mock.Anything, "t1",
		mock.MatchedBy(func(p dto.ListVouchersParams) bool {
			return p.Limit == 5 && p.Status != nil && *p.Status == "PENDING"
		}),
	).Return(&dto.ListVouchersResponse{Vouchers: []dto.VoucherResponse{{VoucherID: "v9"}}, NextToken: &token}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/t1/vouchers?limit=5&status=PENDING", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListVouchersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Vouchers, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("abc", *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListVouchers_BadLimit() {
	w := suite.do(http.MethodGet, "/api/v1/tenants/t1/vouchers?limit=500", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("field 'limit' failed validation 'lte=100'", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestListVouchers_BadToken() {
	suite.mockJournal.On("ListVouchers", mock.Anything, "t1", mock.Anything).
		Return(nil, apperrors.NewInputError("invalid nextToken")).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/t1/vouchers?nextToken=%21%21", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invalid nextToken", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestApproveVoucher() {
	suite.mockJournal.On("ApproveVoucher", mock.Anything, "t1", "v1", "approver", (*string)(nil)).
		Return(&domain.JournalVoucher{VoucherID: "v1", Status: domain.StatusPosted}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tenants/t1/vouchers/v1/approve", `{"actorId":"approver"}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("POSTED", suite.decode(w)["status"])
	suite.Equal(1, suite.guardCalls)
}

func (suite *HandlerTestSuite) TestSubmitVoucher_Conflict() {
	suite.mockJournal.On("SubmitVoucher", mock.Anything, "t1", "v1", "u1", (*string)(nil)).
		Return(nil, apperrors.NewConflictError("cannot SUBMIT a voucher in status POSTED")).Once()

	w := suite.do(http.MethodPost, "/api/v1/tenants/t1/vouchers/v1/submit", `{"actorId":"u1"}`, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("cannot SUBMIT a voucher in status POSTED", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestRejectVoucher_WithDetails() {
	suite.mockJournal.On("RejectVoucher", mock.Anything, "t1", "v1", "u2",
		mock.MatchedBy(func(d *string) bool { return d != nil && *d == "wrong cost centre" }),
	).Return(&domain.JournalVoucher{VoucherID: "v1", Status: domain.StatusRejected}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tenants/t1/vouchers/v1/reject", `{"actorId":"u2","details":"wrong cost centre"}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("REJECTED", suite.decode(w)["status"])
}

func (suite *HandlerTestSuite) TestAuditTrail() {
	now := time.Now().UTC()
	suite.mockAudit.On("Append", mock.Anything, "t1", "pay-doc-1", "u1", domain.AuditSubmitted, (*string)(nil)).
		Return(&domain.AuditTrailEntry{EntryID: "e2", TargetID: "pay-doc-1", Position: 2, User: "u1", Action: domain.AuditSubmitted, Timestamp: now}, nil).Once()
	suite.mockAudit.On("ListEntries", mock.Anything, "t1", "pay-doc-1").
		Return([]domain.AuditTrailEntry{
			{EntryID: "e1", Position: 1, Action: domain.AuditCreated},
			{EntryID: "e2", Position: 2, Action: domain.AuditSubmitted},
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tenants/t1/audit-trail/pay-doc-1", `{"actorId":"u1","action":"Submitted"}`, nil)
	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal(float64(2), suite.decode(w)["position"])

	w = suite.do(http.MethodGet, "/api/v1/tenants/t1/audit-trail/pay-doc-1", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAuditEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Entries, 2)
	suite.Equal(1, resp.Entries[0].Position)
	suite.Equal(domain.AuditSubmitted, resp.Entries[1].Action)
}

func (suite *HandlerTestSuite) TestAuditTrail_UnknownAction() {
	w := suite.do(http.MethodPost, "/api/v1/tenants/t1/audit-trail/pay-doc-1", `{"actorId":"u1","action":"Deleted"}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestResolveAccount() {
	suite.mockChart.On("ResolveAccount", mock.Anything, "t1", "1000").
		Return(&domain.Account{AccountID: "a1", TenantID: "t1", Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}, nil).Once()
	suite.mockChart.On("ResolveAccount", mock.Anything, "t1", "9999").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/t1/accounts/1000", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Cash", suite.decode(w)["name"])

	w = suite.do(http.MethodGet, "/api/v1/tenants/t1/accounts/9999", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

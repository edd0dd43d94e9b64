package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the ISO-8601 calendar date accepted for voucher dates.
const DateLayout = "2006-01-02"

// PostVoucherLineRequest is one line of a posting request.
type PostVoucherLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit" binding:"gte=0"`
	Credit      decimal.Decimal `json:"credit" binding:"gte=0"`
	PayeeID     *string         `json:"payeeId,omitempty"`
	Description *string         `json:"description,omitempty"`
}

// PostVoucherRequest is the body of POST /vouchers.
// An empty lines array is accepted here and rejected by the balance validator.
type PostVoucherRequest struct {
	TenantID       string                   `json:"tenantId" binding:"required"`
	ActorID        string                   `json:"actorId" binding:"required"`
	Date           string                   `json:"date" binding:"required,isodate"`
	Narration      string                   `json:"narration" binding:"required"`
	Type           domain.VoucherType       `json:"type,omitempty" binding:"omitempty,oneof=MANUAL PAYMENT ACCRUAL RECEIPT"`
	Status         domain.VoucherStatus     `json:"status,omitempty" binding:"omitempty,oneof=DRAFT PENDING POSTED"`
	SourceDocument *string                  `json:"sourceDocument,omitempty"`
	Lines          []PostVoucherLineRequest `json:"lines" binding:"required,dive"`
}

// ToHeaderInput converts the request header fields to domain input.
// An unparsable date is returned as an apperrors input error wrapping the parse failure.
func (r PostVoucherRequest) ToHeaderInput() (domain.VoucherHeaderInput, error) {
	date, err := ParseVoucherDate(r.Date)
	if err != nil {
		inputErr := apperrors.NewInputError(fmt.Sprintf("field 'date' is not an ISO-8601 date: %q", r.Date))
		return domain.VoucherHeaderInput{}, fmt.Errorf("%w: %w", inputErr, err)
	}
	voucherType := r.Type
	if voucherType == "" {
		voucherType = domain.VoucherManual
	}
	return domain.VoucherHeaderInput{
		VoucherDate:    date,
		Narration:      r.Narration,
		VoucherType:    voucherType,
		InitialStatus:  r.Status,
		SourceDocument: r.SourceDocument,
	}, nil
}

// ToDomainLines converts request lines to domain lines, numbered from 1.
func (r PostVoucherRequest) ToDomainLines() []domain.JournalLine {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			LineNumber:   i + 1,
			AccountCode:  l.AccountCode,
			DebitAmount:  l.Debit,
			CreditAmount: l.Credit,
			PayeeID:      l.PayeeID,
			Description:  l.Description,
		}
	}
	return lines
}

// ParseVoucherDate accepts a calendar date or a full RFC 3339 timestamp and
// returns the UTC calendar date.
func ParseVoucherDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// PostVoucherResponse is returned with 201 Created.
type PostVoucherResponse struct {
	Success       bool   `json:"success"`
	VoucherID     string `json:"voucherId"`
	VoucherNumber string `json:"voucherNumber"`
}

// ValidationFailedResponse is returned with 422.
type ValidationFailedResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// ErrorResponse is returned for 400, 403, 404, 409 and 500.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WorkflowActionRequest is the body of the submit, approve and reject routes.
type WorkflowActionRequest struct {
	ActorID string  `json:"actorId" binding:"required"`
	Details *string `json:"details,omitempty"`
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	Limit     int     `form:"limit,default=20" binding:"gte=1,lte=100"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,oneof=DRAFT PENDING POSTED REJECTED CANCELLED"`
}

// VoucherLineResponse defines the data returned for a voucher line.
type VoucherLineResponse struct {
	LineID      string          `json:"lineID"`
	LineNumber  int             `json:"lineNumber"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	PayeeID     *string         `json:"payeeId,omitempty"`
	Description *string         `json:"description,omitempty"`
}

// VoucherResponse defines the data returned for a voucher header.
type VoucherResponse struct {
	VoucherID      string                `json:"voucherID"`
	TenantID       string                `json:"tenantID"`
	VoucherNumber  string                `json:"voucherNumber"`
	Date           string                `json:"date"`
	Narration      string                `json:"narration"`
	Type           domain.VoucherType    `json:"type"`
	Status         domain.VoucherStatus  `json:"status"`
	SourceDocument *string               `json:"sourceDocument,omitempty"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy  string                `json:"lastUpdatedBy"`
	Lines          []VoucherLineResponse `json:"lines,omitempty"`
}

// ListVouchersResponse wraps a page of vouchers.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherResponse converts a domain.JournalVoucher (with any loaded lines) to VoucherResponse DTO.
func ToVoucherResponse(v *domain.JournalVoucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:      v.VoucherID,
		TenantID:       v.TenantID,
		VoucherNumber:  v.VoucherNumber,
		Date:           v.VoucherDate.Format(DateLayout),
		Narration:      v.Narration,
		Type:           v.VoucherType,
		Status:         v.Status,
		SourceDocument: v.SourceDocument,
		TotalDebit:     v.TotalDebit,
		TotalCredit:    v.TotalCredit,
		CreatedAt:      v.CreatedAt,
		CreatedBy:      v.CreatedBy,
		LastUpdatedAt:  v.LastUpdatedAt,
		LastUpdatedBy:  v.LastUpdatedBy,
	}
	for _, l := range v.Lines {
		resp.Lines = append(resp.Lines, VoucherLineResponse{
			LineID:      l.LineID,
			LineNumber:  l.LineNumber,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			Debit:       l.DebitAmount,
			Credit:      l.CreditAmount,
			PayeeID:     l.PayeeID,
			Description: l.Description,
		})
	}
	return resp
}

// ToVoucherResponses converts a slice of vouchers.
func ToVoucherResponses(vs []domain.JournalVoucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vs))
	for i := range vs {
		res[i] = ToVoucherResponse(&vs[i])
	}
	return res
}

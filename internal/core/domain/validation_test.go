package domain_test

import (
	"testing"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		err  domain.ValidationError
		want string
	}{
		{"empty", domain.EmptyLineSet(), "EmptyLineSet"},
		{"unknown", domain.UnknownAccount("9999"), "UnknownAccount: 9999"},
		{"inactive", domain.InactiveAccount("1999"), "InactiveAccount: 1999"},
		{"unbalanced", domain.Unbalanced(decimal.NewFromInt(100), decimal.RequireFromString("99.5")), "Unbalanced: 100 != 99.5"},
		{"zero", domain.ZeroAmountVoucher(), "ZeroAmountVoucher"},
		{"line", domain.InvalidLine(2, "has both debit and credit"), "InvalidLine: line 2 has both debit and credit"},
		{"total", domain.TotalOutOfRange(decimal.New(12, 15), decimal.New(1, 16)), "TotalOutOfRange: 12000000000000000 is not below 10000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationResult(t *testing.T) {
	assert.True(t, domain.ValidationResult{}.OK())

	r := domain.ValidationResult{Errors: []domain.ValidationError{domain.UnknownAccount("1"), domain.ZeroAmountVoucher()}}
	assert.False(t, r.OK())
	assert.Equal(t, []string{"UnknownAccount: 1", "ZeroAmountVoucher"}, r.Messages())
}

func TestVoucherNumbering(t *testing.T) {
	assert.Equal(t, "JV", domain.VoucherManual.NumberPrefix())
	assert.Equal(t, "PV", domain.VoucherPayment.NumberPrefix())
	assert.Equal(t, "AV", domain.VoucherAccrual.NumberPrefix())
	assert.Equal(t, "RV", domain.VoucherReceipt.NumberPrefix())
	assert.False(t, domain.VoucherType("TRANSFER").IsValid())

	assert.Equal(t, "PV/2026/000042", domain.FormatVoucherNumber("PV", 2026, 42))
	assert.Equal(t, "JV/2026/1234567", domain.FormatVoucherNumber("JV", 2026, 1234567))
}

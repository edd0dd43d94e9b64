package dto

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/SscSPs/ledger_posting_app/internal/utils/accounting"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the request validators on gin's binding engine.
// Decimal fields are validated as float64 so numeric tags like gte apply to them,
// and field errors are reported by their JSON names. Line amounts also get a
// struct-level check on the exact decimal, since the float conversion hides scale.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

// NewValidator returns a standalone validator that reads the same binding tags
// as gin, for callers that decode requests outside an HTTP handler.
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	v.SetTagName("binding")
	if err := registerOn(v); err != nil {
		return nil, err
	}
	return v, nil
}

func registerOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterStructValidation(validateLineAmounts, PostVoucherLineRequest{})

	return v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseVoucherDate(fl.Field().String())
		return err == nil
	})
}

// validateLineAmounts rejects amounts that the ledger would round or overflow on insert.
func validateLineAmounts(sl validator.StructLevel) {
	line, ok := sl.Current().Interface().(PostVoucherLineRequest)
	if !ok {
		return
	}
	reportAmount(sl, line.Debit, "debit", "Debit")
	reportAmount(sl, line.Credit, "credit", "Credit")
}

func reportAmount(sl validator.StructLevel, amount decimal.Decimal, fieldName, structFieldName string) {
	if !amount.Equal(amount.Truncate(accounting.AmountScale)) {
		sl.ReportError(amount, fieldName, structFieldName, "decimalscale", strconv.Itoa(int(accounting.AmountScale)))
		return
	}
	if amount.Abs().GreaterThanOrEqual(accounting.MaxAmount) {
		sl.ReportError(amount, fieldName, structFieldName, "lt", accounting.MaxAmount.String())
	}
}

package services

import (
	"errors"
	"strings"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// ErrStorageFailed marks a posting whose transaction did not commit. Nothing was
// persisted, so the caller may retry.
var ErrStorageFailed = errors.New("storage failed")

// ValidationFailedError carries every problem the balance validator found.
type ValidationFailedError struct {
	Errors []domain.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationFailedError) Unwrap() error {
	return apperrors.ErrValidation
}

// Messages returns the individual messages in validation order.
func (e *ValidationFailedError) Messages() []string {
	return domain.ValidationResult{Errors: e.Errors}.Messages()
}

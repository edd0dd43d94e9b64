package domain

import "fmt"

// VoucherStatus is the lifecycle state of a journal voucher.
type VoucherStatus string

const (
	StatusDraft     VoucherStatus = "DRAFT"
	StatusPending   VoucherStatus = "PENDING"
	StatusPosted    VoucherStatus = "POSTED"
	StatusRejected  VoucherStatus = "REJECTED"
	StatusCancelled VoucherStatus = "CANCELLED"
)

// WorkflowAction is an approval step applied to a voucher.
type WorkflowAction string

const (
	ActionSubmit  WorkflowAction = "SUBMIT"
	ActionApprove WorkflowAction = "APPROVE"
	ActionReject  WorkflowAction = "REJECT"
)

// IsTerminal reports whether no workflow action may leave s.
func (s VoucherStatus) IsTerminal() bool {
	return s == StatusPosted || s == StatusRejected || s == StatusCancelled
}

// IsCreatable reports whether a voucher may be created directly in status s.
func (s VoucherStatus) IsCreatable() bool {
	return s == StatusDraft || s == StatusPending || s == StatusPosted
}

// Transition returns the status reached by applying action to s.
//
//	DRAFT   --submit-->  PENDING
//	PENDING --approve--> POSTED
//	PENDING --reject-->  REJECTED
func (s VoucherStatus) Transition(action WorkflowAction) (VoucherStatus, error) {
	switch {
	case s == StatusDraft && action == ActionSubmit:
		return StatusPending, nil
	case s == StatusPending && action == ActionApprove:
		return StatusPosted, nil
	case s == StatusPending && action == ActionReject:
		return StatusRejected, nil
	}
	return s, fmt.Errorf("cannot %s a voucher in status %s", action, s)
}

// AuditAction returns the audit trail action recorded for a workflow step.
func (a WorkflowAction) AuditAction() AuditAction {
	switch a {
	case ActionSubmit:
		return AuditSubmitted
	case ActionApprove:
		return AuditPosted
	default:
		return AuditRejected
	}
}

// CreationAuditAction is the audit action recorded when a voucher is created in status s.
func CreationAuditAction(s VoucherStatus) AuditAction {
	switch s {
	case StatusDraft:
		return AuditCreated
	case StatusPending:
		return AuditSubmitted
	default:
		return AuditPosted
	}
}

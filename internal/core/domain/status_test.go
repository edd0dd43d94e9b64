package domain_test

import (
	"testing"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestVoucherStatus_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.VoucherStatus
		action  domain.WorkflowAction
		want    domain.VoucherStatus
		wantErr bool
	}{
		{name: "draft submit", from: domain.StatusDraft, action: domain.ActionSubmit, want: domain.StatusPending},
		{name: "pending approve", from: domain.StatusPending, action: domain.ActionApprove, want: domain.StatusPosted},
		{name: "pending reject", from: domain.StatusPending, action: domain.ActionReject, want: domain.StatusRejected},
		{name: "draft approve skips review", from: domain.StatusDraft, action: domain.ActionApprove, wantErr: true},
		{name: "pending resubmit", from: domain.StatusPending, action: domain.ActionSubmit, wantErr: true},
		{name: "posted is terminal", from: domain.StatusPosted, action: domain.ActionReject, wantErr: true},
		{name: "rejected is terminal", from: domain.StatusRejected, action: domain.ActionSubmit, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Transition(tt.action)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.from, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVoucherStatus_Terminal(t *testing.T) {
	for _, s := range []domain.VoucherStatus{domain.StatusPosted, domain.StatusRejected, domain.StatusCancelled} {
		assert.True(t, s.IsTerminal(), s)
		for _, a := range []domain.WorkflowAction{domain.ActionSubmit, domain.ActionApprove, domain.ActionReject} {
			_, err := s.Transition(a)
			assert.Error(t, err, "%s %s", s, a)
		}
	}
	assert.False(t, domain.StatusDraft.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
}

func TestAuditActions(t *testing.T) {
	assert.Equal(t, domain.AuditSubmitted, domain.ActionSubmit.AuditAction())
	assert.Equal(t, domain.AuditPosted, domain.ActionApprove.AuditAction())
	assert.Equal(t, domain.AuditRejected, domain.ActionReject.AuditAction())

	assert.Equal(t, domain.AuditCreated, domain.CreationAuditAction(domain.StatusDraft))
	assert.Equal(t, domain.AuditSubmitted, domain.CreationAuditAction(domain.StatusPending))
	assert.Equal(t, domain.AuditPosted, domain.CreationAuditAction(domain.StatusPosted))

	assert.True(t, domain.StatusPosted.IsCreatable())
	assert.False(t, domain.StatusRejected.IsCreatable())
}

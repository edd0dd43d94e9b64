package mapping

import (
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/models"
)

// ToModelVoucher converts a domain JournalVoucher header to a model JournalVoucher
func ToModelVoucher(d domain.JournalVoucher) models.JournalVoucher {
	return models.JournalVoucher{
		VoucherID:      d.VoucherID,
		TenantID:       d.TenantID,
		VoucherNumber:  d.VoucherNumber,
		VoucherDate:    d.VoucherDate,
		Narration:      d.Narration,
		VoucherType:    string(d.VoucherType),
		Status:         models.VoucherStatus(d.Status),
		SourceDocument: d.SourceDocument,
		TotalDebit:     d.TotalDebit,
		TotalCredit:    d.TotalCredit,
		AuditFields:    models.AuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model JournalVoucher to a domain JournalVoucher (without lines)
func ToDomainVoucher(m models.JournalVoucher) domain.JournalVoucher {
	return domain.JournalVoucher{
		VoucherID:      m.VoucherID,
		TenantID:       m.TenantID,
		VoucherNumber:  m.VoucherNumber,
		VoucherDate:    m.VoucherDate,
		Narration:      m.Narration,
		VoucherType:    domain.VoucherType(m.VoucherType),
		Status:         domain.VoucherStatus(m.Status),
		SourceDocument: m.SourceDocument,
		TotalDebit:     m.TotalDebit,
		TotalCredit:    m.TotalCredit,
		AuditFields:    domain.AuditFields(m.AuditFields),
	}
}

// ToModelLine converts a domain JournalLine to a model JournalLine
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		VoucherID:    d.VoucherID,
		LineNumber:   d.LineNumber,
		AccountID:    d.AccountID,
		AccountCode:  d.AccountCode,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		PayeeID:      d.PayeeID,
		Description:  d.Description,
	}
}

// ToDomainLine converts a model JournalLine to a domain JournalLine
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		VoucherID:    m.VoucherID,
		LineNumber:   m.LineNumber,
		AccountID:    m.AccountID,
		AccountCode:  m.AccountCode,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		PayeeID:      m.PayeeID,
		Description:  m.Description,
	}
}

// ToDomainLineSlice converts a slice of model JournalLines to domain JournalLines
func ToDomainLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLine(m)
	}
	return ds
}

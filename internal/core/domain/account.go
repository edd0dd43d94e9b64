package domain

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	Other     AccountType = "OTHER"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense, Other:
		return true
	}
	return false
}

// Account is an entry in a tenant's chart of accounts.
// Accounts are immutable once referenced by posted lines; administration of the
// chart lives outside this service.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	TenantID    string      `json:"tenantID"`    // Owning company
	Code        string      `json:"code"`        // Unique within a tenant
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

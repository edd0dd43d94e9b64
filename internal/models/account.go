package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account is a row of the accounts table (a tenant's chart of accounts).
type Account struct {
	AccountID   string      `db:"account_id"`
	TenantID    string      `db:"tenant_id"`
	Code        string      `db:"code"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	IsActive    bool        `db:"is_active"`
	AuditFields
}

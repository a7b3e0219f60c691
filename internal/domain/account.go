package domain

import "strings"

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// Account is one entry in the organization's chart of accounts.
// The engine treats accounts as immutable and never reinterprets Type.
type Account struct {
	ID   string      `json:"id" yaml:"id"`
	Name string      `json:"name" yaml:"name"`
	Type AccountType `json:"type" yaml:"type"`
}

// NameContains reports whether the account name contains the given
// substring, case-insensitively.
func (a Account) NameContains(substr string) bool {
	return strings.Contains(strings.ToLower(a.Name), strings.ToLower(substr))
}

// FindAccountByID returns the account with the given ID, or nil.
func FindAccountByID(accounts []Account, id string) *Account {
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i]
		}
	}
	return nil
}

// AccountsOfType returns all accounts of the given type, in catalog order.
func AccountsOfType(accounts []Account, t AccountType) []Account {
	var out []Account
	for _, a := range accounts {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

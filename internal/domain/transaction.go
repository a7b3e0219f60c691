package domain

// TransactionContext is a single raw bank/card transaction as supplied by the
// caller. Sign convention: negative = expense/outflow, positive = income/inflow.
// The engine never re-signs Amount; the absolute value is taken only when
// producing the entry amount.
type TransactionContext struct {
	Amount        float64  `json:"amount"`
	Merchant      string   `json:"merchant,omitempty"`
	Description   string   `json:"description"`
	Category      []string `json:"category,omitempty"`
	PlaidCategory []string `json:"plaid_category,omitempty"`
	Date          string   `json:"date"`
	IsBusiness    bool     `json:"is_business"`
	UserID        string   `json:"user_id"`
	IsNewCategory bool     `json:"is_new_category,omitempty"`
}

// Accounting methods for BusinessContext.
const (
	AccountingMethodCash    = "cash"
	AccountingMethodAccrual = "accrual"
)

// BusinessContext carries optional business details used to bias account and
// category selection. Never required for a valid result.
type BusinessContext struct {
	BusinessType       string `json:"business_type,omitempty"`
	BusinessEntityType string `json:"business_entity_type,omitempty"`
	AccountingMethod   string `json:"accounting_method,omitempty"`
}

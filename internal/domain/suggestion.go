package domain

// EntrySuggestion is a proposed balanced double-entry record for a single
// transaction: one debit leg, one credit leg, equal amount.
type EntrySuggestion struct {
	DebitAccountID  string  `json:"debit_account_id"`
	CreditAccountID string  `json:"credit_account_id"`
	Amount          float64 `json:"amount"`
	Memo            string  `json:"memo"`
	Confidence      float64 `json:"confidence"`
	Explanation     string  `json:"explanation"`
}

// Inference methods for category classification.
const (
	InferenceMethodKeyword = "keyword"
	InferenceMethodAI      = "ai"
)

// CategoryInferenceResult is the outcome of classifying a transaction's
// description/merchant into a category label. Computed fresh per call and
// never persisted by the engine.
type CategoryInferenceResult struct {
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	Method        string  `json:"method"`
	IsNewCategory bool    `json:"is_new_category"`
}

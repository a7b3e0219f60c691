package engine

import (
	"fmt"
	"math"

	"github.com/finbooks/entry-suggest/internal/domain"
)

// Fixed confidence for every alternative suggestion.
const confidenceAlternative = 0.60

// maxAlternatives caps how many substitute entries are generated.
const maxAlternatives = 2

// Alternatives produces up to two lower-confidence alternative entries by
// substituting other accounts of the same type as the primary's variable
// leg: expense accounts for outflows, income accounts for inflows. The
// account already chosen by the primary is excluded. Callers invoke this
// only when the primary confidence falls below their threshold.
func Alternatives(
	primary domain.EntrySuggestion,
	tx domain.TransactionContext,
	accounts []domain.Account,
) []domain.EntrySuggestion {
	varType := domain.AccountTypeExpense
	chosenID := primary.DebitAccountID
	if tx.Amount > 0 {
		varType = domain.AccountTypeIncome
		chosenID = primary.CreditAccountID
	}

	var out []domain.EntrySuggestion
	for _, a := range domain.AccountsOfType(accounts, varType) {
		if len(out) == maxAlternatives {
			break
		}
		if a.ID == chosenID {
			continue
		}

		alt := domain.EntrySuggestion{
			DebitAccountID:  primary.DebitAccountID,
			CreditAccountID: primary.CreditAccountID,
			Amount:          math.Abs(tx.Amount),
			Memo:            primary.Memo,
			Confidence:      confidenceAlternative,
			Explanation:     fmt.Sprintf("Alternative: %s %s", a.Name, a.Type),
		}
		if tx.Amount > 0 {
			alt.CreditAccountID = a.ID
		} else {
			alt.DebitAccountID = a.ID
		}
		out = append(out, alt)
	}
	return out
}

package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/finbooks/entry-suggest/internal/domain"
	"github.com/finbooks/entry-suggest/internal/resolve"
)

// Confidence values assigned by the synthesizer. These are fixed heuristic
// weights, not probabilities.
const (
	confidenceIncome        = 0.85
	confidenceExpense       = 0.80
	confidenceUncategorized = 0.50
	confidenceGeneric       = 0.60
)

// Overrides carries caller-supplied account ids that take precedence over
// resolver output on whichever legs are set. Overrides never change the
// computed confidence.
type Overrides struct {
	DebitAccountID  string
	CreditAccountID string
}

// SuggestEntry synthesizes a balanced double-entry suggestion for a single
// transaction. categoryHints is the ordered list of category labels to feed
// the account resolver; biz may be nil.
//
// It fails with ErrNoAssetAccount when the catalog has no asset account, and
// with ErrNoSuggestion when neither an income nor an expense account can be
// resolved. Every other path returns a complete suggestion.
func SuggestEntry(
	tx domain.TransactionContext,
	accounts []domain.Account,
	categoryHints []string,
	ov Overrides,
	biz *domain.BusinessContext,
) (domain.EntrySuggestion, error) {
	funding := fundingAccount(accounts)
	if funding == nil {
		return domain.EntrySuggestion{}, fmt.Errorf("suggest entry: %w", ErrNoAssetAccount)
	}

	businessType := ""
	if biz != nil && tx.IsBusiness {
		businessType = biz.BusinessType
	}

	var s domain.EntrySuggestion

	switch {
	case tx.Amount > 0:
		income := resolve.ResolveAccount(resolve.Request{
			Accounts:      accounts,
			DesiredType:   domain.AccountTypeIncome,
			CategoryHints: categoryHints,
			Description:   tx.Description,
			Merchant:      tx.Merchant,
		})
		if income == nil {
			return domain.EntrySuggestion{}, fmt.Errorf("suggest entry: no income account resolvable: %w", ErrNoSuggestion)
		}
		s = domain.EntrySuggestion{
			DebitAccountID:  funding.ID,
			CreditAccountID: income.ID,
			Confidence:      confidenceIncome,
			Explanation: fmt.Sprintf("Income received: debit %s and credit %s.",
				funding.Name, income.Name),
		}

	case tx.Amount < 0:
		expense := resolve.ResolveAccount(resolve.Request{
			Accounts:      accounts,
			DesiredType:   domain.AccountTypeExpense,
			CategoryHints: categoryHints,
			Description:   tx.Description,
			Merchant:      tx.Merchant,
			BusinessType:  businessType,
		})
		if expense == nil {
			return domain.EntrySuggestion{}, fmt.Errorf("suggest entry: no expense account resolvable: %w", ErrNoSuggestion)
		}
		payment := paymentAccount(accounts, funding)
		confidence := confidenceExpense
		if expense.NameContains("uncategorized") {
			confidence = confidenceUncategorized
		}
		s = domain.EntrySuggestion{
			DebitAccountID:  expense.ID,
			CreditAccountID: payment.ID,
			Confidence:      confidence,
			Explanation: fmt.Sprintf("Expense paid from %s: debit %s and credit %s.",
				paymentDescription(payment), expense.Name, payment.Name),
		}

	default:
		// Zero amount: fall back to a generic low-confidence entry when an
		// expense account exists at all.
		expense := resolve.ResolveAccount(resolve.Request{
			Accounts:      accounts,
			DesiredType:   domain.AccountTypeExpense,
			CategoryHints: categoryHints,
			Description:   tx.Description,
			Merchant:      tx.Merchant,
			BusinessType:  businessType,
		})
		if expense == nil {
			return domain.EntrySuggestion{}, fmt.Errorf("suggest entry: %w", ErrNoSuggestion)
		}
		s = domain.EntrySuggestion{
			DebitAccountID:  expense.ID,
			CreditAccountID: funding.ID,
			Confidence:      confidenceGeneric,
			Explanation: fmt.Sprintf("Generic entry: debit %s and credit %s.",
				expense.Name, funding.Name),
		}
	}

	s.Amount = math.Abs(tx.Amount)
	s.Memo = memoFor(tx)

	// Overrides win on whichever side is supplied; confidence stays as
	// computed above. Two overrides pointing at the same account are
	// accepted as-is (see DESIGN.md).
	if ov.DebitAccountID != "" {
		s.DebitAccountID = ov.DebitAccountID
	}
	if ov.CreditAccountID != "" {
		s.CreditAccountID = ov.CreditAccountID
	}

	return s, nil
}

// fundingAccount picks the asset account entries clear against: "checking"
// preferred, then "savings", then any asset account.
func fundingAccount(accounts []domain.Account) *domain.Account {
	for _, name := range []string{"checking", "savings"} {
		for i := range accounts {
			if accounts[i].Type == domain.AccountTypeAsset && accounts[i].NameContains(name) {
				return &accounts[i]
			}
		}
	}
	for i := range accounts {
		if accounts[i].Type == domain.AccountTypeAsset {
			return &accounts[i]
		}
	}
	return nil
}

// paymentAccount picks the account an expense clears against: a liability
// account naming a credit card when one exists, otherwise the funding
// account. Expenses typically clear against the card actually used; income
// is never credited to a credit-card liability.
func paymentAccount(accounts []domain.Account, funding *domain.Account) *domain.Account {
	for i := range accounts {
		if accounts[i].Type == domain.AccountTypeLiability && accounts[i].NameContains("credit") {
			return &accounts[i]
		}
	}
	return funding
}

func paymentDescription(a *domain.Account) string {
	if a.Type == domain.AccountTypeLiability {
		return "credit card"
	}
	return "bank account"
}

func memoFor(tx domain.TransactionContext) string {
	memo := strings.TrimSpace(tx.Description)
	if tx.Merchant != "" && !strings.Contains(strings.ToLower(memo), strings.ToLower(tx.Merchant)) {
		if memo != "" {
			memo += " - "
		}
		memo += tx.Merchant
	}
	return memo
}

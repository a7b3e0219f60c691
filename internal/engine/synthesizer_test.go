package engine

import (
	"errors"
	"testing"

	"github.com/finbooks/entry-suggest/internal/domain"
)

func businessCatalog() []domain.Account {
	return []domain.Account{
		{ID: "chk", Name: "Checking", Type: domain.AccountTypeAsset},
		{ID: "meals", Name: "Meals & Entertainment", Type: domain.AccountTypeExpense},
		{ID: "cc", Name: "Business Credit Card", Type: domain.AccountTypeLiability},
		{ID: "consult", Name: "Consulting Income", Type: domain.AccountTypeIncome},
	}
}

func TestSuggestEntry_ExpenseWithCreditCard(t *testing.T) {
	// Scenario: client dinner on the business card.
	tx := domain.TransactionContext{
		Amount:      -85.00,
		Description: "Dinner with client",
		Merchant:    "Olive Garden",
		IsBusiness:  true,
	}

	s, err := SuggestEntry(tx, businessCatalog(), []string{"Meals & Entertainment"}, Overrides{}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.DebitAccountID != "meals" {
		t.Errorf("debit = %q, want meals", s.DebitAccountID)
	}
	if s.CreditAccountID != "cc" {
		t.Errorf("credit = %q, want cc (credit card preferred for expenses)", s.CreditAccountID)
	}
	if s.Amount != 85.00 {
		t.Errorf("amount = %v, want 85.00", s.Amount)
	}
	if s.Confidence != 0.80 {
		t.Errorf("confidence = %v, want 0.80", s.Confidence)
	}
	if s.Explanation == "" {
		t.Error("explanation must always be set")
	}
}

func TestSuggestEntry_Income(t *testing.T) {
	tx := domain.TransactionContext{
		Amount:      1500.00,
		Description: "Client payment received",
		IsBusiness:  true,
	}

	s, err := SuggestEntry(tx, businessCatalog(), []string{"Consulting Income"}, Overrides{}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.DebitAccountID != "chk" {
		t.Errorf("debit = %q, want chk (income lands in the bank account)", s.DebitAccountID)
	}
	if s.CreditAccountID != "consult" {
		t.Errorf("credit = %q, want consult", s.CreditAccountID)
	}
	if s.Amount != 1500.00 {
		t.Errorf("amount = %v, want 1500.00", s.Amount)
	}
	if s.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", s.Confidence)
	}
}

func TestSuggestEntry_UncategorizedExpenseLowConfidence(t *testing.T) {
	accounts := []domain.Account{
		{ID: "chk", Name: "Checking", Type: domain.AccountTypeAsset},
		{ID: "unc", Name: "Uncategorized", Type: domain.AccountTypeExpense},
	}
	tx := domain.TransactionContext{Amount: -10.00, Description: "mystery charge"}

	s, err := SuggestEntry(tx, accounts, nil, Overrides{}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.DebitAccountID != "unc" {
		t.Errorf("debit = %q, want unc", s.DebitAccountID)
	}
	if s.Confidence != 0.50 {
		t.Errorf("confidence = %v, want 0.50 for uncategorized account", s.Confidence)
	}
}

func TestSuggestEntry_NoAssetAccount(t *testing.T) {
	accounts := []domain.Account{
		{ID: "meals", Name: "Meals & Entertainment", Type: domain.AccountTypeExpense},
		{ID: "cc", Name: "Business Credit Card", Type: domain.AccountTypeLiability},
	}
	tx := domain.TransactionContext{Amount: -20.00, Description: "lunch"}

	_, err := SuggestEntry(tx, accounts, nil, Overrides{}, nil)
	if !errors.Is(err, ErrNoAssetAccount) {
		t.Fatalf("SuggestEntry() error = %v, want ErrNoAssetAccount", err)
	}
}

func TestSuggestEntry_NoResolvableAccount(t *testing.T) {
	accounts := []domain.Account{
		{ID: "chk", Name: "Checking", Type: domain.AccountTypeAsset},
	}
	tx := domain.TransactionContext{Amount: -20.00, Description: "lunch"}

	_, err := SuggestEntry(tx, accounts, nil, Overrides{}, nil)
	if !errors.Is(err, ErrNoSuggestion) {
		t.Fatalf("SuggestEntry() error = %v, want ErrNoSuggestion", err)
	}
}

func TestSuggestEntry_OverridePrecedence(t *testing.T) {
	catalog := append(businessCatalog(),
		domain.Account{ID: "cc2", Name: "Backup Credit Card", Type: domain.AccountTypeLiability})
	tx := domain.TransactionContext{
		Amount:      -85.00,
		Description: "Dinner with client",
		IsBusiness:  true,
	}

	base, err := SuggestEntry(tx, catalog, []string{"Meals & Entertainment"}, Overrides{}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}

	s, err := SuggestEntry(tx, catalog, []string{"Meals & Entertainment"},
		Overrides{CreditAccountID: "cc2"}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.CreditAccountID != "cc2" {
		t.Errorf("credit = %q, want override cc2", s.CreditAccountID)
	}
	if s.DebitAccountID != base.DebitAccountID {
		t.Errorf("debit leg changed by credit override: %q vs %q", s.DebitAccountID, base.DebitAccountID)
	}
	if s.Amount != base.Amount {
		t.Errorf("amount changed by override: %v vs %v", s.Amount, base.Amount)
	}
	if s.Confidence != base.Confidence {
		t.Errorf("confidence changed by override: %v vs %v", s.Confidence, base.Confidence)
	}
}

func TestSuggestEntry_DebitOverrideIgnoresContent(t *testing.T) {
	tx := domain.TransactionContext{
		Amount:      -42.00,
		Description: "Dinner with client",
		IsBusiness:  true,
	}
	s, err := SuggestEntry(tx, businessCatalog(), []string{"Meals & Entertainment"},
		Overrides{DebitAccountID: "consult"}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.DebitAccountID != "consult" {
		t.Errorf("debit = %q, want override regardless of description", s.DebitAccountID)
	}
}

func TestSuggestEntry_ZeroAmountGenericEntry(t *testing.T) {
	tx := domain.TransactionContext{Amount: 0, Description: "correction"}

	s, err := SuggestEntry(tx, businessCatalog(), nil, Overrides{}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.Confidence != 0.60 {
		t.Errorf("confidence = %v, want 0.60 for generic entry", s.Confidence)
	}
	if s.DebitAccountID != "meals" || s.CreditAccountID != "chk" {
		t.Errorf("legs = %q/%q, want meals/chk", s.DebitAccountID, s.CreditAccountID)
	}
	if s.Amount != 0 {
		t.Errorf("amount = %v, want 0", s.Amount)
	}
}

func TestSuggestEntry_SavingsFundingWhenNoChecking(t *testing.T) {
	accounts := []domain.Account{
		{ID: "misc", Name: "Brokerage", Type: domain.AccountTypeAsset},
		{ID: "sav", Name: "Savings", Type: domain.AccountTypeAsset},
		{ID: "inc", Name: "Interest Income", Type: domain.AccountTypeIncome},
	}
	tx := domain.TransactionContext{Amount: 12.00, Description: "interest"}

	s, err := SuggestEntry(tx, accounts, []string{"Interest Income"}, Overrides{}, nil)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.DebitAccountID != "sav" {
		t.Errorf("debit = %q, want sav (savings preferred over other assets)", s.DebitAccountID)
	}
}

func TestSuggestEntry_IndustryPreference(t *testing.T) {
	accounts := []domain.Account{
		{ID: "chk", Name: "Checking", Type: domain.AccountTypeAsset},
		{ID: "meals", Name: "Meals & Entertainment", Type: domain.AccountTypeExpense},
		{ID: "veh", Name: "Vehicle Expenses", Type: domain.AccountTypeExpense},
	}
	tx := domain.TransactionContext{
		Amount:      -60.00,
		Description: "job site run",
		IsBusiness:  true,
	}
	biz := &domain.BusinessContext{BusinessType: "tradesperson"}

	s, err := SuggestEntry(tx, accounts, []string{"Meals & Entertainment"}, Overrides{}, biz)
	if err != nil {
		t.Fatalf("SuggestEntry() error = %v", err)
	}
	if s.DebitAccountID != "veh" {
		t.Errorf("debit = %q, want veh (industry preference runs first)", s.DebitAccountID)
	}
}

func TestMemoFor(t *testing.T) {
	tests := []struct {
		name string
		tx   domain.TransactionContext
		want string
	}{
		{"description only", domain.TransactionContext{Description: "Lunch"}, "Lunch"},
		{"merchant appended", domain.TransactionContext{Description: "Lunch", Merchant: "Chipotle"}, "Lunch - Chipotle"},
		{"merchant already present", domain.TransactionContext{Description: "Chipotle order", Merchant: "Chipotle"}, "Chipotle order"},
		{"merchant only", domain.TransactionContext{Merchant: "Chipotle"}, "Chipotle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := memoFor(tt.tx); got != tt.want {
				t.Errorf("memoFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

package resolve

import (
	"testing"

	"github.com/finbooks/entry-suggest/internal/domain"
)

func testCatalog() []domain.Account {
	return []domain.Account{
		{ID: "a1", Name: "Checking", Type: domain.AccountTypeAsset},
		{ID: "a2", Name: "Savings", Type: domain.AccountTypeAsset},
		{ID: "l1", Name: "Business Credit Card", Type: domain.AccountTypeLiability},
		{ID: "e1", Name: "Meals & Entertainment", Type: domain.AccountTypeExpense},
		{ID: "e2", Name: "Travel", Type: domain.AccountTypeExpense},
		{ID: "e3", Name: "Vehicle Expenses", Type: domain.AccountTypeExpense},
		{ID: "e4", Name: "Uncategorized Expense", Type: domain.AccountTypeExpense},
		{ID: "i1", Name: "Consulting Income", Type: domain.AccountTypeIncome},
	}
}

func TestResolveAccount_CategoryKeywords(t *testing.T) {
	got := ResolveAccount(Request{
		Accounts:      testCatalog(),
		DesiredType:   domain.AccountTypeExpense,
		CategoryHints: []string{"Meals & Entertainment"},
	})
	if got == nil || got.ID != "e1" {
		t.Fatalf("ResolveAccount() = %+v, want account e1", got)
	}
}

func TestResolveAccount_RawCategoryAsKeyword(t *testing.T) {
	// "travel" has a table entry, but an unlisted category falls back to the
	// raw string as sole keyword.
	got := ResolveAccount(Request{
		Accounts:      testCatalog(),
		DesiredType:   domain.AccountTypeExpense,
		CategoryHints: []string{"Vehicle"},
	})
	if got == nil || got.ID != "e3" {
		t.Fatalf("ResolveAccount() = %+v, want account e3", got)
	}
}

func TestResolveAccount_IndustryPreferenceBeforeCategory(t *testing.T) {
	// A tradesperson's expense resolution prefers vehicle accounts even when
	// the category hint points at meals.
	got := ResolveAccount(Request{
		Accounts:      testCatalog(),
		DesiredType:   domain.AccountTypeExpense,
		CategoryHints: []string{"Meals & Entertainment"},
		BusinessType:  "tradesperson",
	})
	if got == nil || got.ID != "e3" {
		t.Fatalf("ResolveAccount() = %+v, want vehicle account e3", got)
	}
}

func TestResolveAccount_IndustryIgnoredForIncome(t *testing.T) {
	got := ResolveAccount(Request{
		Accounts:      testCatalog(),
		DesiredType:   domain.AccountTypeIncome,
		CategoryHints: []string{"Consulting Income"},
		BusinessType:  "tradesperson",
	})
	if got == nil || got.ID != "i1" {
		t.Fatalf("ResolveAccount() = %+v, want income account i1", got)
	}
}

func TestResolveAccount_TextSignals(t *testing.T) {
	// No category hint, but the description carries a meal signal.
	got := ResolveAccount(Request{
		Accounts:    testCatalog(),
		DesiredType: domain.AccountTypeExpense,
		Description: "Team dinner downtown",
	})
	if got == nil || got.ID != "e1" {
		t.Fatalf("ResolveAccount() = %+v, want meals account e1", got)
	}
}

func TestResolveAccount_NonGenericFallback(t *testing.T) {
	// Unmatchable hints land on the first non-generic expense account.
	got := ResolveAccount(Request{
		Accounts:      testCatalog(),
		DesiredType:   domain.AccountTypeExpense,
		CategoryHints: []string{"xyzzy"},
	})
	if got == nil || got.ID != "e1" {
		t.Fatalf("ResolveAccount() = %+v, want first non-generic account e1", got)
	}
}

func TestResolveAccount_OnlyGenericRemains(t *testing.T) {
	accounts := []domain.Account{
		{ID: "e4", Name: "Uncategorized Expense", Type: domain.AccountTypeExpense},
	}
	got := ResolveAccount(Request{
		Accounts:      accounts,
		DesiredType:   domain.AccountTypeExpense,
		CategoryHints: []string{"xyzzy"},
	})
	if got == nil || got.ID != "e4" {
		t.Fatalf("ResolveAccount() = %+v, want generic account e4 as last resort", got)
	}
}

func TestResolveAccount_NoAccountOfType(t *testing.T) {
	accounts := []domain.Account{
		{ID: "a1", Name: "Checking", Type: domain.AccountTypeAsset},
	}
	got := ResolveAccount(Request{
		Accounts:    accounts,
		DesiredType: domain.AccountTypeExpense,
	})
	if got != nil {
		t.Fatalf("ResolveAccount() = %+v, want nil for empty type", got)
	}
}

func TestKeywordsForCategory(t *testing.T) {
	tests := []struct {
		category string
		wantAny  string
	}{
		{"Meals & Entertainment", "restaurant"},
		{"meals & entertainment expenses", "restaurant"}, // substring containment
		{"Quantum Flux", "quantum flux"},                 // raw category fallback
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			kws := keywordsForCategory(tt.category)
			found := false
			for _, kw := range kws {
				if kw == tt.wantAny {
					found = true
				}
			}
			if !found {
				t.Errorf("keywordsForCategory(%q) = %v, want to contain %q", tt.category, kws, tt.wantAny)
			}
		})
	}
	if kws := keywordsForCategory("  "); kws != nil {
		t.Errorf("keywordsForCategory(blank) = %v, want nil", kws)
	}
}

func TestIndustryKeywords(t *testing.T) {
	if kws := IndustryKeywords("tradesperson"); len(kws) == 0 || kws[0] != "vehicle" {
		t.Errorf("IndustryKeywords(tradesperson) = %v, want vehicle first", kws)
	}
	if kws := IndustryKeywords("unknown"); kws != nil {
		t.Errorf("IndustryKeywords(unknown) = %v, want nil", kws)
	}
}

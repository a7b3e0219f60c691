package ai

import (
	"strings"
	"testing"

	"github.com/finbooks/entry-suggest/internal/domain"
)

func TestBuildExplanationPrompt(t *testing.T) {
	s, tx, accounts := testSuggestion()
	biz := &domain.BusinessContext{
		BusinessType:       "tradesperson",
		BusinessEntityType: "llc",
		AccountingMethod:   domain.AccountingMethodCash,
	}

	systemPrompt, userPrompt := BuildExplanationPrompt(s, tx, biz, accounts)

	if !strings.Contains(systemPrompt, "GAAP") {
		t.Error("system prompt must carry the GAAP framing")
	}
	for _, want := range []string{
		"Team lunch",
		"Meals & Entertainment (expense)",
		"Checking (asset)",
		"Debit: Meals & Entertainment",
		"Credit: Checking",
		"vehicle costs",  // tradesperson guidance block
		"disregarded",    // llc guidance block
		"cash",
		"1-3",
	} {
		if !strings.Contains(userPrompt, want) {
			t.Errorf("user prompt missing %q\nprompt:\n%s", want, userPrompt)
		}
	}
}

func TestBuildExplanationPrompt_NoBusinessContext(t *testing.T) {
	s, tx, accounts := testSuggestion()

	_, userPrompt := BuildExplanationPrompt(s, tx, nil, accounts)
	if strings.Contains(userPrompt, "Business context") {
		t.Error("business context block must be absent when no context is supplied")
	}
}

func TestBuildExplanationPrompt_UnknownAccountID(t *testing.T) {
	s, tx, accounts := testSuggestion()
	s.DebitAccountID = "ghost"

	_, userPrompt := BuildExplanationPrompt(s, tx, nil, accounts)
	if !strings.Contains(userPrompt, "Debit: ghost") {
		t.Error("unknown account ids fall back to the raw id")
	}
}

func TestBuildCategoryPrompt(t *testing.T) {
	tx := domain.TransactionContext{Description: "flight to Denver", Amount: -300, IsBusiness: true}

	systemPrompt, userPrompt := BuildCategoryPrompt(tx, nil)

	if !strings.Contains(systemPrompt, "JSON") {
		t.Error("system prompt must demand strict JSON")
	}
	if !strings.Contains(userPrompt, "Travel") {
		t.Error("user prompt must list the business taxonomy")
	}
	if !strings.Contains(userPrompt, "Other Business Expense") {
		t.Error("user prompt must offer the fallback category")
	}
	if strings.Contains(userPrompt, "Groceries") {
		t.Error("personal categories must not leak into business prompts")
	}
}

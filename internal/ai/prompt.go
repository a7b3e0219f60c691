package ai

import (
	"fmt"
	"strings"

	"github.com/finbooks/entry-suggest/internal/classify"
	"github.com/finbooks/entry-suggest/internal/domain"
)

const explanationSystemPrompt = "You are an experienced bookkeeper explaining double-entry records " +
	"to a small-business owner. Ground every statement in US GAAP concepts and general tax treatment, " +
	"but use plain language. Never invent accounts that are not in the provided chart of accounts."

// industryGuidance adds a short framing block per business type.
var industryGuidance = map[string]string{
	"creator":      "Content creators commonly deduct equipment, editing software, and platform subscriptions.",
	"tradesperson": "Tradespeople commonly deduct vehicle costs, tools, and job materials.",
	"wellness":     "Wellness practitioners commonly deduct studio supplies, equipment, and liability insurance.",
	"tutor":        "Tutors commonly deduct books, teaching materials, and scheduling software.",
	"real_estate":  "Real estate professionals commonly deduct mileage, marketing, and license fees.",
	"agency":       "Agencies commonly deduct software seats, advertising spend, and contractor fees.",
}

// entityGuidance adds a short framing block per business entity type.
var entityGuidance = map[string]string{
	"sole_proprietorship": "Sole proprietors report business income and expenses on Schedule C.",
	"llc":                 "Single-member LLCs are typically disregarded entities; expenses flow to the owner's return.",
	"s_corp":              "S corporation expenses reduce pass-through income reported on the K-1.",
	"partnership":         "Partnership expenses reduce income allocated to the partners.",
	"c_corp":              "C corporation expenses reduce corporate taxable income directly.",
}

// BuildExplanationPrompt constructs the prompt pair for explanation
// enhancement: the synthesized entry, the full transaction and business
// context, and the chart of accounts, asking for a 1-3 sentence rationale.
func BuildExplanationPrompt(
	s domain.EntrySuggestion,
	tx domain.TransactionContext,
	biz *domain.BusinessContext,
	accounts []domain.Account,
) (systemPrompt, userPrompt string) {
	var b strings.Builder

	b.WriteString("Transaction:\n")
	fmt.Fprintf(&b, "- Description: %s\n", tx.Description)
	if tx.Merchant != "" {
		fmt.Fprintf(&b, "- Merchant: %s\n", tx.Merchant)
	}
	fmt.Fprintf(&b, "- Amount: %.2f (negative = money out)\n", tx.Amount)
	if tx.Date != "" {
		fmt.Fprintf(&b, "- Date: %s\n", tx.Date)
	}
	fmt.Fprintf(&b, "- Business transaction: %t\n", tx.IsBusiness)

	if biz != nil {
		b.WriteString("\nBusiness context:\n")
		if g, ok := industryGuidance[strings.ToLower(biz.BusinessType)]; ok {
			b.WriteString("- " + g + "\n")
		}
		if g, ok := entityGuidance[strings.ToLower(biz.BusinessEntityType)]; ok {
			b.WriteString("- " + g + "\n")
		}
		if biz.AccountingMethod != "" {
			fmt.Fprintf(&b, "- Accounting method: %s\n", biz.AccountingMethod)
		}
	}

	b.WriteString("\nChart of accounts:\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "- %s (%s)\n", a.Name, a.Type)
	}

	b.WriteString("\nProposed entry:\n")
	fmt.Fprintf(&b, "- Debit: %s\n", accountLabel(accounts, s.DebitAccountID))
	fmt.Fprintf(&b, "- Credit: %s\n", accountLabel(accounts, s.CreditAccountID))
	fmt.Fprintf(&b, "- Amount: %.2f\n", s.Amount)

	b.WriteString("\nExplain in 1-3 plain sentences why this debit/credit pairing is appropriate ")
	b.WriteString("for this transaction. Respond with the explanation only, no preamble.\n")

	return explanationSystemPrompt, b.String()
}

const categorySystemPrompt = "You are a bookkeeping assistant that categorizes bank transactions. " +
	"Respond with STRICT JSON only: {\"category\": string, \"confidence\": number between 0 and 1}. " +
	"No code fences, no extra text."

// BuildCategoryPrompt constructs the prompt pair for AI category inference,
// constrained to the known taxonomy plus an explicit escape hatch.
func BuildCategoryPrompt(tx domain.TransactionContext, biz *domain.BusinessContext) (systemPrompt, userPrompt string) {
	var b strings.Builder

	b.WriteString("Use ONLY the following categories:\n")
	for _, c := range classify.KnownCategories(tx.IsBusiness) {
		b.WriteString("- " + c + "\n")
	}
	fallback := classify.FallbackPersonalCategory
	if tx.IsBusiness {
		fallback = classify.FallbackBusinessCategory
	}
	fmt.Fprintf(&b, "- %s (when nothing fits)\n", fallback)

	b.WriteString("\nTransaction:\n")
	fmt.Fprintf(&b, "- Description: %s\n", tx.Description)
	if tx.Merchant != "" {
		fmt.Fprintf(&b, "- Merchant: %s\n", tx.Merchant)
	}
	fmt.Fprintf(&b, "- Amount: %.2f\n", tx.Amount)
	if biz != nil && biz.BusinessType != "" {
		fmt.Fprintf(&b, "- Business type: %s\n", biz.BusinessType)
	}

	b.WriteString("\nReturn the JSON object now.\n")

	return categorySystemPrompt, b.String()
}

func accountLabel(accounts []domain.Account, id string) string {
	if a := domain.FindAccountByID(accounts, id); a != nil {
		return fmt.Sprintf("%s (%s)", a.Name, a.Type)
	}
	return id
}

// Package classify maps a transaction's free-text description and merchant
// to a best-guess category label using ordered keyword rule tables.
package classify

import (
	"strings"

	"github.com/finbooks/entry-suggest/internal/domain"
)

// Classify returns the first matching category for the transaction text.
// It is a total function: any input, including empty strings, yields a
// non-empty category. Business and personal transactions use independent
// rule tables; when no rule matches, a fixed fallback category is returned
// with confidence 0.50.
func Classify(description, merchant string, isBusiness bool) domain.CategoryInferenceResult {
	text := strings.ToLower(description)
	if merchant != "" {
		text += " " + strings.ToLower(merchant)
	}

	rules := personalRules
	fallback := FallbackPersonalCategory
	if isBusiness {
		rules = businessRules
		fallback = FallbackBusinessCategory
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return domain.CategoryInferenceResult{
					Category:   r.category,
					Confidence: r.confidence,
					Method:     domain.InferenceMethodKeyword,
				}
			}
		}
	}

	return domain.CategoryInferenceResult{
		Category:   fallback,
		Confidence: fallbackConfidence,
		Method:     domain.InferenceMethodKeyword,
	}
}

// KnownCategories returns the category labels of the rule table for the
// given audience, in rule order. Used to detect whether an AI-suggested
// category is new to the taxonomy.
func KnownCategories(isBusiness bool) []string {
	rules := personalRules
	if isBusiness {
		rules = businessRules
	}
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.category)
	}
	return out
}

// IsKnownCategory reports whether category matches one of the rule-table
// categories for the audience, case-insensitively.
func IsKnownCategory(category string, isBusiness bool) bool {
	for _, c := range KnownCategories(isBusiness) {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

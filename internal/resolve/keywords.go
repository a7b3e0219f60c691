package resolve

import "strings"

// categoryKeywords maps a lower-cased category label to the keywords used to
// match against account names. Loaded once at process start and never
// mutated.
var categoryKeywords = map[string][]string{
	"meals & entertainment":    {"meals", "food", "restaurant", "dining", "entertainment"},
	"dining out":               {"meals", "food", "restaurant", "dining"},
	"groceries":                {"grocer", "food", "supermarket"},
	"office supplies":          {"office", "supplies", "stationery"},
	"travel":                   {"travel", "transportation", "airfare", "lodging"},
	"transportation":           {"transportation", "travel", "vehicle", "auto"},
	"software & subscriptions": {"software", "subscription", "saas", "technology"},
	"marketing & advertising":  {"marketing", "advertising", "promotion"},
	"professional services":    {"professional", "legal", "accounting", "consulting"},
	"utilities":                {"utilities", "utility", "electric", "internet", "phone"},
	"rent & lease":             {"rent", "lease"},
	"housing":                  {"rent", "mortgage", "housing"},
	"insurance":                {"insurance"},
	"vehicle expenses":         {"vehicle", "auto", "car", "fuel", "gas"},
	"health & fitness":         {"health", "medical", "fitness"},
	"education":                {"education", "training", "books"},
	"consulting income":        {"consulting", "service"},
	"sales":                    {"sales", "revenue"},
}

// keywordsForCategory resolves the keyword set for a category hint.
// An exact table entry wins; otherwise substring containment against table
// keys is tried in both directions; failing that, the raw category string is
// the sole keyword.
func keywordsForCategory(category string) []string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return nil
	}
	if kws, ok := categoryKeywords[key]; ok {
		return kws
	}
	for tableKey, kws := range categoryKeywords {
		if strings.Contains(key, tableKey) || strings.Contains(tableKey, key) {
			return kws
		}
	}
	return []string{key}
}

// signalFamilies are strong category signals recognized directly in
// description/merchant text when the declared category resolves nothing.
// Each family pairs trigger words with the account-name keywords to try.
var signalFamilies = []struct {
	triggers []string
	keywords []string
}{
	{
		triggers: []string{"restaurant", "dinner", "lunch", "coffee", "cafe", "meal"},
		keywords: []string{"meals", "food", "dining", "entertainment"},
	},
	{
		triggers: []string{"flight", "hotel", "airline", "airbnb", "uber", "lyft", "taxi"},
		keywords: []string{"travel", "transportation"},
	},
	{
		triggers: []string{"software", "subscription", "saas", "license"},
		keywords: []string{"software", "subscription", "technology"},
	},
	{
		triggers: []string{"staples", "paper", "printer", "office"},
		keywords: []string{"office", "supplies"},
	},
}

// genericNameMarkers flag catch-all accounts skipped by the non-generic
// fallback step.
var genericNameMarkers = []string{"uncategorized", "miscellaneous", "other"}

package resolve

import "strings"

// industryPreferences maps a business type to an ordered list of preferred
// expense-account keywords. Earlier keywords are tried first. Pure lookup,
// no state.
var industryPreferences = map[string][]string{
	"creator":      {"equipment", "software", "subscription", "marketing"},
	"tradesperson": {"vehicle", "tools", "materials", "equipment"},
	"wellness":     {"supplies", "equipment", "insurance", "education"},
	"tutor":        {"books", "materials", "software", "supplies"},
	"real_estate":  {"vehicle", "marketing", "license", "insurance"},
	"agency":       {"software", "advertising", "contractor", "subscription"},
}

// IndustryKeywords returns the ordered preferred expense keywords for a
// business type, or nil when the industry is unknown.
func IndustryKeywords(businessType string) []string {
	return industryPreferences[strings.ToLower(strings.TrimSpace(businessType))]
}

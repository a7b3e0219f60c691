package classify

// rule maps a set of keywords to a category with a fixed confidence.
// Rules are evaluated in order and the first keyword hit wins, so earlier
// rules take precedence when keyword sets overlap. The ordering below is
// part of the classifier's contract: reordering changes results.
type rule struct {
	keywords   []string
	category   string
	confidence float64
}

// businessRules classify business transactions. Ordering is deliberate:
// meals before travel so "restaurant" never lands in a travel category, and
// software before marketing so "subscription" stays out of ad spend.
var businessRules = []rule{
	{
		keywords:   []string{"restaurant", "cafe", "coffee", "dinner", "lunch", "catering", "doordash", "grubhub", "ubereats"},
		category:   "Meals & Entertainment",
		confidence: 0.85,
	},
	{
		keywords:   []string{"staples", "office depot", "paper", "printer", "ink", "stationery", "office supplies"},
		category:   "Office Supplies",
		confidence: 0.85,
	},
	{
		keywords:   []string{"airline", "flight", "hotel", "airbnb", "rental car", "uber", "lyft", "taxi", "train", "parking"},
		category:   "Travel",
		confidence: 0.85,
	},
	{
		keywords:   []string{"software", "subscription", "saas", "adobe", "microsoft", "google workspace", "zoom", "slack", "dropbox", "github"},
		category:   "Software & Subscriptions",
		confidence: 0.90,
	},
	{
		keywords:   []string{"facebook ads", "google ads", "advertising", "marketing", "mailchimp", "billboard", "sponsor"},
		category:   "Marketing & Advertising",
		confidence: 0.85,
	},
	{
		keywords:   []string{"attorney", "lawyer", "accountant", "cpa", "consultant", "legal", "bookkeep", "notary"},
		category:   "Professional Services",
		confidence: 0.85,
	},
	{
		keywords:   []string{"electric", "water", "gas bill", "internet", "phone", "utility", "utilities", "comcast", "verizon", "at&t"},
		category:   "Utilities",
		confidence: 0.85,
	},
	{
		keywords:   []string{"rent", "lease", "landlord", "coworking", "wework"},
		category:   "Rent & Lease",
		confidence: 0.85,
	},
	{
		keywords:   []string{"insurance", "premium", "geico", "state farm", "allstate"},
		category:   "Insurance",
		confidence: 0.85,
	},
	{
		keywords:   []string{"gas station", "fuel", "shell", "chevron", "exxon", "oil change", "auto repair", "tires", "car wash"},
		category:   "Vehicle Expenses",
		confidence: 0.80,
	},
}

// personalRules classify personal transactions. Groceries come before dining
// so supermarket names win over generic food keywords.
var personalRules = []rule{
	{
		keywords:   []string{"grocery", "supermarket", "safeway", "kroger", "trader joe", "whole foods", "aldi", "costco"},
		category:   "Groceries",
		confidence: 0.90,
	},
	{
		keywords:   []string{"restaurant", "cafe", "coffee", "dinner", "lunch", "doordash", "grubhub", "ubereats", "mcdonald", "starbucks"},
		category:   "Dining Out",
		confidence: 0.85,
	},
	{
		keywords:   []string{"netflix", "spotify", "hulu", "disney", "cinema", "movie", "concert", "ticketmaster", "steam"},
		category:   "Entertainment",
		confidence: 0.85,
	},
	{
		keywords:   []string{"uber", "lyft", "taxi", "transit", "metro", "bus", "train", "parking", "gas station", "fuel"},
		category:   "Transportation",
		confidence: 0.80,
	},
	{
		keywords:   []string{"electric", "water", "gas bill", "internet", "phone", "utility", "utilities"},
		category:   "Utilities",
		confidence: 0.85,
	},
	{
		keywords:   []string{"rent", "mortgage", "landlord", "hoa"},
		category:   "Housing",
		confidence: 0.85,
	},
	{
		keywords:   []string{"pharmacy", "doctor", "dentist", "hospital", "clinic", "cvs", "walgreens", "gym", "fitness"},
		category:   "Health & Fitness",
		confidence: 0.80,
	},
	{
		keywords:   []string{"amazon", "target", "walmart", "ebay", "etsy", "clothing", "shoes", "mall"},
		category:   "Shopping",
		confidence: 0.80,
	},
	{
		keywords:   []string{"insurance", "premium"},
		category:   "Insurance",
		confidence: 0.85,
	},
	{
		keywords:   []string{"tuition", "course", "udemy", "coursera", "book", "school"},
		category:   "Education",
		confidence: 0.80,
	},
}

// Fallback categories when no rule matches.
const (
	FallbackBusinessCategory = "Other Business Expense"
	FallbackPersonalCategory = "Other Personal Expense"

	fallbackConfidence = 0.50
)

// Package resolve finds the best-matching account of a requested type in the
// chart of accounts, given category hints and transaction text.
//
// Resolution is an ordered chain of layers tried in sequence, short-circuiting
// on the first non-nil result: industry preference (business expenses only),
// category keyword mapping, description/merchant signals, non-generic
// fallback, then any account of the type. Explicit caller overrides bypass
// the chain entirely and are applied by the synthesizer.
package resolve

import (
	"strings"

	"github.com/finbooks/entry-suggest/internal/domain"
)

// Request carries everything a resolution pass may consult.
type Request struct {
	Accounts      []domain.Account
	DesiredType   domain.AccountType
	CategoryHints []string
	Description   string
	Merchant      string
	BusinessType  string
}

// layer is one resolution strategy. A nil result passes control to the next
// layer in the chain.
type layer func(Request) *domain.Account

// chain lists the layers in priority order. The ordering is load-bearing:
// industry preference must run before category mapping for business expense
// transactions.
var chain = []layer{
	byIndustryPreference,
	byCategoryKeywords,
	byTextSignals,
	byNonGenericFallback,
	byAnyOfType,
}

// ResolveAccount runs the resolution chain. It returns nil when the catalog
// holds no account of the requested type; callers must treat that as
// "cannot synthesize an entry".
func ResolveAccount(req Request) *domain.Account {
	for _, l := range chain {
		if a := l(req); a != nil {
			return a
		}
	}
	return nil
}

// byIndustryPreference prefers accounts matching the industry's keyword set.
// Applies only when resolving an expense account for a known business type.
func byIndustryPreference(req Request) *domain.Account {
	if req.DesiredType != domain.AccountTypeExpense || req.BusinessType == "" {
		return nil
	}
	keywords := IndustryKeywords(req.BusinessType)
	if len(keywords) == 0 {
		return nil
	}
	return firstMatch(req.Accounts, req.DesiredType, keywords)
}

// byCategoryKeywords maps the first category hint through the keyword table
// and matches account names against the resolved keywords.
func byCategoryKeywords(req Request) *domain.Account {
	if len(req.CategoryHints) == 0 {
		return nil
	}
	keywords := keywordsForCategory(req.CategoryHints[0])
	if len(keywords) == 0 {
		return nil
	}
	return firstMatch(req.Accounts, req.DesiredType, keywords)
}

// byTextSignals re-attempts keyword matching directly against the
// description and merchant. This covers transactions with no usable
// category but an obviously categorizable description.
func byTextSignals(req Request) *domain.Account {
	text := strings.ToLower(req.Description + " " + req.Merchant)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	for _, fam := range signalFamilies {
		triggered := false
		for _, trig := range fam.triggers {
			if strings.Contains(text, trig) {
				triggered = true
				break
			}
		}
		if !triggered {
			continue
		}
		if a := firstMatch(req.Accounts, req.DesiredType, fam.keywords); a != nil {
			return a
		}
	}
	return nil
}

// byNonGenericFallback returns the first account of the type whose name
// avoids catch-all markers.
func byNonGenericFallback(req Request) *domain.Account {
	for i := range req.Accounts {
		a := &req.Accounts[i]
		if a.Type != req.DesiredType {
			continue
		}
		if isGenericName(a.Name) {
			continue
		}
		return a
	}
	return nil
}

// byAnyOfType is the final fallback: any account of the requested type.
func byAnyOfType(req Request) *domain.Account {
	for i := range req.Accounts {
		if req.Accounts[i].Type == req.DesiredType {
			return &req.Accounts[i]
		}
	}
	return nil
}

// firstMatch walks keywords in priority order and returns the first account
// of the desired type whose name contains the keyword.
func firstMatch(accounts []domain.Account, t domain.AccountType, keywords []string) *domain.Account {
	for _, kw := range keywords {
		for i := range accounts {
			a := &accounts[i]
			if a.Type == t && a.NameContains(kw) {
				return a
			}
		}
	}
	return nil
}

func isGenericName(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range genericNameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

package engine

import "errors"

// Fatal errors. Everything else the engine handles by degrading confidence,
// never by failing.
var (
	// ErrNoAssetAccount is returned when the chart of accounts holds no
	// asset account to fund the entry. Every organization must have at
	// least one.
	ErrNoAssetAccount = errors.New("no asset account available in chart of accounts")

	// ErrNoSuggestion is returned when neither an income nor an expense
	// account can be resolved for the transaction.
	ErrNoSuggestion = errors.New("no entry suggestion possible")
)

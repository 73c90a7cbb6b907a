package ingest

import (
	"time"

	"github.com/tradelens/tradelens/internal/domain"
)

// FilterByDateRange returns the rows whose trade date falls within
// [start, end] inclusive. Either bound may be nil to leave that side open.
func FilterByDateRange(ledger domain.Ledger, start, end *time.Time) domain.Ledger {
	if start == nil && end == nil {
		return ledger
	}

	filtered := make(domain.Ledger, 0, len(ledger))
	for _, t := range ledger {
		if start != nil && t.TradeDate.Before(*start) {
			continue
		}
		if end != nil && t.TradeDate.After(*end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// FilterBySymbols keeps only rows whose symbol is in the allow-set.
// An absent or empty set means no filtering.
func FilterBySymbols(ledger domain.Ledger, symbols []string) domain.Ledger {
	if len(symbols) == 0 {
		return ledger
	}

	allowed := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		allowed[s] = true
	}

	filtered := make(domain.Ledger, 0, len(ledger))
	for _, t := range ledger {
		if allowed[t.Symbol] {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

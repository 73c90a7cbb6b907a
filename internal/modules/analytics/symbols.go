package analytics

import (
	"sort"

	"github.com/tradelens/tradelens/internal/domain"
)

// AggregateSymbols rolls up the full ledger per symbol. The full ledger
// (not just the closed set) is grouped so that fees on symbols that were
// bought but never sold are still captured. Win/loss counts and best and
// worst trades join in from the closed-trade set with zero defaults.
// Result is sorted descending by net P/L.
func AggregateSymbols(ledger domain.Ledger) []SymbolStats {
	symbols := ledger.Symbols()
	index := make(map[string]int, len(symbols))

	stats := make([]SymbolStats, len(symbols))
	netQty := make([]float64, len(symbols))
	for i, sym := range symbols {
		index[sym] = i
		stats[i].Symbol = sym
	}

	for _, t := range ledger {
		i := index[t.Symbol]
		stats[i].NetPnL += t.RealizedPnL
		stats[i].Fees += t.Commission
		netQty[i] += t.Quantity

		if !t.IsClosing() {
			continue
		}

		stats[i].Trades++
		if t.IsWin() {
			stats[i].Wins++
		} else {
			stats[i].Losses++
		}
		if stats[i].Trades == 1 || t.RealizedPnL > stats[i].BestTrade {
			stats[i].BestTrade = t.RealizedPnL
		}
		if stats[i].Trades == 1 || t.RealizedPnL < stats[i].WorstTrade {
			stats[i].WorstTrade = t.RealizedPnL
		}
	}

	for i := range stats {
		if stats[i].Trades > 0 {
			stats[i].WinRate = float64(stats[i].Wins) / float64(stats[i].Trades) * 100
			stats[i].AvgPnL = stats[i].NetPnL / float64(stats[i].Trades)
		}
		stats[i].OpenPosition = netQty[i] > 0
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].NetPnL > stats[b].NetPnL
	})

	return stats
}

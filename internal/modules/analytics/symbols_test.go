package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradelens/tradelens/internal/domain"
)

func TestAggregateSymbols_OpeningFeesAreCaptured(t *testing.T) {
	// One opening buy (zero realized P/L, $1 fee) and one closing sell
	// ($50 realized, $1 fee) for the same symbol.
	openRow := opening(t, "2024-01-02", "XYZ", 10, -1)
	closeRow := closing(t, "2024-01-05", "XYZ", 50, -1)

	stats := AggregateSymbols(domain.Ledger{openRow, closeRow})
	require.Len(t, stats, 1)

	xyz := stats[0]
	assert.Equal(t, "XYZ", xyz.Symbol)
	assert.Equal(t, 1, xyz.Trades) // only the closing event counts
	assert.InDelta(t, 50, xyz.NetPnL, 1e-9)
	assert.InDelta(t, -2, xyz.Fees, 1e-9)
	assert.Equal(t, 100.0, xyz.WinRate)
	assert.InDelta(t, 50, xyz.AvgPnL, 1e-9)
}

func TestAggregateSymbols_OpenPositionFlag(t *testing.T) {
	ledger := domain.Ledger{
		opening(t, "2024-01-02", "HELD", 10, -1),
		opening(t, "2024-01-02", "FLAT", 10, -1),
		closing(t, "2024-01-05", "FLAT", 20, -1),
	}
	// FLAT's closing row sells the full quantity.
	ledger[2].Quantity = -10

	stats := AggregateSymbols(ledger)
	bySymbol := make(map[string]SymbolStats)
	for _, s := range stats {
		bySymbol[s.Symbol] = s
	}

	assert.True(t, bySymbol["HELD"].OpenPosition)
	assert.False(t, bySymbol["FLAT"].OpenPosition)
}

func TestAggregateSymbols_NoClosedTradesDefaults(t *testing.T) {
	stats := AggregateSymbols(domain.Ledger{
		opening(t, "2024-01-02", "NEW", 10, -1),
	})
	require.Len(t, stats, 1)

	assert.Equal(t, 0, stats[0].Trades)
	assert.Equal(t, 0.0, stats[0].WinRate)
	assert.Equal(t, 0.0, stats[0].BestTrade)
	assert.Equal(t, 0.0, stats[0].WorstTrade)
	assert.Equal(t, 0.0, stats[0].AvgPnL)
}

func TestAggregateSymbols_SortedByNetPnLDescending(t *testing.T) {
	ledger := domain.Ledger{
		closing(t, "2024-01-02", "SMALL", 10, -1),
		closing(t, "2024-01-03", "BIG", 500, -1),
		closing(t, "2024-01-04", "LOSER", -100, -1),
	}

	stats := AggregateSymbols(ledger)
	require.Len(t, stats, 3)
	assert.Equal(t, "BIG", stats[0].Symbol)
	assert.Equal(t, "SMALL", stats[1].Symbol)
	assert.Equal(t, "LOSER", stats[2].Symbol)
}

func TestAggregateSymbols_BestAndWorstTrade(t *testing.T) {
	ledger := domain.Ledger{
		closing(t, "2024-01-02", "AAPL", 100, -1),
		closing(t, "2024-01-03", "AAPL", -40, -1),
		closing(t, "2024-01-04", "AAPL", 70, -1),
	}

	stats := AggregateSymbols(ledger)
	require.Len(t, stats, 1)
	assert.Equal(t, 100.0, stats[0].BestTrade)
	assert.Equal(t, -40.0, stats[0].WorstTrade)
	assert.Equal(t, 2, stats[0].Wins)
	assert.Equal(t, 1, stats[0].Losses)
}

package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tradelens/tradelens/internal/domain"
)

func makeLedger(t *testing.T) domain.Ledger {
	t.Helper()
	return domain.Ledger{
		{TradeDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Symbol: "AAPL"},
		{TradeDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Symbol: "MSFT"},
		{TradeDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Symbol: "AAPL"},
	}
}

func TestFilterByDateRange(t *testing.T) {
	ledger := makeLedger(t)
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		expected int
	}{
		{"no bounds", nil, nil, 3},
		{"start only", &start, nil, 2},
		{"end only", nil, &end, 2},
		{"both bounds", &start, &end, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterByDateRange(ledger, tt.start, tt.end), tt.expected)
		})
	}
}

func TestFilterByDateRange_BoundsAreInclusive(t *testing.T) {
	ledger := makeLedger(t)
	exact := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	filtered := FilterByDateRange(ledger, &exact, &exact)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "MSFT", filtered[0].Symbol)
}

func TestFilterBySymbols(t *testing.T) {
	ledger := makeLedger(t)

	assert.Len(t, FilterBySymbols(ledger, nil), 3)
	assert.Len(t, FilterBySymbols(ledger, []string{}), 3)
	assert.Len(t, FilterBySymbols(ledger, []string{"AAPL"}), 2)
	assert.Len(t, FilterBySymbols(ledger, []string{"AAPL", "MSFT"}), 3)
	assert.Empty(t, FilterBySymbols(ledger, []string{"TSLA"}))
}

package analytics

import (
	"testing"
	"time"

	"github.com/tradelens/tradelens/internal/domain"
)

// day parses a YYYY-MM-DD test date.
func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

// closing builds a closed-trade row (non-zero realized P/L).
func closing(t *testing.T, date, symbol string, pnl, commission float64) domain.TradeRecord {
	t.Helper()
	return domain.TradeRecord{
		TradeDate:   day(t, date),
		Symbol:      symbol,
		Quantity:    -10,
		TradePrice:  100,
		RealizedPnL: pnl,
		Commission:  commission,
	}
}

// opening builds an opening row (zero realized P/L).
func opening(t *testing.T, date, symbol string, qty, commission float64) domain.TradeRecord {
	t.Helper()
	return domain.TradeRecord{
		TradeDate:  day(t, date),
		Symbol:     symbol,
		Quantity:   qty,
		TradePrice: 100,
		Commission: commission,
	}
}

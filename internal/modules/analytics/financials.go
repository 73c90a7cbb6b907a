package analytics

import (
	"math"

	"github.com/tradelens/tradelens/internal/domain"
)

// Financials are the global rollups over the entire ledger, closed or not.
// Summing the full ledger captures every cent of commission paid, even on
// opening trades or positions not yet closed.
type Financials struct {
	TotalNetPnL           float64 `json:"total_pnl_net"`
	TotalFees             float64 `json:"total_fees"`
	CommissionPct         float64 `json:"commission_pct"`
	AvgCommissionPerTrade float64 `json:"avg_commission_per_trade"`
}

// ComputeFinancials rolls up P/L and fees over the full ledger.
func ComputeFinancials(ledger domain.Ledger) Financials {
	var f Financials
	for _, t := range ledger {
		f.TotalNetPnL += t.RealizedPnL
		f.TotalFees += t.Commission
	}

	if f.TotalNetPnL != 0 {
		f.CommissionPct = math.Abs(f.TotalFees) / math.Abs(f.TotalNetPnL) * 100
	}
	if len(ledger) > 0 {
		f.AvgCommissionPerTrade = f.TotalFees / float64(len(ledger))
	}

	return f
}

// DailyPnL is the realized P/L summed over one calendar date.
type DailyPnL struct {
	Date string // YYYY-MM-DD
	Net  float64
}

// DailyNetSeries groups ledger rows by the date component of their trade
// timestamp and sums realized P/L per date. Only dates that had at least
// one trade appear; non-trading days are not zero-filled. The ledger is
// already sorted, so output order is chronological.
func DailyNetSeries(ledger domain.Ledger) []DailyPnL {
	var series []DailyPnL
	for _, t := range ledger {
		date := t.TradeDate.Format("2006-01-02")
		if n := len(series); n > 0 && series[n-1].Date == date {
			series[n-1].Net += t.RealizedPnL
			continue
		}
		series = append(series, DailyPnL{Date: date, Net: t.RealizedPnL})
	}
	return series
}

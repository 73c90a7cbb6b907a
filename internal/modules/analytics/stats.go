package analytics

import (
	"math"

	"github.com/tradelens/tradelens/internal/domain"
	"github.com/tradelens/tradelens/pkg/formulas"
)

// ClosedStats are the statistics over the closed-trade set (rows with
// non-zero realized P/L).
type ClosedStats struct {
	TotalTrades  int
	NumWins      int
	NumLosses    int
	NumBreakeven int // cannot occur by the closed-trade filter; kept at 0
	WinRate      float64
	AvgWin       float64
	AvgLoss      float64
	LargestWin   float64
	LargestLoss  float64
	GrossProfit  float64
	GrossLoss    float64
	ProfitFactor float64
	AvgRRRatio   float64
	Expectancy   float64
	WinPnLs      []float64
}

// ComputeClosedStats computes win/loss statistics over the closed-trade
// set. An empty set yields all zeros, including a profit factor of 0 -
// deliberately asymmetric with the all-wins case, where the profit factor
// is positive infinity.
func ComputeClosedStats(closed domain.Ledger) ClosedStats {
	var stats ClosedStats
	stats.TotalTrades = len(closed)
	if stats.TotalTrades == 0 {
		return stats
	}

	var winPnLs, lossPnLs []float64
	for _, t := range closed {
		if t.RealizedPnL > 0 {
			winPnLs = append(winPnLs, t.RealizedPnL)
		} else {
			lossPnLs = append(lossPnLs, t.RealizedPnL)
		}
	}

	stats.NumWins = len(winPnLs)
	stats.NumLosses = len(lossPnLs)
	stats.WinRate = float64(stats.NumWins) / float64(stats.TotalTrades) * 100
	stats.WinPnLs = winPnLs

	stats.AvgWin = formulas.Mean(winPnLs)
	stats.AvgLoss = formulas.Mean(lossPnLs)
	stats.LargestWin = formulas.Max(winPnLs)
	stats.LargestLoss = formulas.Min(lossPnLs)

	stats.GrossProfit = formulas.Sum(winPnLs)
	stats.GrossLoss = math.Abs(formulas.Sum(lossPnLs))
	if stats.GrossLoss > 0 {
		stats.ProfitFactor = stats.GrossProfit / stats.GrossLoss
	} else {
		stats.ProfitFactor = math.Inf(1)
	}

	if stats.AvgLoss != 0 {
		stats.AvgRRRatio = math.Abs(stats.AvgWin) / math.Abs(stats.AvgLoss)
	}

	// AvgLoss is already negative: this is a signed weighted average, not
	// magnitude subtraction.
	winProb := stats.WinRate / 100
	stats.Expectancy = winProb*stats.AvgWin + (1-winProb)*stats.AvgLoss

	return stats
}

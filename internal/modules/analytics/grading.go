package analytics

import (
	"math"

	"github.com/tradelens/tradelens/internal/domain"
)

// GradeTrade grades a single closed trade against its execution cost.
// net is the realized P/L after adding the (negative) commission of the
// closing row itself; feeCost is floored at 0.01 when the commission is
// exactly zero so the F boundary stays below the D boundary.
func GradeTrade(pnl, commission float64) string {
	net := pnl + commission
	feeCost := math.Abs(commission)
	if commission == 0 {
		feeCost = 0.01
	}

	switch {
	case net > 5*feeCost:
		return "A+"
	case net > 3*feeCost:
		return "A"
	case net > feeCost:
		return "B"
	case net > 0:
		return "C"
	case net > -feeCost:
		return "D"
	default:
		return "F"
	}
}

// AnnotateClosedTrades builds the annotated view of the closed-trade set:
// win flag, grade, weekday name and YYYY-MM month per row.
func AnnotateClosedTrades(closed domain.Ledger) []TradeView {
	views := make([]TradeView, 0, len(closed))
	for _, t := range closed {
		views = append(views, TradeView{
			TradeRecord: t,
			IsWin:       t.IsWin(),
			Grade:       GradeTrade(t.RealizedPnL, t.Commission),
			DayOfWeek:   t.TradeDate.Weekday().String(),
			Month:       t.TradeDate.Format("2006-01"),
		})
	}
	return views
}

// GradeDistribution counts trades per grade label.
func GradeDistribution(views []TradeView) map[string]int {
	dist := make(map[string]int)
	for _, v := range views {
		dist[v.Grade]++
	}
	return dist
}

// FearIndex is the share of winning trades whose P/L falls below 30% of
// the average win, a proxy for premature profit-taking. It is 0 when
// there are no wins or the average win is not positive.
func FearIndex(winPnLs []float64, avgWin float64) float64 {
	if len(winPnLs) == 0 || avgWin <= 0 {
		return 0
	}

	threshold := avgWin * 0.3
	var smallWins int
	for _, pnl := range winPnLs {
		if pnl < threshold {
			smallWins++
		}
	}

	return float64(smallWins) / float64(len(winPnLs)) * 100
}

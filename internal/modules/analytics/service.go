package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tradelens/tradelens/internal/domain"
)

// topTradeCount is how many winners and losers the result bundle carries.
const topTradeCount = 5

// Service runs the analytics pipeline over a normalized ledger.
// The pipeline is single-threaded pure data transformation and is safely
// re-entrant: it never mutates shared state.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new analytics service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "analytics").Logger(),
	}
}

// Analyze computes the full result bundle for one ledger. Every stage
// returns well-defined zero defaults for empty input, so an empty ledger
// produces an empty but valid bundle rather than an error.
func (s *Service) Analyze(ledger domain.Ledger) *Result {
	runID := uuid.New().String()

	financials := ComputeFinancials(ledger)
	equity := BuildEquityStats(DailyNetSeries(ledger))

	closed := ledger.ClosedTrades()
	stats := ComputeClosedStats(closed)
	maxWinStreak, maxLossStreak := DetectStreaks(closed)

	views := AnnotateClosedTrades(closed)
	weekdays := WeekdayPerformance(views)
	fearIndex := FearIndex(stats.WinPnLs, stats.AvgWin)

	result := &Result{
		RunID: runID,

		TotalTrades:  stats.TotalTrades,
		NumWins:      stats.NumWins,
		NumLosses:    stats.NumLosses,
		NumBreakeven: stats.NumBreakeven,
		WinRate:      stats.WinRate,

		TotalFees:   financials.TotalFees,
		TotalNetPnL: financials.TotalNetPnL,

		AvgWin:      stats.AvgWin,
		AvgLoss:     stats.AvgLoss,
		LargestWin:  stats.LargestWin,
		LargestLoss: stats.LargestLoss,

		ProfitFactor: InfFloat(stats.ProfitFactor),
		AvgRRRatio:   stats.AvgRRRatio,
		Expectancy:   stats.Expectancy,

		MaxDrawdown:    equity.MaxDrawdown,
		MaxDrawdownPct: equity.MaxDrawdownPct,
		MaxDDDuration:  equity.MaxDDDuration,

		MaxWinStreak:  maxWinStreak,
		MaxLossStreak: maxLossStreak,

		CommissionPct:         financials.CommissionPct,
		AvgCommissionPerTrade: financials.AvgCommissionPerTrade,

		EquityCurve:   equity.EquityCurve,
		DrawdownCurve: equity.DrawdownCurve,

		SymbolStats:        AggregateSymbols(ledger),
		DowPerformance:     weekdays,
		MonthlyPerformance: MonthlyPerformance(views),

		FearIndex:         fearIndex,
		GradeDistribution: GradeDistribution(views),

		TopWinners: topTrades(views, topTradeCount, true),
		TopLosers:  topTrades(views, topTradeCount, false),

		Insights: BuildInsights(InsightInputs{
			WinRate:       stats.WinRate,
			AvgWin:        stats.AvgWin,
			AvgLoss:       stats.AvgLoss,
			AvgRRRatio:    stats.AvgRRRatio,
			ProfitFactor:  stats.ProfitFactor,
			FearIndex:     fearIndex,
			CommissionPct: financials.CommissionPct,
			MaxLossStreak: maxLossStreak,
			Expectancy:    stats.Expectancy,
			Weekdays:      weekdays,
		}),
		ClosedTrades: views,
		Symbols:      ledger.Symbols(),
	}

	s.log.Info().
		Str("run_id", runID).
		Int("rows", len(ledger)).
		Int("closed_trades", stats.TotalTrades).
		Float64("total_pnl_net", financials.TotalNetPnL).
		Msg("Analysis completed")

	return result
}

// topTrades returns the n largest (or smallest) closed trades by realized
// P/L, without reordering the annotated set itself.
func topTrades(views []TradeView, n int, largest bool) []TradeView {
	ranked := make([]TradeView, len(views))
	copy(ranked, views)

	sort.SliceStable(ranked, func(a, b int) bool {
		if largest {
			return ranked[a].RealizedPnL > ranked[b].RealizedPnL
		}
		return ranked[a].RealizedPnL < ranked[b].RealizedPnL
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Package analytics derives performance statistics from a normalized
// trade ledger: global financial rollups, equity and drawdown series,
// closed-trade statistics, streaks, per-symbol and time-bucketed
// breakdowns, trade grading and textual insights.
package analytics

import (
	"encoding/json"
	"math"

	"github.com/tradelens/tradelens/internal/domain"
)

// InfFloat is a float64 that survives JSON encoding when infinite.
// Profit factor is deliberately +Inf when every closed trade won;
// encoding/json rejects infinities, so it marshals as the string "inf".
type InfFloat float64

// MarshalJSON implements json.Marshaler.
func (f InfFloat) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(f), 1) {
		return []byte(`"inf"`), nil
	}
	return json.Marshal(float64(f))
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *InfFloat) UnmarshalJSON(data []byte) error {
	if string(data) == `"inf"` {
		*f = InfFloat(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = InfFloat(v)
	return nil
}

// SeriesPoint is a single date-indexed value of a time series.
type SeriesPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// TradeView is a closed trade annotated with derived display fields.
// The annotations are view augmentations, not mutations of source truth.
type TradeView struct {
	domain.TradeRecord
	IsWin     bool   `json:"is_win"`
	Grade     string `json:"grade"`
	DayOfWeek string `json:"day_of_week"`
	Month     string `json:"month"` // YYYY-MM
}

// SymbolStats is the per-symbol rollup. Fees cover the full ledger so
// commissions on never-closed positions are not dropped.
type SymbolStats struct {
	Symbol       string  `json:"symbol"`
	Trades       int     `json:"trades"` // closing events only
	NetPnL       float64 `json:"net_pnl"`
	Fees         float64 `json:"fees"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
	BestTrade    float64 `json:"best_trade"`
	WorstTrade   float64 `json:"worst_trade"`
	AvgPnL       float64 `json:"avg_pnl"`
	OpenPosition bool    `json:"open_position"`
}

// WeekdayStats aggregates closed-trade P/L for one calendar weekday.
type WeekdayStats struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// MonthlyStats aggregates closed-trade P/L for one calendar month.
type MonthlyStats struct {
	Month string  `json:"month"` // YYYY-MM, sortable
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Result is the immutable bundle of all computed aggregates for one run,
// a pure function of the filtered ledger.
type Result struct {
	RunID string `json:"run_id"`

	TotalTrades  int     `json:"total_trades"`
	NumWins      int     `json:"num_wins"`
	NumLosses    int     `json:"num_losses"`
	NumBreakeven int     `json:"num_breakeven"` // always 0, kept for interface compatibility
	WinRate      float64 `json:"win_rate"`

	TotalFees   float64 `json:"total_fees"`
	TotalNetPnL float64 `json:"total_pnl_net"`

	AvgWin      float64 `json:"avg_win"`
	AvgLoss     float64 `json:"avg_loss"`
	LargestWin  float64 `json:"largest_win"`
	LargestLoss float64 `json:"largest_loss"`

	ProfitFactor InfFloat `json:"profit_factor"`
	AvgRRRatio   float64  `json:"avg_rr_ratio"`
	Expectancy   float64  `json:"expectancy"`

	MaxDrawdown    float64 `json:"max_drawdown"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
	MaxDDDuration  int     `json:"max_dd_duration"`

	MaxWinStreak  int `json:"max_win_streak"`
	MaxLossStreak int `json:"max_loss_streak"`

	CommissionPct         float64 `json:"commission_pct"`
	AvgCommissionPerTrade float64 `json:"avg_commission_per_trade"`

	EquityCurve   []SeriesPoint `json:"equity_curve"`
	DrawdownCurve []SeriesPoint `json:"drawdown_curve"`

	SymbolStats        []SymbolStats  `json:"symbol_stats"`
	DowPerformance     []WeekdayStats `json:"dow_performance"`
	MonthlyPerformance []MonthlyStats `json:"monthly_performance"`

	FearIndex         float64        `json:"fear_index"`
	GradeDistribution map[string]int `json:"grade_distribution"`

	TopWinners []TradeView `json:"top_winners"`
	TopLosers  []TradeView `json:"top_losers"`

	Insights     []string    `json:"insights"`
	ClosedTrades []TradeView `json:"closed_trades"`
	Symbols      []string    `json:"symbols"`
}

package analytics

// EquityStats holds the reconstructed equity curve and its drawdown
// derivation.
type EquityStats struct {
	EquityCurve    []SeriesPoint
	DrawdownCurve  []SeriesPoint
	MaxDrawdown    float64
	MaxDrawdownPct float64
	MaxDDDuration  int
}

// BuildEquityStats builds the cumulative equity curve from the daily net
// P/L series and derives running-maximum drawdown and drawdown duration.
//
// Drawdown[i] = equity[i] - runningMax[i], which is <= 0 everywhere by
// construction. Duration is a day-count of consecutive in-drawdown points,
// reset the moment drawdown returns to 0 - gaps between non-trading days
// are not counted.
func BuildEquityStats(daily []DailyPnL) EquityStats {
	stats := EquityStats{
		EquityCurve:   make([]SeriesPoint, 0, len(daily)),
		DrawdownCurve: make([]SeriesPoint, 0, len(daily)),
	}

	var equity, runningMax, peak float64
	var ddDays int

	for i, d := range daily {
		equity += d.Net
		if i == 0 || equity > runningMax {
			runningMax = equity
		}
		if runningMax > peak {
			peak = runningMax
		}

		drawdown := equity - runningMax
		stats.EquityCurve = append(stats.EquityCurve, SeriesPoint{Date: d.Date, Value: equity})
		stats.DrawdownCurve = append(stats.DrawdownCurve, SeriesPoint{Date: d.Date, Value: drawdown})

		if drawdown < stats.MaxDrawdown {
			stats.MaxDrawdown = drawdown
		}

		if drawdown < 0 {
			ddDays++
			if ddDays > stats.MaxDDDuration {
				stats.MaxDDDuration = ddDays
			}
		} else {
			ddDays = 0
		}
	}

	if peak > 0 {
		stats.MaxDrawdownPct = stats.MaxDrawdown / peak * 100
	}

	return stats
}

package analytics

import "fmt"

// InsightInputs are the prior aggregates the insight rules gate on.
type InsightInputs struct {
	WinRate       float64
	AvgWin        float64
	AvgLoss       float64
	AvgRRRatio    float64
	ProfitFactor  float64
	FearIndex     float64
	CommissionPct float64
	MaxLossStreak int
	Expectancy    float64
	Weekdays      []WeekdayStats
}

// BuildInsights synthesizes the ordered list of advisory strings. Each
// message is gated by a fixed numeric threshold; the thresholds and the
// wording are part of the observable contract.
func BuildInsights(in InsightInputs) []string {
	var insights []string

	if in.WinRate < 40 {
		insights = append(insights, "⚠️ Low win rate (<40%). Consider improving trade selection.")
	} else if in.WinRate > 70 {
		insights = append(insights, "✅ High win rate (>70%). Good trade selection!")
	}

	if in.AvgWin > 0 && in.AvgLoss < 0 {
		if in.AvgRRRatio < 1.5 {
			insights = append(insights, "⚠️ Risk/Reward ratio below 1.5:1. Losses are too large relative to wins.")
		} else if in.AvgRRRatio > 2.5 {
			insights = append(insights, "✅ Excellent Risk/Reward ratio (>2.5:1)!")
		}
	}

	if in.ProfitFactor < 1 {
		insights = append(insights, "🚨 Profit factor <1. Overall unprofitable.")
	} else if in.ProfitFactor > 2 {
		insights = append(insights, "✅ Strong profit factor (>2)!")
	}

	if in.FearIndex > 50 {
		insights = append(insights, "🧠 High Fear Index (>50%). You are cutting winners too early.")
	}

	if in.CommissionPct > 30 {
		insights = append(insights, "💸 Commissions eating >30% of gross profits. Reduce frequency or increase size.")
	}

	if in.MaxLossStreak >= 5 {
		insights = append(insights, fmt.Sprintf("⚠️ Long losing streak (%d trades).", in.MaxLossStreak))
	}

	if in.Expectancy > 0 {
		insights = append(insights, fmt.Sprintf("✅ Positive expectancy ($%.2f per trade).", in.Expectancy))
	} else {
		insights = append(insights, fmt.Sprintf("🚨 Negative expectancy ($%.2f per trade).", in.Expectancy))
	}

	if len(in.Weekdays) > 0 {
		best := in.Weekdays[0]
		for _, day := range in.Weekdays[1:] {
			if day.Total > best.Total {
				best = day
			}
		}
		insights = append(insights, fmt.Sprintf("📅 Best day: %s", best.Day))
	}

	return insights
}

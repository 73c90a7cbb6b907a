package analytics

import (
	"sort"

	"github.com/tradelens/tradelens/pkg/formulas"
)

// weekdayOrder is calendar order for the weekday table, Monday first.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayPerformance groups the closed-trade set by weekday name,
// aggregating sum, mean and count of realized P/L. The result is in
// calendar weekday order; weekdays with no trades are omitted.
func WeekdayPerformance(views []TradeView) []WeekdayStats {
	byDay := make(map[string][]float64)
	for _, v := range views {
		byDay[v.DayOfWeek] = append(byDay[v.DayOfWeek], v.RealizedPnL)
	}

	var stats []WeekdayStats
	for _, day := range weekdayOrder {
		pnls, ok := byDay[day]
		if !ok {
			continue
		}
		stats = append(stats, WeekdayStats{
			Day:   day,
			Total: formulas.Sum(pnls),
			Mean:  formulas.Mean(pnls),
			Count: len(pnls),
		})
	}
	return stats
}

// MonthlyPerformance groups the closed-trade set by calendar month,
// aggregating sum and count of realized P/L. Keys are sortable YYYY-MM
// strings and the result is in chronological order.
func MonthlyPerformance(views []TradeView) []MonthlyStats {
	byMonth := make(map[string][]float64)
	for _, v := range views {
		byMonth[v.Month] = append(byMonth[v.Month], v.RealizedPnL)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	stats := make([]MonthlyStats, 0, len(months))
	for _, month := range months {
		pnls := byMonth[month]
		stats = append(stats, MonthlyStats{
			Month: month,
			Total: formulas.Sum(pnls),
			Count: len(pnls),
		})
	}
	return stats
}

// Package ingest turns raw brokerage trade exports into a normalized ledger.
package ingest

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tradelens/tradelens/internal/domain"
)

// Row is one raw tabular row, keyed by trimmed column name. Columns other
// than the recognized set are carried but ignored.
type Row map[string]string

// Recognized column names of the brokerage export.
const (
	ColTradeDate   = "TradeDate"
	ColSymbol      = "Symbol"
	ColQuantity    = "Quantity"
	ColTradePrice  = "TradePrice"
	ColRealizedPnL = "FifoPnlRealized"
	ColCommission  = "IBCommission"
)

// dateLayouts are the trade-date formats IB exports actually produce.
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Normalize validates and coerces raw rows into a canonical ledger sorted
// ascending by trade date, with stable tie-break on original row order.
//
// Numeric cells that fail to parse are coerced to 0 rather than aborting
// the run. An unparseable trade date is fatal and surfaces as a
// *domain.MalformedDateError, since date ordering is load-bearing.
func Normalize(rows []Row) (domain.Ledger, error) {
	ledger := make(domain.Ledger, 0, len(rows))

	for i, row := range rows {
		date, ok := parseDate(row[ColTradeDate])
		if !ok {
			return nil, &domain.MalformedDateError{Row: i, Value: row[ColTradeDate]}
		}

		ledger = append(ledger, domain.TradeRecord{
			TradeDate:   date,
			Symbol:      strings.TrimSpace(row[ColSymbol]),
			Quantity:    parseNumeric(row[ColQuantity]),
			TradePrice:  parseNumeric(row[ColTradePrice]),
			RealizedPnL: parseNumeric(row[ColRealizedPnL]),
			Commission:  parseNumeric(row[ColCommission]),
		})
	}

	sort.SliceStable(ledger, func(a, b int) bool {
		return ledger[a].TradeDate.Before(ledger[b].TradeDate)
	})

	return ledger, nil
}

// parseDate tries each known layout in order.
func parseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumeric coerces a cell to float64, substituting 0 for anything
// unparseable. Thousands separators in exports are tolerated.
func parseNumeric(value string) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return f
}

// Package domain contains the core trade-ledger data model.
// The domain layer is pure: no infrastructure dependencies.
package domain

import "time"

// TradeRecord is a single row of the normalized trade ledger.
//
// Quantity is signed: positive is a buy, negative is a sell.
// RealizedPnL is already net of all commissions attributable to the
// position slice closed by this row; a zero value marks an opening or
// partial action rather than a closing event.
type TradeRecord struct {
	TradeDate   time.Time `json:"trade_date"`
	Symbol      string    `json:"symbol"`
	Quantity    float64   `json:"quantity"`
	TradePrice  float64   `json:"trade_price"`
	RealizedPnL float64   `json:"realized_pnl"`
	Commission  float64   `json:"commission"`
}

// IsClosing reports whether this row closed some quantity of a position.
func (t TradeRecord) IsClosing() bool {
	return t.RealizedPnL != 0
}

// IsWin reports whether this row closed at a profit.
func (t TradeRecord) IsWin() bool {
	return t.RealizedPnL > 0
}

// Ledger is an ordered sequence of trade records, sorted ascending by
// TradeDate with stable tie-break on original row order. Order is
// semantically significant: streak detection and FIFO lot consumption
// both depend on it.
type Ledger []TradeRecord

// Symbols returns the distinct symbols in the ledger, in order of first
// appearance.
func (l Ledger) Symbols() []string {
	seen := make(map[string]bool, len(l))
	var symbols []string
	for _, t := range l {
		if !seen[t.Symbol] {
			seen[t.Symbol] = true
			symbols = append(symbols, t.Symbol)
		}
	}
	return symbols
}

// BySymbol groups the ledger rows per symbol, preserving chronological
// order within each group.
func (l Ledger) BySymbol() map[string]Ledger {
	groups := make(map[string]Ledger)
	for _, t := range l {
		groups[t.Symbol] = append(groups[t.Symbol], t)
	}
	return groups
}

// ClosedTrades returns the rows with non-zero realized P/L, preserving
// chronological order.
func (l Ledger) ClosedTrades() Ledger {
	var closed Ledger
	for _, t := range l {
		if t.IsClosing() {
			closed = append(closed, t)
		}
	}
	return closed
}

// Lot is a FIFO unit of a position's purchase history. UnitCost includes
// the prorated commission of the buy that created the lot.
type Lot struct {
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// PositionSummary is the per-symbol ledger rollup used by holdings
// valuation. Recomputed per run, no persisted identity.
type PositionSummary struct {
	Symbol         string    `json:"symbol"`
	NetQuantity    float64   `json:"net_quantity"`
	AvgCost        float64   `json:"avg_cost"`
	LastTradePrice float64   `json:"last_trade_price"`
	LastTradeDate  time.Time `json:"last_trade_date"`
}

// SecurityQuote is the market-data collaborator's answer for one ticker.
type SecurityQuote struct {
	LastPrice float64 `json:"last_price"`
	Sector    string  `json:"sector"`
	Industry  string  `json:"industry"`
}

// QuoteProvider is the external market-data capability: given a ticker,
// return a last price and sector/industry classification, or an error
// when the provider is unavailable for that symbol.
type QuoteProvider interface {
	Lookup(symbol string) (*SecurityQuote, error)
}

package holdings

import "time"

// Holding is one open position valued against the market, valid only for
// the instant of the external fetch.
type Holding struct {
	Symbol           string    `json:"symbol"`
	Quantity         float64   `json:"quantity"`
	AvgCost          float64   `json:"avg_cost"`
	CurrentPrice     float64   `json:"current_price"`
	CostBasis        float64   `json:"cost_basis"`
	MarketValue      float64   `json:"market_value"`
	UnrealizedPnL    float64   `json:"unrealized_pnl"`
	UnrealizedPnLPct float64   `json:"unrealized_pnl_pct"`
	PortfolioPct     float64   `json:"portfolio_pct"`
	Sector           string    `json:"sector"`
	Industry         string    `json:"industry"`
	LastTradeDate    time.Time `json:"last_trade_date"`
}

// SectorAllocation is the per-sector rollup of the open portfolio.
type SectorAllocation struct {
	Sector       string  `json:"sector"`
	MarketValue  float64 `json:"market_value"`
	Count        int     `json:"count"`
	PortfolioPct float64 `json:"portfolio_pct"`
}

// SectorWeight is the compact per-sector summary keyed by sector name.
type SectorWeight struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// Summary bundles the valued holdings for one run.
type Summary struct {
	Holdings         []Holding               `json:"holdings"`
	SectorAllocation []SectorAllocation      `json:"sector_allocation"`
	TotalMarketValue float64                 `json:"total_market_value"`
	SectorSummary    map[string]SectorWeight `json:"sector_summary"`
}

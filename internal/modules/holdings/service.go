package holdings

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/tradelens/tradelens/internal/domain"
)

// Service values currently-open positions against the market-data
// collaborator.
type Service struct {
	quotes     domain.QuoteProvider
	numWorkers int
	log        zerolog.Logger
}

// NewService creates a new holdings service. numWorkers bounds the
// concurrent external lookups; non-positive values default to 10.
func NewService(quotes domain.QuoteProvider, numWorkers int, log zerolog.Logger) *Service {
	if numWorkers <= 0 {
		numWorkers = 10
	}
	return &Service{
		quotes:     quotes,
		numWorkers: numWorkers,
		log:        log.With().Str("service", "holdings").Logger(),
	}
}

// PositionSummaries computes the per-symbol ledger rollup: net quantity,
// FIFO average cost of remaining lots, last traded price and date.
// Symbols appear in order of first appearance in the ledger.
func (s *Service) PositionSummaries(ledger domain.Ledger) []domain.PositionSummary {
	groups := ledger.BySymbol()

	summaries := make([]domain.PositionSummary, 0, len(groups))
	for _, symbol := range ledger.Symbols() {
		rows := groups[symbol]
		last := rows[len(rows)-1]

		var netQty float64
		for _, t := range rows {
			netQty += t.Quantity
		}

		summaries = append(summaries, domain.PositionSummary{
			Symbol:         symbol,
			NetQuantity:    netQty,
			AvgCost:        AverageCostFIFO(rows),
			LastTradePrice: last.TradePrice,
			LastTradeDate:  last.TradeDate,
		})
	}
	return summaries
}

// Valuate computes the valued open portfolio: one external lookup per
// open-position symbol, dispatched concurrently, with per-symbol fallback
// to the ledger's last trade price on lookup failure. An empty open set
// yields an empty but valid summary.
func (s *Service) Valuate(ledger domain.Ledger) *Summary {
	var open []domain.PositionSummary
	for _, ps := range s.PositionSummaries(ledger) {
		if ps.NetQuantity > 0 {
			open = append(open, ps)
		}
	}

	summary := &Summary{
		Holdings:         []Holding{},
		SectorAllocation: []SectorAllocation{},
		SectorSummary:    map[string]SectorWeight{},
	}
	if len(open) == 0 {
		return summary
	}

	s.log.Info().Int("symbols", len(open)).Msg("Fetching quotes for open positions")
	holdings := s.fetchBatch(open)

	for _, h := range holdings {
		summary.TotalMarketValue += h.MarketValue
	}
	for i := range holdings {
		if summary.TotalMarketValue > 0 {
			holdings[i].PortfolioPct = holdings[i].MarketValue / summary.TotalMarketValue * 100
		}
	}

	sort.SliceStable(holdings, func(a, b int) bool {
		return holdings[a].MarketValue > holdings[b].MarketValue
	})
	summary.Holdings = holdings

	summary.SectorAllocation = s.sectorAllocation(holdings, summary.TotalMarketValue)
	for _, sa := range summary.SectorAllocation {
		summary.SectorSummary[sa.Sector] = SectorWeight{
			Value:      sa.MarketValue,
			Percentage: sa.PortfolioPct,
			Count:      sa.Count,
		}
	}

	return summary
}

// fetchHolding values a single position, falling back to the last known
// trade price and "Unknown" classification when the collaborator is
// partially or wholly unavailable. A failing lookup never fails the run.
func (s *Service) fetchHolding(ps domain.PositionSummary) Holding {
	price := ps.LastTradePrice
	sector := "Unknown"
	industry := "Unknown"

	quote, err := s.quotes.Lookup(ps.Symbol)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", ps.Symbol).Msg("Quote lookup failed, using last trade price")
	} else if quote != nil {
		if quote.LastPrice > 0 {
			price = quote.LastPrice
		}
		if quote.Sector != "" {
			sector = quote.Sector
		}
		if quote.Industry != "" {
			industry = quote.Industry
		}
	}

	costBasis := ps.NetQuantity * ps.AvgCost
	marketValue := ps.NetQuantity * price
	unrealized := marketValue - costBasis

	var unrealizedPct float64
	if costBasis > 0 {
		unrealizedPct = unrealized / costBasis * 100
	}

	return Holding{
		Symbol:           ps.Symbol,
		Quantity:         ps.NetQuantity,
		AvgCost:          ps.AvgCost,
		CurrentPrice:     price,
		CostBasis:        costBasis,
		MarketValue:      marketValue,
		UnrealizedPnL:    unrealized,
		UnrealizedPnLPct: unrealizedPct,
		Sector:           sector,
		Industry:         industry,
		LastTradeDate:    ps.LastTradeDate,
	}
}

// sectorAllocation rolls holdings up by sector, sorted descending by
// market value.
func (s *Service) sectorAllocation(holdings []Holding, totalValue float64) []SectorAllocation {
	index := make(map[string]int)
	var allocations []SectorAllocation

	for _, h := range holdings {
		i, ok := index[h.Sector]
		if !ok {
			i = len(allocations)
			index[h.Sector] = i
			allocations = append(allocations, SectorAllocation{Sector: h.Sector})
		}
		allocations[i].MarketValue += h.MarketValue
		allocations[i].Count++
	}

	for i := range allocations {
		if totalValue > 0 {
			allocations[i].PortfolioPct = allocations[i].MarketValue / totalValue * 100
		}
	}

	sort.SliceStable(allocations, func(a, b int) bool {
		return allocations[a].MarketValue > allocations[b].MarketValue
	})

	return allocations
}

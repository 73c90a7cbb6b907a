// Package holdings reconstructs open positions from the trade ledger via
// FIFO lot matching and values them against live market quotes.
package holdings

import (
	"math"

	"github.com/tradelens/tradelens/internal/domain"
)

// LotQueue is the FIFO queue of open lots for one symbol. Lots are
// value-typed and owned by the queue; each symbol's queue is processed
// independently and sequentially, so no aliasing is involved.
type LotQueue struct {
	lots []domain.Lot
}

// Buy pushes a new lot. The buy's commission is prorated into the unit
// cost so the cost basis of the remaining position includes entry fees.
func (q *LotQueue) Buy(quantity, price, commission float64) {
	if quantity <= 0 {
		return
	}
	q.lots = append(q.lots, domain.Lot{
		Quantity: quantity,
		UnitCost: price + math.Abs(commission)/quantity,
	})
}

// Sell consumes quantity from the front of the queue, oldest lot first.
// Selling more than is held silently stops when the queue empties; the
// excess quantity is dropped rather than opening a short position.
func (q *LotQueue) Sell(quantity float64) {
	remaining := math.Abs(quantity)
	for remaining > 0 && len(q.lots) > 0 {
		if q.lots[0].Quantity <= remaining {
			remaining -= q.lots[0].Quantity
			q.lots = q.lots[1:]
		} else {
			q.lots[0].Quantity -= remaining
			remaining = 0
		}
	}
}

// Remaining returns the total open quantity across surviving lots.
func (q *LotQueue) Remaining() float64 {
	var total float64
	for _, lot := range q.lots {
		total += lot.Quantity
	}
	return total
}

// AverageCost returns the weighted average unit cost of the surviving
// lots, or 0 when the position is fully closed.
func (q *LotQueue) AverageCost() float64 {
	var totalCost, totalShares float64
	for _, lot := range q.lots {
		totalCost += lot.Quantity * lot.UnitCost
		totalShares += lot.Quantity
	}
	if totalShares <= 0 {
		return 0
	}
	return totalCost / totalShares
}

// AverageCostFIFO replays one symbol's chronological rows through a lot
// queue and returns the average cost of whatever remains open.
func AverageCostFIFO(rows domain.Ledger) float64 {
	var queue LotQueue
	for _, t := range rows {
		switch {
		case t.Quantity > 0:
			queue.Buy(t.Quantity, t.TradePrice, t.Commission)
		case t.Quantity < 0:
			queue.Sell(t.Quantity)
		}
	}
	return queue.AverageCost()
}

package orderbook

import "math"

// NoAskPrice is the sentinel ask price meaning "no resting asks",
// distinguishing that state from a (nonsensical) zero-price market.
const NoAskPrice Price = math.MaxInt64

// BBO is the best-bid-offer snapshot cached on an OrderBook.
type BBO struct {
	BidPrice Price
	BidQty   Quantity
	AskPrice Price
	AskQty   Quantity
}

// emptyBBO is what a book with no resting liquidity on either side reports.
func emptyBBO() BBO {
	return BBO{BidPrice: 0, BidQty: 0, AskPrice: NoAskPrice, AskQty: 0}
}

// HasBid reports whether the bid side currently has resting quantity.
func (b BBO) HasBid() bool { return b.BidQty > 0 }

// HasAsk reports whether the ask side currently has resting quantity.
func (b BBO) HasAsk() bool { return b.AskQty > 0 }

// Spread is AskPrice - BidPrice when both sides have liquidity, else 0.
func (b BBO) Spread() Price {
	if !b.HasBid() || !b.HasAsk() {
		return 0
	}
	return b.AskPrice - b.BidPrice
}

// Midpoint is the integer-divided mean of both sides when both have
// liquidity, else 0.
func (b BBO) Midpoint() Price {
	if !b.HasBid() || !b.HasAsk() {
		return 0
	}
	return (b.BidPrice + b.AskPrice) / 2
}

// Changed reports whether a or b differ by either side's price — the
// price-only criterion spec.md §9 calls out: a quantity-only change at
// the same top price is not a BBO change.
func (a BBO) Changed(b BBO) bool {
	return a.BidPrice != b.BidPrice || a.AskPrice != b.AskPrice
}

package feed

import (
	"itchfeed/internal/orderbook"
	"itchfeed/internal/symboldir"
)

// TradeEvent mirrors spec.md §6's on_trade callback payload.
type TradeEvent struct {
	Locate      uint16
	Price       orderbook.Price
	Quantity    orderbook.Quantity
	OrderRef    orderbook.OrderId
	MatchNumber uint64
	Side        orderbook.Side
	Timestamp   uint64
	// ApplySeq is the monotonic apply-sequence stamped by internal/seq,
	// independent of Timestamp, so a subscriber can detect gaps or
	// reordering in its own callback stream.
	ApplySeq uint64
}

// BBOEvent mirrors spec.md §6's on_bbo_update callback payload.
type BBOEvent struct {
	Locate    uint16
	Old       orderbook.BBO
	New       orderbook.BBO
	Timestamp uint64
	ApplySeq  uint64
}

// Subscriber is the feed-level observer: an external consumer interested
// in trades, BBO changes, and new symbols, as opposed to wire.Subscriber
// which is the lower-level per-message-type decoder callback set that
// Feed itself implements.
type Subscriber interface {
	OnTrade(TradeEvent)
	OnBBOUpdate(BBOEvent)
	OnSymbolAdded(locate uint16, symbol symboldir.Symbol)
	OnParseError(reason string, data []byte, length int)
}

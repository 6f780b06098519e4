// Package orderbook implements a price-time priority limit order book per
// instrument: an order-id index, per-price aggregation with a FIFO
// intrusive list, a cached best-bid-offer, and the array-indexed manager
// that dispatches by locate-id. The core never matches orders; it only
// mirrors the state a venue's matching engine publishes.
package orderbook

// Side distinguishes the two halves of the book.
type Side uint8

const (
	Buy Side = iota
	Sell
)

// Price is a fixed-point integer with an implicit 10⁻⁴ scale: an on-wire
// ITCH price of 1500000 means $150.0000.
type Price = int64

// Quantity is the number of shares an order or level carries.
type Quantity = uint32

// OrderId identifies a resting order. 0 is reserved as the empty-slot
// sentinel in the order index and is never a real ITCH order reference.
type OrderId = uint64

// Order is one resting order on the book. Its list links are intrusive:
// only the PriceLevel that currently holds it may read or write prev/next.
type Order struct {
	ID           OrderId
	Locate       uint16
	Side         Side
	Price        Price
	Quantity     Quantity
	OriginalQty  Quantity
	Timestamp    uint64
	prev         *Order
	next         *Order
}

// Reset clears an order back to its zero value. Called by the pool's
// caller before reuse is visible to anyone; the pool itself never zeroes
// a slot on Acquire.
func (o *Order) Reset() {
	*o = Order{}
}

package orderbook

import "itchfeed/internal/pool"

// OrderPool is the shape of the shared pool every book mutation draws
// order records from. The Manager holds one concrete *pool.Pool[Order]
// and threads it into every book it lazily creates.
type OrderPool = pool.Pool[Order]

// OrderBook is a single instrument's price-time priority book: an
// ordered map per side, an order-id index, and a cached BBO. The book
// never matches orders — it mirrors a venue's published order events.
type OrderBook struct {
	Locate uint16
	Bids   *RBTree
	Asks   *RBTree
	index  *OrderIndex
	bbo    BBO
	Count  int
}

// NewOrderBook returns an empty book for locate.
func NewOrderBook(locate uint16) *OrderBook {
	return &OrderBook{
		Locate: locate,
		Bids:   NewRBTree(),
		Asks:   NewRBTree(),
		index:  NewOrderIndex(0),
		bbo:    emptyBBO(),
	}
}

// BBO returns the book's cached best-bid-offer.
func (b *OrderBook) BBO() BBO { return b.bbo }

// GetOrder looks up a resting order by id.
func (b *OrderBook) GetOrder(id OrderId) *Order {
	return b.index.Find(id)
}

func (b *OrderBook) tree(side Side) *RBTree {
	if side == Buy {
		return b.Bids
	}
	return b.Asks
}

// recomputeBBO refreshes the cached BBO from the current top-of-book on
// the given side. Only that side's half of the cache changes.
func (b *OrderBook) recomputeBBO(side Side) {
	if side == Buy {
		if top := b.Bids.MaxLevel(); top != nil {
			b.bbo.BidPrice = top.Price
			b.bbo.BidQty = top.TotalQty
		} else {
			b.bbo.BidPrice = 0
			b.bbo.BidQty = 0
		}
		return
	}
	if top := b.Asks.MinLevel(); top != nil {
		b.bbo.AskPrice = top.Price
		b.bbo.AskQty = top.TotalQty
	} else {
		b.bbo.AskPrice = NoAskPrice
		b.bbo.AskQty = 0
	}
}

// AddOrder inserts a new resting order. It returns false without any
// effect if id is already present — duplicate adds are a pure no-op
// (spec.md §9's Open Question resolution: no counter increment, no
// event, not even a partial insert).
func (b *OrderBook) AddOrder(p *OrderPool, id OrderId, side Side, price Price, qty Quantity, locate uint16, ts uint64) (*Order, bool) {
	if b.index.Find(id) != nil {
		return nil, false
	}
	o := p.Acquire()
	o.Reset()
	o.ID = id
	o.Side = side
	o.Price = price
	o.Quantity = qty
	o.OriginalQty = qty
	o.Locate = locate
	o.Timestamp = ts

	b.index.Put(id, o)
	level := b.tree(side).UpsertLevel(price)
	level.AddOrder(o)
	b.recomputeBBO(side)
	b.Count++
	return o, true
}

// releaseOrder removes o from its price level (clearing the level from
// the tree if it's now empty) and releases it back to the pool. Callers
// must have already removed o from the index.
func (b *OrderBook) releaseOrder(p *OrderPool, o *Order) {
	tree := b.tree(o.Side)
	level := tree.FindLevel(o.Price)
	if level != nil {
		level.RemoveOrder(o)
		if level.Empty() {
			tree.DeleteLevel(o.Price)
		}
	}
	p.Release(o)
}

// ExecuteOrder reduces a resting order's quantity by min(qty, resting
// quantity), releasing it if it reaches zero. Returns the quantity
// actually executed, or 0 if id is unknown — a missing order is a normal
// condition on filtered or warm-started streams, not an error.
func (b *OrderBook) ExecuteOrder(p *OrderPool, id OrderId, qty Quantity) Quantity {
	o := b.index.Find(id)
	if o == nil {
		return 0
	}
	exec := qty
	if exec > o.Quantity {
		exec = o.Quantity
	}
	side := o.Side
	tree := b.tree(side)
	level := tree.FindLevel(o.Price)
	removed := level.ReduceQuantity(o, exec)
	if removed {
		b.index.Remove(id)
		if level.Empty() {
			tree.DeleteLevel(o.Price)
		}
		p.Release(o)
		b.Count--
	}
	b.recomputeBBO(side)
	return exec
}

// CancelOrder has identical structural semantics to ExecuteOrder; ITCH
// distinguishes a cancel from an execution only in whether it implies a
// trade, which is the feed orchestrator's concern, not the book's.
func (b *OrderBook) CancelOrder(p *OrderPool, id OrderId, qty Quantity) Quantity {
	return b.ExecuteOrder(p, id, qty)
}

// DeleteOrder removes a resting order in full, regardless of its
// residual quantity. Returns false if id is unknown.
func (b *OrderBook) DeleteOrder(p *OrderPool, id OrderId) bool {
	o := b.index.Find(id)
	if o == nil {
		return false
	}
	side := o.Side
	b.index.Remove(id)
	b.releaseOrder(p, o)
	b.Count--
	b.recomputeBBO(side)
	return true
}

// ReplaceOrder deletes oldID and, if it existed, adds newID on the same
// side with newQty/newPrice. Returns false if oldID was unknown, in
// which case nothing changes.
func (b *OrderBook) ReplaceOrder(p *OrderPool, oldID, newID OrderId, newQty Quantity, newPrice Price, ts uint64) (*Order, bool) {
	o := b.index.Find(oldID)
	if o == nil {
		return nil, false
	}
	side := o.Side
	locate := o.Locate
	b.index.Remove(oldID)
	b.releaseOrder(p, o)
	b.Count--

	newOrder, _ := b.AddOrder(p, newID, side, newPrice, newQty, locate, ts)
	return newOrder, true
}

// DepthEntry is one row of a depth snapshot.
type DepthEntry struct {
	Price      Price
	TotalQty   Quantity
	OrderCount int
}

// BidDepth returns up to n levels from the bid side, best price first.
func (b *OrderBook) BidDepth(n int) []DepthEntry {
	return depth(b.Bids.ForEachDescending, n)
}

// AskDepth returns up to n levels from the ask side, best price first.
func (b *OrderBook) AskDepth(n int) []DepthEntry {
	return depth(b.Asks.ForEachAscending, n)
}

func depth(walk func(func(*PriceLevel) bool), n int) []DepthEntry {
	out := make([]DepthEntry, 0, n)
	walk(func(pl *PriceLevel) bool {
		out = append(out, DepthEntry{Price: pl.Price, TotalQty: pl.TotalQty, OrderCount: pl.OrderCount})
		return len(out) < n
	})
	return out
}

// BidLevelCount returns the number of distinct non-empty bid price levels.
func (b *OrderBook) BidLevelCount() int { return b.Bids.Size() }

// AskLevelCount returns the number of distinct non-empty ask price levels.
func (b *OrderBook) AskLevelCount() int { return b.Asks.Size() }

// Clear releases every resting order back to the pool and drops both
// side's maps, resetting the book to its just-created state.
func (b *OrderBook) Clear(p *OrderPool) {
	b.Bids.ForEachAscending(func(pl *PriceLevel) bool {
		for o := pl.Head(); o != nil; {
			next := o.next
			p.Release(o)
			o = next
		}
		return true
	})
	b.Asks.ForEachAscending(func(pl *PriceLevel) bool {
		for o := pl.Head(); o != nil; {
			next := o.next
			p.Release(o)
			o = next
		}
		return true
	})
	b.Bids = NewRBTree()
	b.Asks = NewRBTree()
	b.index.Clear()
	b.bbo = emptyBBO()
	b.Count = 0
}

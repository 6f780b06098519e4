package orderbook

// PriceLevel aggregates every resting order at one price. Its order list
// is the price-time priority queue for that price: head is the oldest
// (next to trade), tail is the newest.
type PriceLevel struct {
	Price      Price
	head       *Order
	tail       *Order
	TotalQty   Quantity
	OrderCount int
}

// AddOrder appends o to the tail of the level's list in O(1) and updates
// the cached totals.
func (p *PriceLevel) AddOrder(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.TotalQty += o.Quantity
	p.OrderCount++
}

// RemoveOrder unlinks o from the list in O(1) via its own links, updates
// the cached totals, and nulls o's links so it cannot be mistaken for
// still belonging to a level.
func (p *PriceLevel) RemoveOrder(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.prev = nil
	o.next = nil

	p.TotalQty -= o.Quantity
	p.OrderCount--
}

// ReduceQuantity lowers o's quantity (and the level's cached total) by
// delta, which must not exceed o's current quantity. If o's quantity
// reaches zero it is removed from the level. Returns true if o was
// removed.
func (p *PriceLevel) ReduceQuantity(o *Order, delta Quantity) bool {
	if delta > o.Quantity {
		delta = o.Quantity
	}
	o.Quantity -= delta
	p.TotalQty -= delta
	if o.Quantity == 0 {
		p.RemoveOrder(o)
		return true
	}
	return false
}

// Empty reports whether the level has no resting orders.
func (p *PriceLevel) Empty() bool {
	return p.OrderCount == 0
}

// Head returns the oldest order at this level, or nil if empty.
func (p *PriceLevel) Head() *Order {
	return p.head
}

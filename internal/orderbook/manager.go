package orderbook

// minManagerCapacity is spec.md §4.8's floor: ITCH locates are 16-bit but
// in practice sit well under 10K, so an array sized at least this large
// never needs to grow.
const minManagerCapacity = 8192

// Manager dispatches by locate-id to a lazily-created book, backed by a
// single shared order pool. It owns every book's storage; nothing in the
// book package holds a reference back to the manager.
type Manager struct {
	books [minManagerCapacity]*OrderBook
	pool  *OrderPool
}

// NewManager returns a Manager whose books will share an order pool
// allocated blockSize records at a time (blockSize <= 0 picks the pool
// package's default).
func NewManager(blockSize int) *Manager {
	return &Manager{pool: newOrderPool(blockSize)}
}

// Pool returns the shared order pool, for components (like the feed
// orchestrator) that need to pass it into book mutation calls.
func (m *Manager) Pool() *OrderPool { return m.pool }

// GetBook returns the book at locate, lazily initializing it on first
// reference.
func (m *Manager) GetBook(locate uint16) *OrderBook {
	if m.books[locate] == nil {
		m.books[locate] = NewOrderBook(locate)
	}
	return m.books[locate]
}

// HasBook reports whether locate has been initialized, without creating it.
func (m *Manager) HasBook(locate uint16) bool {
	return int(locate) < len(m.books) && m.books[locate] != nil
}

// Reset clears every initialized book back to empty, releasing all of
// their resting orders to the shared pool, without forgetting which
// locates were ever seen.
func (m *Manager) Reset() {
	for _, b := range m.books {
		if b != nil {
			b.Clear(m.pool)
		}
	}
}

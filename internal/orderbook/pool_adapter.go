package orderbook

import "itchfeed/internal/pool"

// newOrderPool constructs the shared order-record pool. Kept as a tiny
// wrapper so the Manager doesn't need to know pool.New's generic
// instantiation syntax.
func newOrderPool(blockSize int) *pool.Pool[Order] {
	return pool.New[Order](blockSize)
}

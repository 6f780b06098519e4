// Package telemetry holds the plain counters the feed orchestrator
// increments. Grounded on chycee-cryptoGo's Metrics, which notes it
// "provides lightweight observability without external dependencies" —
// the same idea applies here, minus its atomic.* wrappers: spec.md §5
// mandates a single-threaded core with no atomics anywhere in the hot
// path, so a plain struct of uint64 fields is the correct translation,
// not a missed opportunity to reach for a metrics client.
package telemetry

// Counters accumulates the counts the feed orchestrator is required to
// emit (spec.md §4.10). Exporting these over Prometheus or any other
// wire format is the observability layer spec.md places out of scope;
// Snapshot exists only so a caller can read a consistent copy.
type Counters struct {
	MessagesProcessed uint64
	OrdersAdded       uint64
	OrdersExecuted    uint64
	OrdersCancelled   uint64
	OrdersDeleted     uint64
	OrdersReplaced    uint64
	Trades            uint64
	BBOUpdates        uint64
	SymbolsAdded      uint64
}

// Snapshot returns a copy of the counters as they stand right now.
func (c *Counters) Snapshot() Counters {
	return *c
}

// Reset zeroes every counter.
func (c *Counters) Reset() {
	*c = Counters{}
}

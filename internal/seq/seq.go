// Package seq stamps every message the feed orchestrator actually
// applies with a strictly monotonic number, independent of the ITCH wire
// timestamp. Adapted from the teacher's Sequencer, which issues outgoing
// order sequence numbers for a system that originates them; this engine
// only observes a feed, so the counter instead tags the feed's own
// callback stream for downstream gap detection.
package seq

// Stamper issues strictly monotonic uint64s. Unlike the teacher's
// Sequencer it carries no atomic: spec.md §5 requires the entire core,
// including this counter, to run single-threaded with no atomics in the
// hot path.
type Stamper struct {
	next uint64
}

// New returns a Stamper whose first Next() call returns start+1.
func New(start uint64) *Stamper {
	return &Stamper{next: start}
}

// Next returns the next value in the sequence.
func (s *Stamper) Next() uint64 {
	s.next++
	return s.next
}

// Current returns the last value issued by Next, or the starting value
// if Next has never been called.
func (s *Stamper) Current() uint64 {
	return s.next
}

// Reset rewinds the stamper to v; the next Next() call returns v+1.
func (s *Stamper) Reset(v uint64) {
	s.next = v
}

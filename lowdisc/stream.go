// SPDX-License-Identifier: MIT

package lowdisc

// Stream walks a Sequence one index at a time.
//
// Stream is a convenience for sequential callers; it is NOT goroutine-safe.
// Concurrent code should partition the index range and call
// Sequence.Fill directly.
type Stream struct {
	seq  Sequence
	next uint64
}

// NewStream returns a Stream positioned at start.
func NewStream(seq Sequence, start uint64) *Stream {
	return &Stream{seq: seq, next: start}
}

// Index returns the index that the next call to Next will produce.
func (s *Stream) Index() uint64 { return s.next }

// Next returns the current point and advances the cursor.
func (s *Stream) Next() []float64 {
	p := s.seq.SamplePoint(s.next)
	s.next++

	return p
}

// NextInto writes the current point into dst and advances the cursor.
func (s *Stream) NextInto(dst []float64) {
	s.seq.Fill(dst, s.next)
	s.next++
}

// Skip advances the cursor by n points without generating them.
func (s *Stream) Skip(n uint64) { s.next += n }

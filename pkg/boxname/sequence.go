package boxname

import "sync/atomic"

// DefaultStart is the first id handed out by a zero-configured Sequence.
const DefaultStart = 1

// Sequence hands out increasing box ids. It is safe for concurrent use.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a sequence whose first Next call yields start.
func NewSequence(start int) *Sequence {
	s := &Sequence{}
	s.next.Store(int64(start))
	return s
}

// Next returns the current id and advances the sequence.
func (s *Sequence) Next() int {
	return int(s.next.Add(1) - 1)
}

// Peek returns the id the next call to Next will yield.
func (s *Sequence) Peek() int {
	return int(s.next.Load())
}

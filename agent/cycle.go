package agent

import "slices"

// Cycle is a deterministic agent that emits a configured sequence of actions
// round-robin: each Act returns the current head and rotates it to the end,
// ignoring the observation and mode. Over any window of N consecutive calls,
// where N is the sequence length, every element is emitted exactly once in
// the original relative order before any repeats.
//
// Reset restores the original configured order, discarding rotation
// progress. Record is a no-op.
type Cycle[O, A any] struct {
	Base
	NoLearn[O, A]

	original []A
	pending  []A
}

// NewCycle returns an agent that cycles through seq. The sequence is copied,
// so the caller's slice may be reused. Returns ErrEmptySequence if seq is
// empty, since Act would have no element to return.
func NewCycle[O, A any](seq []A) (*Cycle[O, A], error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	original := slices.Clone(seq)
	return &Cycle[O, A]{
		original: original,
		pending:  slices.Clone(original),
	}, nil
}

// Act returns the head of the working sequence and rotates it to the end.
func (c *Cycle[O, A]) Act(O) (A, error) {
	head := c.pending[0]
	copy(c.pending, c.pending[1:])
	c.pending[len(c.pending)-1] = head
	return head, nil
}

// Reset restores the working sequence to the original configured order. The
// mode is left untouched.
func (c *Cycle[O, A]) Reset() {
	copy(c.pending, c.original)
}

// Len returns the length of the configured sequence.
func (c *Cycle[O, A]) Len() int {
	return len(c.original)
}

package agent

// Fixed is a deterministic agent that always emits one configured action,
// ignoring its input and mode entirely. It is useful as a baseline or as a
// stub opponent in tests. Record and Reset are no-ops.
type Fixed[O, A any] struct {
	Base
	NoLearn[O, A]

	choice A
}

// NewFixed returns an agent that answers every observation with choice.
func NewFixed[O, A any](choice A) *Fixed[O, A] {
	return &Fixed[O, A]{choice: choice}
}

// Act returns the configured action.
func (f *Fixed[O, A]) Act(O) (A, error) {
	return f.choice, nil
}

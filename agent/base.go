package agent

// Base is the embeddable mode state machine. It provides Mode, TrainingMode,
// TestMode, and a no-op Reset, leaving Act and Record to the embedding type.
// The zero value is ready to use and starts in Test mode.
//
// The two mode transitions are idempotent and are the only way the mode
// changes; Reset deliberately leaves the mode untouched.
type Base struct {
	mode Mode
}

// Mode returns the agent's current mode.
func (b *Base) Mode() Mode {
	return b.mode
}

// TrainingMode sets the mode to Training.
func (b *Base) TrainingMode() {
	b.mode = Training
}

// TestMode sets the mode to Test.
func (b *Base) TestMode() {
	b.mode = Test
}

// Reset is a no-op. Agents that accumulate episode-scoped state override it;
// overriding implementations must not alter the mode.
func (b *Base) Reset() {}

// NoLearn is the embeddable no-op Record. It lives apart from Base because
// Record's signature mentions the observation and action types and Go
// methods cannot introduce their own type parameters.
//
// Agents that learn from experience implement Record themselves instead of
// embedding NoLearn.
type NoLearn[O, A any] struct{}

// Record discards the transition and returns nil.
func (NoLearn[O, A]) Record(state O, action A, reward float64, next O) error {
	return nil
}

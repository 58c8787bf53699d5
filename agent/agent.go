package agent

// Agent is the interface that all decision-making agents implement.
// An agent consumes observations of type O and emits actions of type A.
//
// The contract is synchronous and single-threaded: every call completes
// before the caller proceeds, and concurrent calls into one instance are
// outside the contract. The external driver (an environment or episode loop)
// calls Act each step, optionally delivers reward feedback via Record, and
// calls Reset at episode boundaries.
//
// Go generics have no variance, so an agent is bound to its exact
// observation type; use Adapt to run an agent where only a different state
// type is available.
type Agent[O, A any] interface {
	// Mode returns the agent's current mode. It has no side effects.
	Mode() Mode

	// Act produces an action for the given observation. It must be callable
	// in either mode: an agent in Test mode still acts, it simply must not
	// adapt future behavior from recorded experience. Implementations may
	// mutate internal state while acting; the reference agents in this
	// package are deterministic beyond their own bookkeeping.
	Act(obs O) (A, error)

	// Record delivers one experience transition: the agent observed state,
	// took action, received reward, and then observed next. The default
	// behavior is a no-op (embed NoLearn); learning agents override it.
	// Record must be safe to call in either mode, and an agent may ignore
	// calls made while in Test mode.
	Record(state O, action A, reward float64, next O) error

	// Reset clears episode-scoped or accumulated internal state back to a
	// fresh starting condition. The default behavior is a no-op (embed
	// Base). Reset must not alter the agent's mode.
	Reset()

	// TrainingMode sets the mode to Training. Idempotent.
	TrainingMode()

	// TestMode sets the mode to Test. Idempotent.
	TestMode()
}

// Convert is a caller-supplied pure mapping from a driver's state type to an
// agent's observation type. It must be referentially transparent and free of
// observable side effects: an adapter may invoke it zero, one, or two times
// per driver step depending on which operations are exercised, with no
// ordering dependency between calls.
type Convert[S, O any] func(state S) (O, error)

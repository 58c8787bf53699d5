// Package agent defines the capability contract shared by all decision-making
// agents: given an observation, produce an action; optionally learn from
// reward feedback; reset between episodes; and switch between Training and
// Test mode.
//
// The package contains the contract itself, the embeddable defaults used to
// satisfy its optional methods, an observation-adapting composition wrapper,
// and two deterministic reference agents used as baselines and test doubles.
//
// # The Contract
//
// Agent is generic over the observation type it perceives and the action type
// it emits. A concrete agent implements the full interface, typically by
// embedding the provided defaults and writing only Act:
//
//	type Greedy struct {
//		agent.Base
//		agent.NoLearn[Board, Move]
//		values map[Board]float64
//	}
//
//	func (g *Greedy) Act(b Board) (Move, error) {
//		// decision logic
//	}
//
// Base carries the mode state machine and a no-op Reset; NoLearn carries a
// no-op Record. An agent that learns overrides Record, and one that
// accumulates episode state overrides Reset. Go methods cannot introduce
// their own type parameters, which is why the defaults split across two
// embeddable types: Record mentions the observation and action types, so its
// no-op must itself be generic.
//
// # Modes
//
// Every agent is in exactly one of two modes, Test or Training, starting in
// Test. TrainingMode and TestMode are the only transitions and both are
// idempotent. Acting is legal in either mode; an agent in Test mode still
// acts, it simply must not adapt future behavior from experience recorded
// while frozen.
//
// # Composition
//
// Adapt lets an agent built for one observation type operate where only a
// richer state type is available:
//
//	inner, _ := agent.NewCycle[Board, Move](moves)
//	adapted, err := agent.Adapt(inner, func(s GameState) (Board, error) {
//		return s.Board, nil
//	})
//
// The adapter is a transparent proxy: it holds no mode or learning state of
// its own, converts on every call, and propagates conversion failures to the
// caller unmodified. Because the adapter itself satisfies Agent, adapters
// chain.
//
// # Reference Agents
//
// Fixed always returns one configured action. Cycle emits a configured
// sequence round-robin and restores the original order on Reset. Both ignore
// their input and mode entirely, which makes them useful as stub opponents
// and deterministic baselines.
//
// # Thread Safety
//
// The contract is single-threaded and synchronous. Internal mutable state
// (the mode flag, Cycle's rotation) is not designed for concurrent mutation;
// callers needing concurrent use must serialize access externally or use one
// agent instance per concurrent episode.
package agent

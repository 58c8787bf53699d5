// Package agentkit provides a minimal, reusable abstraction for
// decision-making agents: entities that consume an observation, emit an
// action, optionally learn from reward feedback, and can be switched between
// a training mode and a frozen test mode.
//
// The module decouples an agent's decision logic from the shape of the
// environment state it runs inside: an agent written against one observation
// type can be dropped into a driver that only exposes a richer state type by
// composing it with a pure conversion function.
//
// # Core Concepts
//
// The module is organized around a small number of concepts:
//
//   - Agent: the capability contract (act, record, reset, mode switching)
//   - Mode: the Training/Test learning switch every agent carries
//   - Adapter: a transparent wrapper translating driver state into agent
//     observations on every call
//   - Reference agents: deterministic fixed-choice and round-robin agents
//     used as baselines and test doubles
//
// # Packages
//
//   - agent: the Agent contract, mode state machine, Adapter composition,
//     and the deterministic reference agents
//   - registry: named factories for sharing agent constructors across an
//     application
//   - profile: declarative YAML profiles that build reference agents
//   - telemetry: an OpenTelemetry wrapper that instruments any Agent
//
// # Getting Started
//
// Build an agent and drive it:
//
//	import "github.com/polyrl/agentkit/agent"
//
//	rotor, err := agent.NewCycle[Board, Move](moves)
//	if err != nil {
//		log.Fatal(err)
//	}
//	move, err := rotor.Act(board)
//
// Adapt it to a driver that only exposes a richer state:
//
//	adapted, err := agent.Adapt(rotor, func(s GameState) (Board, error) {
//		return s.Board, nil
//	})
//
// # Error Handling
//
// Packages return sentinel errors for their own precondition violations
// (for example agent.ErrEmptySequence) and the structured *Error type for
// categorized failures:
//
//	if errors.Is(err, agent.ErrEmptySequence) {
//		// caller supplied an empty rotation
//	}
//
// # Thread Safety
//
// The Agent contract is single-threaded and synchronous. Concurrent calls
// into one agent instance are outside the contract; callers needing
// concurrency should use one instance per goroutine or serialize access
// externally. The registry package is the exception and is safe for
// concurrent use.
package agentkit

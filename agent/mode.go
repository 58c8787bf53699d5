package agent

// Mode indicates whether an agent is permitted and expected to learn from
// recorded experience.
type Mode int

const (
	// Test is the frozen, inference-only mode. It is the zero value and the
	// initial mode of every agent.
	Test Mode = iota

	// Training is the mode in which an agent may update internal state from
	// experience delivered via Record.
	Training
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Test:
		return "test"
	case Training:
		return "training"
	default:
		return "unknown"
	}
}

// IsValid checks if the mode is a recognized value.
func (m Mode) IsValid() bool {
	switch m {
	case Test, Training:
		return true
	default:
		return false
	}
}

// Package profile provides loading and parsing of agents.yaml profile files.
// A profile declares one of the deterministic reference agents (a fixed
// choice or a rotation) so baselines and stub opponents can be configured
// without recompiling.
//
// Action values in a profile are arbitrary YAML nodes; Build decodes them
// into the caller's action type, so the same profile file can drive agents
// over strings, integers, or structured moves.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/polyrl/agentkit"
	"github.com/polyrl/agentkit/agent"
)

// Common errors returned by profile operations.
var (
	// ErrUnknownKind is returned when a profile names a kind this package
	// cannot build.
	ErrUnknownKind = errors.New("profile: unknown agent kind")

	// ErrMissingChoice is returned when a fixed profile has no choice value.
	ErrMissingChoice = errors.New("profile: fixed profile requires a choice")

	// ErrMissingRotation is returned when a cycle profile has an empty rotation.
	ErrMissingRotation = errors.New("profile: cycle profile requires a rotation")

	// ErrNotFound is returned when a named profile does not exist in a set.
	ErrNotFound = errors.New("profile: profile not found")
)

// Kind selects which reference agent a profile builds.
type Kind string

const (
	// KindFixed builds an agent that always emits the configured choice.
	KindFixed Kind = "fixed"

	// KindCycle builds an agent that emits the configured rotation round-robin.
	KindCycle Kind = "cycle"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the kind is a recognized value.
func (k Kind) IsValid() bool {
	switch k {
	case KindFixed, KindCycle:
		return true
	default:
		return false
	}
}

// Profile declares a single reference agent.
type Profile struct {
	// Name identifies the profile within a set.
	Name string `yaml:"name"`

	// Kind selects the agent to build: "fixed" or "cycle".
	Kind Kind `yaml:"kind"`

	// Choice is the action a fixed agent emits. Required for KindFixed.
	Choice *yaml.Node `yaml:"choice,omitempty"`

	// Rotation is the action sequence a cycle agent emits. Required, and
	// must be non-empty, for KindCycle.
	Rotation []yaml.Node `yaml:"rotation,omitempty"`

	// Training, when true, switches the built agent into Training mode.
	// Agents start in Test mode otherwise.
	Training bool `yaml:"training,omitempty"`
}

// Validate checks that the profile is buildable.
func (p *Profile) Validate() error {
	switch p.Kind {
	case KindFixed:
		if p.Choice == nil {
			return agentkit.NewValidationError("Profile.Validate", ErrMissingChoice).
				WithContext(map[string]any{"profile": p.Name})
		}
	case KindCycle:
		if len(p.Rotation) == 0 {
			return agentkit.NewValidationError("Profile.Validate", ErrMissingRotation).
				WithContext(map[string]any{"profile": p.Name})
		}
	default:
		return agentkit.NewValidationError("Profile.Validate", ErrUnknownKind).
			WithContext(map[string]any{"profile": p.Name, "kind": string(p.Kind)})
	}
	return nil
}

// Set is the top-level structure of an agents.yaml file.
type Set struct {
	Profiles []Profile `yaml:"profiles"`
}

// Lookup returns the profile with the given name.
func (s *Set) Lookup(name string) (*Profile, error) {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			return &s.Profiles[i], nil
		}
	}
	return nil, agentkit.NewNotFoundError("Set.Lookup", ErrNotFound).
		WithContext(map[string]any{"name": name})
}

// Parse parses an agents.yaml document and validates every profile in it.
func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	for i := range set.Profiles {
		if err := set.Profiles[i].Validate(); err != nil {
			return nil, err
		}
	}

	return &set, nil
}

// Load reads and parses an agents.yaml file from the given path. If the path
// is a directory, it looks for agents.yaml or agents.yml in that directory.
func Load(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	profilePath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "agents.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			profilePath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "agents.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				profilePath = ymlPath
			} else {
				return nil, fmt.Errorf("no agents.yaml or agents.yml found in %s", path)
			}
		}
	}

	data, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	return Parse(data)
}

// Build constructs the agent a profile declares, decoding its action values
// into the caller's action type A.
func Build[O, A any](p *Profile) (agent.Agent[O, A], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var built agent.Agent[O, A]

	switch p.Kind {
	case KindFixed:
		var choice A
		if err := p.Choice.Decode(&choice); err != nil {
			return nil, fmt.Errorf("failed to decode choice for profile %q: %w", p.Name, err)
		}
		built = agent.NewFixed[O, A](choice)

	case KindCycle:
		rotation := make([]A, len(p.Rotation))
		for i := range p.Rotation {
			if err := p.Rotation[i].Decode(&rotation[i]); err != nil {
				return nil, fmt.Errorf("failed to decode rotation[%d] for profile %q: %w", i, p.Name, err)
			}
		}
		rotor, err := agent.NewCycle[O, A](rotation)
		if err != nil {
			return nil, err
		}
		built = rotor
	}

	if p.Training {
		built.TrainingMode()
	}

	return built, nil
}

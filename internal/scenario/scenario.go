// Package scenario replays scripted union and find steps, described in
// TOML, against a disjoint-set forest.
package scenario

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrInvalid marks a scenario file that parsed but cannot be run
var ErrInvalid = errors.New("invalid scenario")

// Step operations.
const (
	OpFind      = "find"
	OpUnion     = "union"
	OpLink      = "link"
	OpConnected = "connected"
	OpSets      = "sets"
)

// Scenario is a universe plus the steps to apply to it, in order.
type Scenario struct {
	Name     string   `toml:"name"`
	Universe []string `toml:"universe"`
	Steps    []Step   `toml:"step"`
}

// Step is one operation. X and Y name universe elements.
type Step struct {
	Op string `toml:"op"`
	X  string `toml:"x"`
	Y  string `toml:"y"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step names a known op and carries the
// arguments that op needs. Element membership is checked when the
// scenario runs.
func (s *Scenario) Validate() error {
	for i, st := range s.Steps {
		switch st.Op {
		case OpFind:
			if st.X == "" {
				return fmt.Errorf("%w: step %d: %s needs x", ErrInvalid, i+1, st.Op)
			}
		case OpUnion, OpLink, OpConnected:
			if st.X == "" || st.Y == "" {
				return fmt.Errorf("%w: step %d: %s needs x and y", ErrInvalid, i+1, st.Op)
			}
		case OpSets:
		case "":
			return fmt.Errorf("%w: step %d: missing op", ErrInvalid, i+1)
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalid, i+1, st.Op)
		}
	}
	return nil
}

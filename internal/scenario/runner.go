package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"mycelica/forest/internal/forest"
)

// StepResult is the outcome of one step and the partition right after it
type StepResult struct {
	Index           int      `json:"index"`
	Op              string   `json:"op"`
	X               string   `json:"x,omitempty"`
	Y               string   `json:"y,omitempty"`
	Representative  string   `json:"representative,omitempty"`
	Merged          bool     `json:"merged,omitempty"`
	Connected       bool     `json:"connected,omitempty"`
	Representatives []string `json:"representatives"`
	Parents         string   `json:"parents"`
}

// Result is the outcome of a whole run
type Result struct {
	Name            string       `json:"name"`
	Universe        []string     `json:"universe"`
	Steps           []StepResult `json:"steps"`
	Sets            int          `json:"sets"`
	Representatives []string     `json:"representatives"`
}

// Runner applies scenarios. A nil Logger logs nothing.
type Runner struct {
	Logger *zap.Logger
}

// Run builds a forest over the scenario's universe and applies its steps in
// order. It stops at the first failing step.
func (r *Runner) Run(s *Scenario) (*Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	f, err := forest.New(s.Universe)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	log.Debug("forest built", zap.String("scenario", s.Name), zap.Int("elements", f.Len()))

	res := &Result{Name: s.Name, Universe: f.Universe()}
	for i, st := range s.Steps {
		sr := StepResult{Index: i + 1, Op: st.Op, X: st.X, Y: st.Y}
		if err := apply(f, st, &sr); err != nil {
			return res, fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		// Parents first: Representatives compresses every path.
		sr.Parents = f.String()
		sr.Representatives = f.Representatives()
		log.Debug("step applied",
			zap.Int("step", sr.Index),
			zap.String("op", st.Op),
			zap.String("x", st.X),
			zap.String("y", st.Y),
			zap.Int("sets", f.Count()),
		)
		res.Steps = append(res.Steps, sr)
	}

	res.Sets = f.Count()
	res.Representatives = f.Representatives()
	return res, nil
}

func apply(f *forest.Forest[string], st Step, sr *StepResult) error {
	var err error
	switch st.Op {
	case OpFind:
		sr.Representative, err = f.FindSet(st.X)
	case OpUnion:
		sr.Merged, err = f.Union(st.X, st.Y)
	case OpLink:
		sr.Merged, err = f.Link(st.X, st.Y)
	case OpConnected:
		sr.Connected, err = f.Connected(st.X, st.Y)
	case OpSets:
	default:
		err = fmt.Errorf("%w: unknown op %q", ErrInvalid, st.Op)
	}
	return err
}

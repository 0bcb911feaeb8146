package step

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Plan is the ordered set of steps for one provisioning run.
// Steps execute in dependency order and the run halts on the first
// failure; nothing is rolled back.
type Plan struct {
	steps []*Step
	index map[Name]*Step
}

// NewPlan builds a plan from steps in declaration order
func NewPlan(steps ...*Step) (*Plan, error) {
	p := &Plan{
		index: make(map[Name]*Step, len(steps)),
	}
	for _, s := range steps {
		if s.Name == "" {
			return nil, fmt.Errorf("step with empty name")
		}
		if _, ok := p.index[s.Name]; ok {
			return nil, fmt.Errorf("duplicate step %s", s.Name)
		}
		p.steps = append(p.steps, s)
		p.index[s.Name] = s
	}

	for _, s := range p.steps {
		for _, need := range s.Needs {
			if _, ok := p.index[need]; !ok {
				return nil, fmt.Errorf("step %s needs unknown step %s", s.Name, need)
			}
		}
	}

	return p, nil
}

// Resolve returns the execution order using Kahn's algorithm.
// Declaration order breaks ties so the order is deterministic.
func (p *Plan) Resolve() ([]Name, error) {
	inDegree := make(map[Name]int, len(p.steps))
	dependents := make(map[Name][]Name, len(p.steps))

	for _, s := range p.steps {
		inDegree[s.Name] = len(s.Needs)
		for _, need := range s.Needs {
			dependents[need] = append(dependents[need], s.Name)
		}
	}

	var queue []Name
	for _, s := range p.steps {
		if inDegree[s.Name] == 0 {
			queue = append(queue, s.Name)
		}
	}

	var order []Name
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		for _, dep := range dependents[current] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(p.steps) {
		var stuck []string
		for name, deg := range inDegree {
			if deg > 0 {
				stuck = append(stuck, name.String())
			}
		}
		return nil, fmt.Errorf("circular step dependency involving: %s", strings.Join(stuck, ", "))
	}

	return order, nil
}

// Steps returns the plan's steps in execution order
func (p *Plan) Steps() ([]*Step, error) {
	order, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	steps := make([]*Step, len(order))
	for i, name := range order {
		steps[i] = p.index[name]
	}
	return steps, nil
}

// Get returns a step by name
func (p *Plan) Get(name Name) (*Step, bool) {
	s, ok := p.index[name]
	return s, ok
}

// Execute runs every step in order, short-circuiting on the first
// failure. It returns the per-step results alongside the terminal
// *AbortError when a step fails.
func (p *Plan) Execute(ctx context.Context) ([]Result, error) {
	ordered, err := p.Steps()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(ordered))
	for i, s := range ordered {
		ui.Step("[%d/%d] %s", i+1, len(ordered), s.Description)

		if err := s.Apply(ctx); err != nil {
			aborted := abort(s, err)
			results = append(results, Result{Name: s.Name, State: StateAborted, Err: aborted})
			for _, rest := range ordered[i+1:] {
				results = append(results, Result{Name: rest.Name, State: StatePending})
			}
			return results, aborted
		}

		results = append(results, Result{Name: s.Name, State: StateDone})
	}

	return results, nil
}

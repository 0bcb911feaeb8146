package queries

import (
	"context"

	"github.com/hiro2620/sphero-controll/internal/domain/step"
)

// Planner builds the provisioning plan so its steps can be probed
type Planner interface {
	BuildPlan(stagedDir string) (*step.Plan, error)
}

// StepStatus is the probed state of one provisioning step
type StepStatus struct {
	Name        string
	Description string
	State       string
	Detail      string
}

// StatusQuery asks for the provisioning state of the host
type StatusQuery struct{}

// StatusQueryHandler probes each step's postcondition without
// mutating the host
type StatusQueryHandler struct {
	planner Planner
}

// NewStatusQueryHandler creates a status query handler
func NewStatusQueryHandler(planner Planner) *StatusQueryHandler {
	return &StatusQueryHandler{planner: planner}
}

// Handle executes the status query
func (h *StatusQueryHandler) Handle(ctx context.Context, query StatusQuery) ([]StepStatus, error) {
	plan, err := h.planner.BuildPlan("")
	if err != nil {
		return nil, err
	}

	steps, err := plan.Steps()
	if err != nil {
		return nil, err
	}

	statuses := make([]StepStatus, 0, len(steps))
	for _, s := range steps {
		status := StepStatus{
			Name:        s.Name.String(),
			Description: s.Description,
		}

		if s.Probe == nil {
			status.State = "unknown"
			status.Detail = "not probed"
			statuses = append(statuses, status)
			continue
		}

		done, err := s.Probe(ctx)
		switch {
		case err != nil:
			status.State = "error"
			status.Detail = err.Error()
		case done:
			status.State = "provisioned"
		default:
			status.State = "pending"
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

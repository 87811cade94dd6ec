package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// Step is one call of a workflow.
type Step struct {
	// Name identifies the step in logs and errors.
	Name string

	// Request builds the call from the previous step's result. The first
	// step receives nil.
	Request func(prev *rancher.Body) (*RequestSpec, error)

	// Reshape optionally turns the response body into the step's result,
	// for example by unwrapping one field. Without it the body is the result.
	Reshape func(body *rancher.Body) (*rancher.Body, error)
}

// Workflow is an ordered list of dependent calls treated as one operation.
type Workflow struct {
	Name  string
	Steps []Step
}

// Run executes the steps strictly in order, feeding each step the previous
// step's result, and returns the last step's result. The first failed call
// stops the workflow and its error is returned unchanged. Completed steps are
// not rolled back.
func (o *Orchestrator) Run(ctx context.Context, workflow *Workflow) (*rancher.Body, error) {
	if len(workflow.Steps) == 0 {
		return nil, fmt.Errorf("%s: %w", workflow.Name, rancher.ErrEmptyWorkflow)
	}

	var result *rancher.Body

	for index, step := range workflow.Steps {
		spec, err := step.Request(result)
		if err != nil {
			return nil, fmt.Errorf("%s: building %s request: %w", workflow.Name, step.Name, err)
		}

		if spec == nil {
			return nil, fmt.Errorf("%s: %s: %w", workflow.Name, step.Name, rancher.ErrNoRequest)
		}

		o.debug("Workflow step", map[string]interface{}{
			"workflow": workflow.Name,
			"step":     step.Name,
			"index":    index,
			"method":   spec.Method,
			"path":     spec.Path,
		})

		outcome := o.Execute(ctx, *spec)
		if !outcome.OK() {
			o.warn("Workflow step failed", map[string]interface{}{
				"workflow": workflow.Name,
				"step":     step.Name,
				"index":    index,
				"error":    outcome.Err.Error(),
			})

			return nil, outcome.Err
		}

		result = outcome.Body

		if step.Reshape != nil {
			result, err = step.Reshape(result)
			if err != nil {
				return nil, fmt.Errorf("%s: reading %s response: %w", workflow.Name, step.Name, err)
			}
		}
	}

	return result, nil
}

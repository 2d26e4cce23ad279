package workflow

import (
	"context"
	"fmt"

	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/prompt"
	"github.com/quayside-dev/stride/internal/run"
)

// Runner executes workflow steps strictly sequentially: each step consumes
// the state the previous one produced, and the first failure aborts the
// remaining steps. No step is retried.
type Runner struct {
	UI prompt.UI
}

// Run executes the steps in order, returning the final run state or the
// failing step's error annotated with its position.
func (r Runner) Run(ctx context.Context, rt run.Type, steps []Step) (run.Type, error) {
	for i, step := range steps {
		next, err := step.run(ctx, rt, r.UI)
		if err != nil {
			return rt, fmt.Errorf(messages.WorkflowStepFailedFmt, i+1, step.Name(), err)
		}
		rt = next
	}
	return rt, nil
}

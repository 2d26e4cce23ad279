// Package run defines the execution mode threaded through workflow steps.
package run

import (
	"io"

	"github.com/quayside-dev/stride/internal/state"
)

// Type carries the workflow state plus the execution mode for a run.
// In dry-run mode, steps write what they would do to Out instead of
// performing side effects; state-only transitions still happen so later
// steps see realistic inputs.
type Type struct {
	State  state.State
	DryRun bool
	Out    io.Writer
	// Dir is the directory probed for project manifests.
	Dir string
}

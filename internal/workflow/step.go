// Package workflow translates stride.toml workflows into executable steps
// and runs them sequentially against a shared workflow state.
package workflow

import (
	"context"

	"github.com/quayside-dev/stride/internal/command"
	"github.com/quayside-dev/stride/internal/issues"
	"github.com/quayside-dev/stride/internal/prompt"
	"github.com/quayside-dev/stride/internal/releases"
	"github.com/quayside-dev/stride/internal/run"
)

// Step is one executable unit of a workflow. Each step consumes the current
// run state and produces the next one, or a failure that aborts the run.
type Step interface {
	// Name is the step type as written in stride.toml, used in failure
	// messages.
	Name() string
	run(ctx context.Context, rt run.Type, ui prompt.UI) (run.Type, error)
}

// SelectJiraIssue prompts for one of the project's issues in Status.
type SelectJiraIssue struct {
	Status string
}

// SelectGitHubIssue prompts for one of the repository's open issues.
type SelectGitHubIssue struct {
	Labels []string
}

// TransitionIssue moves the selected issue to Status in its tracker.
type TransitionIssue struct {
	Status string
}

// BumpVersion applies Rule to the project version.
type BumpVersion struct {
	Rule releases.Rule
}

// Command runs a shell command after substituting declared variables.
type Command struct {
	Command   string
	Variables map[string]command.Variable
}

func (SelectJiraIssue) Name() string   { return "SelectJiraIssue" }
func (SelectGitHubIssue) Name() string { return "SelectGitHubIssue" }
func (TransitionIssue) Name() string   { return "TransitionIssue" }
func (BumpVersion) Name() string       { return "BumpVersion" }
func (Command) Name() string           { return "Command" }

func (s SelectJiraIssue) run(ctx context.Context, rt run.Type, ui prompt.UI) (run.Type, error) {
	return issues.SelectJiraIssue(ctx, rt, ui, s.Status)
}

func (s SelectGitHubIssue) run(ctx context.Context, rt run.Type, ui prompt.UI) (run.Type, error) {
	return issues.SelectGitHubIssue(ctx, rt, ui, s.Labels)
}

func (s TransitionIssue) run(ctx context.Context, rt run.Type, _ prompt.UI) (run.Type, error) {
	return issues.TransitionIssue(ctx, rt, s.Status)
}

func (s BumpVersion) run(_ context.Context, rt run.Type, _ prompt.UI) (run.Type, error) {
	return releases.BumpVersion(rt, s.Rule)
}

func (s Command) run(_ context.Context, rt run.Type, _ prompt.UI) (run.Type, error) {
	return command.Run(rt, s.Command, s.Variables)
}

package issues

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/quayside-dev/stride/internal/issues/jira"
	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/run"
	"github.com/quayside-dev/stride/internal/state"
)

// ErrGitHubTransition reports a status transition requested for a GitHub
// issue. GitHub issues have no status concept in this model, so the step
// fails loudly instead of silently doing nothing.
var ErrGitHubTransition = errors.New(messages.IssuesGitHubTransition)

var jiraTransition = jira.TransitionIssue

// TransitionIssue moves the selected issue to a new tracker status. Defined
// only for Jira issues; requires a SelectIssue step to have run first. The
// selection itself is unchanged on success.
func TransitionIssue(ctx context.Context, rt run.Type, status string) (run.Type, error) {
	selected, ok := rt.State.Selection.(state.Selected)
	if !ok {
		return rt, ErrNoneSelected
	}

	issue, ok := selected.Issue.(state.JiraIssue)
	if !ok {
		return rt, ErrGitHubTransition
	}
	if rt.State.Jira == nil {
		return rt, errors.New(messages.TrackerJiraNotConfigured)
	}
	creds := jira.Credentials{Email: rt.State.Creds.JiraEmail, Token: rt.State.Creds.JiraToken}
	if err := jiraTransition(ctx, *rt.State.Jira, creds, issue.Key, status); err != nil {
		return rt, err
	}
	fmt.Fprintf(rt.Out, messages.IssuesTransitionedFmt, color.GreenString(issue.Key), status)
	return rt, nil
}

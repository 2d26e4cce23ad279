// Package issues implements the workflow steps that select an issue and move
// it through tracker statuses.
package issues

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/quayside-dev/stride/internal/issues/github"
	"github.com/quayside-dev/stride/internal/issues/jira"
	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/prompt"
	"github.com/quayside-dev/stride/internal/run"
	"github.com/quayside-dev/stride/internal/state"
)

// Usage errors: the step was invoked in a state that forbids it. They are
// surfaced verbatim and abort the workflow.
var (
	ErrAlreadySelected = errors.New(messages.IssuesAlreadySelected)
	ErrNoneSelected    = errors.New(messages.IssuesNoneSelected)
)

// Tracker call seams, overridable in tests.
var (
	jiraIssues   = jira.Issues
	githubIssues = github.Issues
)

// SelectJiraIssue queries Jira for issues in the given status, prompts for
// one, and moves the state to Selected. Selecting twice in one run is a
// usage error.
func SelectJiraIssue(ctx context.Context, rt run.Type, ui prompt.UI, status string) (run.Type, error) {
	if _, ok := rt.State.Selection.(state.Selected); ok {
		return rt, ErrAlreadySelected
	}
	if rt.State.Jira == nil {
		return rt, errors.New(messages.TrackerJiraNotConfigured)
	}

	creds := jira.Credentials{Email: rt.State.Creds.JiraEmail, Token: rt.State.Creds.JiraToken}
	candidates, err := jiraIssues(ctx, *rt.State.Jira, creds, status)
	if err != nil {
		return rt, err
	}
	if len(candidates) == 0 {
		return rt, fmt.Errorf(messages.IssuesNoneFoundFmt, status)
	}

	issue, err := prompt.Choose(ui, messages.IssuesSelectTitle, candidates)
	if err != nil {
		return rt, err
	}
	fmt.Fprintf(rt.Out, messages.IssuesSelectedFmt, color.GreenString(issue.String()))
	rt.State.Selection = state.Selected{Issue: issue}
	return rt, nil
}

// SelectGitHubIssue lists open issues with the given labels, prompts for
// one, and moves the state to Selected. The resolved API token is carried
// forward in the state so later GitHub calls reuse it.
func SelectGitHubIssue(ctx context.Context, rt run.Type, ui prompt.UI, labels []string) (run.Type, error) {
	if _, ok := rt.State.Selection.(state.Selected); ok {
		return rt, ErrAlreadySelected
	}
	if rt.State.GitHub == nil {
		return rt, errors.New(messages.TrackerGitHubNotConfigured)
	}

	token, err := githubToken(rt.State, ui)
	if err != nil {
		return rt, err
	}
	candidates, err := githubIssues(ctx, *rt.State.GitHub, token, labels)
	if err != nil {
		return rt, err
	}
	if len(candidates) == 0 {
		return rt, errors.New(messages.IssuesNoneOpen)
	}

	issue, err := prompt.Choose(ui, messages.IssuesSelectTitle, candidates)
	if err != nil {
		return rt, err
	}
	fmt.Fprintf(rt.Out, messages.IssuesSelectedFmt, color.GreenString(issue.String()))
	rt.State.GitHubSes = state.SessionReady{Token: token}
	rt.State.Selection = state.Selected{Issue: issue}
	return rt, nil
}

// githubToken resolves the API token: an earlier step's session first, then
// the environment, then a one-time masked prompt.
func githubToken(s state.State, ui prompt.UI) (string, error) {
	if ses, ok := s.GitHubSes.(state.SessionReady); ok {
		return ses.Token, nil
	}
	if s.Creds.GitHubToken != "" {
		return s.Creds.GitHubToken, nil
	}
	var token string
	if err := ui.SecretInput(messages.TrackerTokenPrompt, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Package github lists repository issues via the GitHub API.
package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v68/github"

	"github.com/quayside-dev/stride/internal/config"
	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/state"
)

// newClient builds an authenticated API client. Overridable in tests to
// point at a local server.
var newClient = func(token string) *github.Client {
	return github.NewClient(nil).WithAuthToken(token)
}

// Issues lists open issues in the configured repository, optionally
// restricted to the given labels. Pull requests share the issues endpoint
// and are filtered out.
func Issues(ctx context.Context, cfg config.GitHub, token string, labels []string) ([]state.Issue, error) {
	client := newClient(token)
	opts := &github.IssueListByRepoOptions{
		State:  "open",
		Labels: labels,
	}
	found, _, err := client.Issues.ListByRepo(ctx, cfg.Owner, cfg.Repo, opts)
	if err != nil {
		return nil, fmt.Errorf(messages.GitHubListFailedFmt, err)
	}

	issues := make([]state.Issue, 0, len(found))
	for _, issue := range found {
		if issue.IsPullRequest() {
			continue
		}
		issues = append(issues, state.GitHubIssue{Number: issue.GetNumber(), Title: issue.GetTitle()})
	}
	return issues, nil
}

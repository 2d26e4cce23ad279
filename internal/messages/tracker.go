package messages

// Tracker messages for issue selection and status transitions.
const (
	IssuesAlreadySelected  = "you've already selected an issue"
	IssuesNoneSelected     = "no issue selected, try running a SelectIssue step before this one"
	IssuesGitHubTransition = "transitioning GitHub issues is not supported"

	IssuesSelectTitle     = "Select an issue"
	IssuesSelectedFmt     = "Selected issue %s\n"
	IssuesTransitionedFmt = "%s transitioned to %s\n"
	IssuesNoneFoundFmt    = "no issues matching %q"
	IssuesNoneOpen        = "no open issues found"

	TrackerJiraNotConfigured   = "jira is not configured, add a [jira] table to stride.toml"
	TrackerGitHubNotConfigured = "github is not configured, add a [github] table to stride.toml"
	TrackerTokenPrompt         = "GitHub API token"

	JiraSearchFailedFmt       = "jira issue search failed: %w"
	JiraTransitionsFailedFmt  = "listing transitions for %s failed: %w"
	JiraTransitionFailedFmt   = "transitioning %s failed: %w"
	JiraNoTransitionFmt       = "issue %s has no transition named %q"
	JiraUnexpectedStatusFmt   = "jira returned %s for %s"
	GitHubListFailedFmt       = "listing github issues failed: %w"
)

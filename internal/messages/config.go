package messages

// Config messages for loading and validating stride.toml.
const (
	// ConfigFileName is the workflow definition file probed in the working directory.
	ConfigFileName = "stride.toml"

	ConfigMissingFileFmt      = "failed to read %s: %w"
	ConfigInvalidConfigFmt    = "failed to parse %s: %w"
	ConfigUnrecognizedKeysFmt = "unrecognized keys in %s: %w"
	ConfigNoWorkflows         = "no workflows defined"
	ConfigUnnamedWorkflowFmt  = "workflow %d has no name"
	ConfigDuplicateWorkflowFmt = "workflow %q is defined more than once"
	ConfigWorkflowNoStepsFmt   = "workflow %q has no steps"

	ConfigUnknownStepTypeFmt  = "workflow %q step %d: unknown step type %q"
	ConfigStepMissingFieldFmt = "workflow %q step %d (%s): missing required field %q"
	ConfigUnknownRuleFmt      = "workflow %q step %d: unknown rule %q"
	ConfigUnknownVariableFmt  = "workflow %q step %d: unknown variable kind %q for token %q"

	// EnvJiraEmail names the environment variable holding the Jira account email.
	EnvJiraEmail   = "STRIDE_JIRA_EMAIL"
	EnvJiraToken   = "STRIDE_JIRA_TOKEN"
	EnvGitHubToken = "STRIDE_GITHUB_TOKEN"
)

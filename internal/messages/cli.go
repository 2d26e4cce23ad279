package messages

// CLI messages for the root command and version display.
const (
	// RootUse is the CLI command usage line.
	RootUse = "stride <workflow>"
	// RootShort is the short description for the root command.
	RootShort = "Run a release workflow defined in stride.toml"
	RootLong  = "Stride runs named release workflows from stride.toml in the current directory.\n" +
		"Each workflow is an ordered list of steps (issue selection, status transitions,\n" +
		"version bumps, templated commands) that share a single workflow state."

	RootFlagDryRun         = "Preview side effects instead of performing them"
	RootUnknownWorkflowFmt = "no workflow named %q in %s"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "List the workflows defined in stride.toml"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)

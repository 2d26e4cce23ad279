package messages

// Workflow and prompt messages.
const (
	WorkflowStepFailedFmt = "step %d (%s): %w"

	CommandWouldRunFmt  = "Would run %s\n"
	CommandExitFmt      = "command exited with status %d"
	CommandStartFmt     = "failed to run command: %w"

	PromptRequiresTerminal = "interactive prompts require a terminal"
	PromptCancelled        = "selection cancelled"
	PromptNoChoiceFmt      = "no option chosen for %q"
)
